// Package dispatch converts integer-like values to a requested
// representation, one at a time or across selected properties of an
// object.
package dispatch

import (
	"errors"

	"github.com/calebcase/web3conv"
	"github.com/calebcase/web3conv/integer"
)

// ValidType names a representation ConvertToValidType can produce.
type ValidType string

// Representations and the Go types they produce.
const (
	HexString    ValidType = "HexString"    // string, e.g. "-0x2a"
	NumberString ValidType = "NumberString" // string, e.g. "-42"
	Number       ValidType = "Number"       // int64
	BigInt       ValidType = "BigInt"       // *big.Int
)

// Valid returns true if t is one of the four representations.
func (t ValidType) Valid() bool {
	switch t {
	case HexString, NumberString, Number, BigInt:
		return true
	}

	return false
}

// ConvertToValidType converts an integer-like value to the desired
// representation. Values are normalized through their canonical hex form so
// every spelling of the same integer produces the same result.
//
// Number fails for magnitudes above integer.MaxSafeInteger instead of
// losing precision.
func ConvertToValidType(value any, desired ValidType) (any, error) {
	if !desired.Valid() {
		return nil, web3conv.New(web3conv.InvalidDesiredTypeError, string(desired), web3conv.CauseInvalidDesiredType)
	}

	b, err := integer.Parse(value)
	if err != nil {
		return nil, err
	}

	text, err := b.MarshalText()
	if err != nil {
		return nil, err
	}

	var canonical integer.Block
	err = canonical.UnmarshalText(text)
	if err != nil {
		return nil, err
	}

	switch desired {
	case HexString:
		return string(text), nil
	case NumberString:
		return canonical.String(), nil
	case Number:
		n, err := canonical.Int64()
		if errors.Is(err, integer.ErrUnsafe) {
			return nil, web3conv.New(web3conv.InvalidNumberError, value, web3conv.CauseUnsafeInteger)
		}

		if err != nil {
			return nil, err
		}

		return n, nil
	case BigInt:
		return canonical.Big(), nil
	}

	return nil, web3conv.New(web3conv.InvalidDesiredTypeError, string(desired), web3conv.CauseInvalidDesiredType)
}

// ConvertObjectPropertiesToValidType returns a copy of obj with the listed
// properties converted to the desired representation.
//
// obj must be a map[string]any and keys a []string (or a []any holding only
// strings). Listed keys missing from obj are skipped. Boolean values are
// left as they are even when listed. Unlisted properties, nested objects
// included, are copied unchanged. The first value that fails to convert
// fails the whole call and obj is never modified.
func ConvertObjectPropertiesToValidType(obj any, keys any, desired ValidType) (map[string]any, error) {
	src, ok := obj.(map[string]any)
	if !ok || src == nil {
		return nil, web3conv.New(web3conv.InvalidConvertibleObjectError, obj, web3conv.CauseInvalidObject)
	}

	names, err := propertyList(keys)
	if err != nil {
		return nil, err
	}

	if !desired.Valid() {
		return nil, web3conv.New(web3conv.InvalidDesiredTypeError, string(desired), web3conv.CauseInvalidDesiredType)
	}

	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = v
	}

	for _, name := range names {
		v, ok := src[name]
		if !ok {
			continue
		}

		if _, isBool := v.(bool); isBool {
			continue
		}

		converted, err := ConvertToValidType(v, desired)
		if err != nil {
			return nil, err
		}

		out[name] = converted
	}

	return out, nil
}

// propertyList checks keys is a list of property names.
func propertyList(keys any) ([]string, error) {
	switch t := keys.(type) {
	case []string:
		if t != nil {
			return t, nil
		}
	case []any:
		if t == nil {
			break
		}

		names := make([]string, len(t))
		for i, k := range t {
			name, ok := k.(string)
			if !ok {
				return nil, web3conv.New(web3conv.InvalidConvertiblePropertiesListError, k, web3conv.CauseInvalidPropertyList)
			}

			names[i] = name
		}

		return names, nil
	}

	return nil, web3conv.New(web3conv.InvalidConvertiblePropertiesListError, keys, web3conv.CauseInvalidPropertyList)
}
