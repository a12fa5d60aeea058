// Package convert provides the primitive conversions between bytes, hex
// strings, integers and text.
//
// Hex output is always lower case with a single 0x prefix. Byte data
// encodes as two digits per byte ("0x" for no bytes), integers encode with
// the fewest digits and a leading "-" for negative values ("0x0" for zero).
package convert

import (
	"encoding/hex"
	"reflect"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/web3conv"
	"github.com/calebcase/web3conv/validator"
)

// Error is the class of internal conversion failures.
var Error = errs.Class("convert")

// BytesToHex encodes byte data (see validator.IsBytes) as hex.
func BytesToHex(v any) (string, error) {
	b, err := toBytes(v)
	if err != nil {
		return "", err
	}

	return "0x" + hex.EncodeToString(b), nil
}

// HexToBytes decodes byte data (see validator.IsBytes) into a byte slice.
// Hex strings must have an even number of digits.
func HexToBytes(v any) ([]byte, error) {
	return toBytes(v)
}

// toBytes is the single entry point that turns byte data into a fresh
// slice.
func toBytes(v any) (b []byte, err error) {
	if cause := validator.BytesCause(v); cause != "" {
		return nil, web3conv.New(web3conv.InvalidBytesError, v, cause)
	}

	switch t := v.(type) {
	case []byte:
		return append([]byte{}, t...), nil
	case string:
		b, err = hex.DecodeString(strings.ToLower(t[2:]))
		if err != nil {
			return nil, Error.Wrap(err)
		}

		return b, nil
	}

	rv := reflect.ValueOf(v)
	b = make([]byte, rv.Len())
	for i := range b {
		e := reflect.ValueOf(rv.Index(i).Interface())
		switch e.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			b[i] = byte(e.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			b[i] = byte(e.Uint())
		case reflect.Float32, reflect.Float64:
			b[i] = byte(e.Float())
		}
	}

	return b, nil
}
