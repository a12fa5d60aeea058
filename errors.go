package web3conv

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

// Error kinds. Every validation failure belongs to exactly one of these.
var (
	InvalidBytesError                     = kind("InvalidBytesError")
	InvalidIntegerError                   = kind("InvalidIntegerError")
	InvalidNumberError                    = kind("InvalidNumberError")
	InvalidHexStringError                 = kind("InvalidHexStringError")
	InvalidStringError                    = kind("InvalidStringError")
	InvalidUnitError                      = kind("InvalidUnitError")
	InvalidAddressError                   = kind("InvalidAddressError")
	InvalidDesiredTypeError               = kind("InvalidDesiredTypeError")
	InvalidConvertibleObjectError         = kind("InvalidConvertibleObjectError")
	InvalidConvertiblePropertiesListError = kind("InvalidConvertiblePropertiesListError")
)

// kind returns a new class. errs matches classes by pointer so each kind
// must be allocated exactly once.
func kind(name string) *errs.Class {
	c := errs.Class(name)

	return &c
}

// Causes.
const (
	CauseInvalidIntegerValues = "contains invalid integer values"
	CauseNegativeValues       = "contains negative values"
	CauseGreaterThan255       = "contains numbers greater than 255"
	CauseInvalidHexString     = "not a valid hex string"
	CauseNotByteData          = "can not parse as byte data"
	CauseOddHexDigits         = "odd number of hex digits"
	CauseInvalidInteger       = "not a valid integer"
	CauseInvalidNumber        = "not a valid number"
	CauseTooManyDecimals      = "too many decimal places"
	CauseInvalidString        = "not a valid string"
	CauseInvalidUnit          = "invalid unit"
	CauseInvalidAddress       = "invalid ethereum address"
	CauseInvalidDesiredType   = "invalid desired type for conversion"
	CauseInvalidObject        = "invalid object for property conversion"
	CauseInvalidPropertyList  = "invalid list of convertible properties for conversion"
	CauseUnsafeInteger        = "value exceeds the safe integer range"
)

// ValidationError reports an input that could not be interpreted.
type ValidationError struct {
	// Value is the offending input rendered with Stringify.
	Value string
	Cause string

	class *errs.Class
	err   error
}

// New returns a validation failure of the given kind.
func New(class *errs.Class, value any, cause string) *ValidationError {
	return &ValidationError{
		Value: Stringify(value),
		Cause: cause,
		class: class,
		err:   class.New("%s", cause),
	}
}

// Error implements error.
func (e *ValidationError) Error() string {
	return `Invalid value given "` + e.Value + `". Error: ` + e.Cause + "."
}

// Kind returns the name of the error class, e.g. "InvalidBytesError".
func (e *ValidationError) Kind() string {
	return string(*e.class)
}

// Unwrap returns the class error so that class.Has matches.
func (e *ValidationError) Unwrap() error {
	return e.err
}

// Is reports whether err is a validation failure of the given kind.
func Is(err error, class *errs.Class) bool {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return false
	}

	return ve.class == class
}

// Stringify renders v the way it is quoted in error messages. Lists are
// joined with commas, objects collapse to "[object Object]".
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case *big.Int:
		if t == nil {
			return "<nil>"
		}

		return t.String()
	case big.Int:
		return t.String()
	case []byte:
		parts := make([]string, len(t))
		for i, b := range t {
			parts[i] = strconv.Itoa(int(b))
		}

		return strings.Join(parts, ",")
	case fmt.Stringer:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "<nil>"
		}

		return t.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = Stringify(rv.Index(i).Interface())
		}

		return strings.Join(parts, ",")
	case reflect.Map, reflect.Struct:
		return "[object Object]"
	case reflect.Pointer:
		if rv.IsNil() {
			return "<nil>"
		}

		return Stringify(rv.Elem().Interface())
	case reflect.Func:
		return "function"
	}

	return fmt.Sprint(v)
}
