// Package validator provides the predicates that gate every converter.
//
// Validators never fail: they report whether a value has an accepted shape.
// The Cause variants additionally name the first reason a value was
// rejected, using the cause vocabulary of package web3conv.
package validator

import (
	"math"
	"math/big"
	"reflect"
	"regexp"

	"github.com/holiman/uint256"

	"github.com/calebcase/web3conv"
)

// MaxSafeInteger is the largest magnitude carried as a native number.
const MaxSafeInteger = 1<<53 - 1

var (
	hexRe     = regexp.MustCompile(`^-?0[xX][0-9a-fA-F]*$`)
	bytesRe   = regexp.MustCompile(`^0[xX][0-9a-fA-F]*$`)
	decimalRe = regexp.MustCompile(`^-?[0-9]+$`)
	numberRe  = regexp.MustCompile(`^-?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)$`)
	addressRe = regexp.MustCompile(`^(?:0[xX])?[0-9a-fA-F]{40}$`)
)

// IsHexString returns true if v is a string of the form [-]0x[digits]. The
// digit string may be empty.
func IsHexString(v any) bool {
	s, ok := v.(string)

	return ok && hexRe.MatchString(s)
}

// IsDecimalString returns true if s is an optionally signed run of decimal
// digits.
func IsDecimalString(s string) bool {
	return decimalRe.MatchString(s)
}

// IsBytes returns true if v is a byte buffer, an unsigned even length hex
// string or a list of integers in [0, 255].
func IsBytes(v any) bool {
	return BytesCause(v) == ""
}

// BytesCause returns the reason v is not byte data, or "" if it is.
func BytesCause(v any) string {
	switch t := v.(type) {
	case []byte:
		return ""
	case string:
		if !bytesRe.MatchString(t) {
			return web3conv.CauseInvalidHexString
		}

		if (len(t)-2)%2 != 0 {
			return web3conv.CauseOddHexDigits
		}

		return ""
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return web3conv.CauseNotByteData
	}

	values := make([]int64, rv.Len())
	for i := range values {
		n, ok := smallInt(rv.Index(i).Interface())
		if !ok {
			return web3conv.CauseInvalidIntegerValues
		}

		values[i] = n
	}

	for _, n := range values {
		if n < 0 {
			return web3conv.CauseNegativeValues
		}
	}

	for _, n := range values {
		if n > 255 {
			return web3conv.CauseGreaterThan255
		}
	}

	return ""
}

// smallInt extracts a native integer from an array-like element.
func smallInt(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return 0, false
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return math.MaxInt64, true
		}

		return int64(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if !isSafeFloat(f) {
			return 0, false
		}

		return int64(f), true
	}

	return 0, false
}

// isSafeFloat reports whether f is integral and within the safe range.
func isSafeFloat(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) &&
		f == math.Trunc(f) && math.Abs(f) <= MaxSafeInteger
}

// IsIntegerLike returns true if v is a native integer, an integral float in
// the safe range, an arbitrary precision integer, a decimal numeric string
// or a hex string with at least one digit.
func IsIntegerLike(v any) bool {
	switch t := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return isSafeFloat(float64(t))
	case float64:
		return isSafeFloat(t)
	case *big.Int:
		return t != nil
	case big.Int:
		return true
	case *uint256.Int:
		return t != nil
	case string:
		if decimalRe.MatchString(t) {
			return true
		}

		return hexRe.MatchString(t) && hexDigits(t) > 0
	}

	return false
}

// hexDigits returns the number of digits after the 0x prefix.
func hexDigits(s string) int {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}

	return len(s) - 2
}

// IsNumber returns true if v is integer-like or a decimal fraction given as
// a string ("1.5", ".5", "-2.") or a finite float.
func IsNumber(v any) bool {
	if IsIntegerLike(v) {
		return true
	}

	switch t := v.(type) {
	case string:
		return numberRe.MatchString(t)
	case float32:
		return !math.IsNaN(float64(t)) && !math.IsInf(float64(t), 0)
	case float64:
		return !math.IsNaN(t) && !math.IsInf(t, 0)
	}

	return false
}

// IsAddress returns true if v is a string of exactly 40 hex digits with or
// without the 0x prefix. Letter case is not checked.
func IsAddress(v any) bool {
	s, ok := v.(string)

	return ok && addressRe.MatchString(s)
}
