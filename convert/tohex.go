package convert

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"

	"github.com/calebcase/web3conv"
	"github.com/calebcase/web3conv/validator"
)

// ValueType names the interpretation ToHex used for its input.
type ValueType string

// Value types.
const (
	Uint256 ValueType = "uint256"
	Int256  ValueType = "int256"
	BigInt  ValueType = "bigint"
	Bool    ValueType = "bool"
	Bytes   ValueType = "bytes"
	String  ValueType = "string"
	Address ValueType = "address"
)

// ToHex converts any supported value to hex and reports how it was read:
//
//   - integers encode as signed numbers (uint256, int256; bigint for big.Int)
//   - booleans encode as 0x01 and 0x00
//   - addresses and byte hex strings pass through lower cased
//   - signed or odd length hex strings encode as numbers
//   - other strings encode as UTF-8
//   - byte slices and integer lists encode as bytes
func ToHex(v any) (string, ValueType, error) {
	switch t := v.(type) {
	case bool:
		if t {
			return "0x01", Bool, nil
		}

		return "0x00", Bool, nil
	case *big.Int, big.Int:
		h, err := NumberToHex(v)

		return h, BigInt, err
	case *uint256.Int:
		h, err := NumberToHex(v)

		return h, Uint256, err
	case string:
		switch {
		case validator.IsAddress(t) && strings.HasPrefix(strings.ToLower(t), "0x"):
			return strings.ToLower(t), Address, nil
		case validator.IsBytes(t):
			return strings.ToLower(t), Bytes, nil
		case validator.IsHexString(t) && validator.IsIntegerLike(t):
			return signedHex(t)
		}

		h, err := UTF8ToHex(t)

		return h, String, err
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return signedHex(v)
	}

	if validator.IsBytes(v) {
		h, err := BytesToHex(v)

		return h, Bytes, err
	}

	return "", "", web3conv.New(web3conv.InvalidBytesError, v, web3conv.CauseNotByteData)
}

// signedHex encodes an integer-like value tagged by its sign.
func signedHex(v any) (string, ValueType, error) {
	h, err := NumberToHex(v)
	if err != nil {
		return "", "", err
	}

	if strings.HasPrefix(h, "-") {
		return h, Int256, nil
	}

	return h, Uint256, nil
}
