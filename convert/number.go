package convert

import (
	"github.com/calebcase/web3conv"
	"github.com/calebcase/web3conv/integer"
	"github.com/calebcase/web3conv/validator"
)

// NumberToHex encodes an integer-like value (see validator.IsIntegerLike)
// as a signed hex string, e.g. -255 = "-0xff".
func NumberToHex(v any) (string, error) {
	b, err := integer.Parse(v)
	if err != nil {
		return "", err
	}

	return b.Hex(), nil
}

// HexToNumber decodes a signed hex string. The result is an int64 when the
// magnitude is at most integer.MaxSafeInteger and a *big.Int otherwise.
func HexToNumber(v any) (any, error) {
	b, err := parseHex(v)
	if err != nil {
		return nil, err
	}

	return b.Native(), nil
}

// HexToNumberString decodes a signed hex string into decimal text.
func HexToNumberString(v any) (string, error) {
	b, err := parseHex(v)
	if err != nil {
		return "", err
	}

	return b.String(), nil
}

func parseHex(v any) (integer.Block, error) {
	s, ok := v.(string)
	if !ok || !validator.IsHexString(s) {
		return integer.Block{}, web3conv.New(web3conv.InvalidHexStringError, v, web3conv.CauseInvalidHexString)
	}

	return integer.ParseHex(s)
}
