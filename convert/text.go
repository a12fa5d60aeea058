package convert

import (
	"encoding/hex"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/calebcase/web3conv"
)

// UTF8ToHex encodes text as UTF-8 hex. Leading and trailing NUL characters
// are dropped; embedded ones are kept.
func UTF8ToHex(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", web3conv.New(web3conv.InvalidStringError, v, web3conv.CauseInvalidString)
	}

	return "0x" + hex.EncodeToString([]byte(strings.Trim(s, "\x00"))), nil
}

// HexToUTF8 decodes byte data as UTF-8 text. Invalid sequences decode to
// U+FFFD.
func HexToUTF8(v any) (s string, err error) {
	b, err := toBytes(v)
	if err != nil {
		return "", err
	}

	text, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return "", Error.Wrap(err)
	}

	return string(text), nil
}

// ASCIIToHex encodes text one byte per UTF-16 code unit, keeping the low
// eight bits of each unit. It is meant for fixed width legacy text and does
// not round trip characters above U+00FF.
func ASCIIToHex(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", web3conv.New(web3conv.InvalidStringError, v, web3conv.CauseInvalidString)
	}

	units := utf16.Encode([]rune(s))
	b := make([]byte, len(units))
	for i, u := range units {
		b[i] = byte(u)
	}

	return "0x" + hex.EncodeToString(b), nil
}

// HexToASCII decodes byte data one character per byte (Latin-1).
func HexToASCII(v any) (s string, err error) {
	b, err := toBytes(v)
	if err != nil {
		return "", err
	}

	text, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", Error.Wrap(err)
	}

	return string(text), nil
}
