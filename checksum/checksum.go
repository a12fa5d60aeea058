// Package checksum derives and verifies mixed case address checksums.
//
// The checksum of an address is its lower case hex digits re-cased by the
// Keccak-256 hash of those digits: a letter at position i is upper cased
// when nibble i of the hash is 8 or more.
package checksum

import (
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/calebcase/web3conv"
	"github.com/calebcase/web3conv/validator"
)

// ToChecksumAddress returns the checksum cased form of a 40 digit address,
// with or without the 0x prefix. The result always carries the prefix.
func ToChecksumAddress(v any) (string, error) {
	if !validator.IsAddress(v) {
		return "", web3conv.New(web3conv.InvalidAddressError, v, web3conv.CauseInvalidAddress)
	}

	digits := strings.ToLower(v.(string))
	if len(digits) == 42 {
		digits = digits[2:]
	}

	hash := crypto.Keccak256([]byte(digits))

	out := []byte(digits)
	for i, c := range out {
		if c < 'a' {
			continue
		}

		nibble := hash[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}

		if nibble&0x0f >= 8 {
			out[i] = c - 'a' + 'A'
		}
	}

	return "0x" + string(out), nil
}

// IsChecksumAddress returns true if v is a 0x prefixed address whose
// casing matches its checksum.
func IsChecksumAddress(v any) bool {
	s, ok := v.(string)
	if !ok || !strings.HasPrefix(s, "0x") {
		return false
	}

	sum, err := ToChecksumAddress(s)
	if err != nil {
		return false
	}

	return sum == s
}
