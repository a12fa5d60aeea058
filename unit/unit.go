// Package unit converts amounts between wei and the named ether
// denominations.
//
// Conversion is always relative to wei: FromWei renders a wei amount in a
// larger unit as an exact decimal string, ToWei renders an amount given in a
// unit as an integer wei hex string. Scaling is exact at any magnitude.
package unit

import (
	"strconv"

	"github.com/calebcase/web3conv"
	"github.com/calebcase/web3conv/decimal"
	"github.com/calebcase/web3conv/integer"
	"github.com/calebcase/web3conv/validator"
)

// EtherUnit is a named power of ten relative to wei.
type EtherUnit string

// Denominations.
const (
	NoEther    EtherUnit = "noether"
	Wei        EtherUnit = "wei"
	Kwei       EtherUnit = "kwei"
	Babbage    EtherUnit = "babbage"
	Femtoether EtherUnit = "femtoether"
	Mwei       EtherUnit = "mwei"
	Lovelace   EtherUnit = "lovelace"
	Picoether  EtherUnit = "picoether"
	Gwei       EtherUnit = "gwei"
	Shannon    EtherUnit = "shannon"
	Nanoether  EtherUnit = "nanoether"
	Nano       EtherUnit = "nano"
	Micro      EtherUnit = "micro"
	Szabo      EtherUnit = "szabo"
	Microether EtherUnit = "microether"
	Milli      EtherUnit = "milli"
	Finney     EtherUnit = "finney"
	Milliether EtherUnit = "milliether"
	Ether      EtherUnit = "ether"
	Kether     EtherUnit = "kether"
	Grand      EtherUnit = "grand"
	Mether     EtherUnit = "mether"
	Gether     EtherUnit = "gether"
	Tether     EtherUnit = "tether"

	// Capitalized spellings kept for compatibility.
	KweiUpper EtherUnit = "Kwei"
	MweiUpper EtherUnit = "Mwei"
	GweiUpper EtherUnit = "Gwei"
)

// Exponent returns the power of ten the unit represents. ok is false for
// unknown units.
func (u EtherUnit) Exponent() (exp uint32, ok bool) {
	switch u {
	case NoEther, Wei:
		return 0, true
	case Kwei, KweiUpper, Babbage, Femtoether:
		return 3, true
	case Mwei, MweiUpper, Lovelace, Picoether:
		return 6, true
	case Gwei, GweiUpper, Shannon, Nanoether, Nano:
		return 9, true
	case Micro, Szabo, Microether:
		return 12, true
	case Milli, Finney, Milliether:
		return 15, true
	case Ether:
		return 18, true
	case Kether, Grand:
		return 21, true
	case Mether:
		return 24, true
	case Gether:
		return 27, true
	case Tether:
		return 30, true
	}

	return 0, false
}

// Valid returns true if the unit is in the denomination table.
func (u EtherUnit) Valid() bool {
	_, ok := u.Exponent()

	return ok
}

func exponent(u EtherUnit) (uint32, error) {
	exp, ok := u.Exponent()
	if !ok {
		return 0, web3conv.New(web3conv.InvalidUnitError, string(u), web3conv.CauseInvalidUnit)
	}

	return exp, nil
}

// FromWei renders an integer-like wei amount in the given unit as a minimal
// decimal string, e.g. FromWei(1, Gwei) = "0.000000001".
func FromWei(value any, u EtherUnit) (string, error) {
	if !validator.IsIntegerLike(value) {
		return "", web3conv.New(web3conv.InvalidIntegerError, value, web3conv.CauseInvalidInteger)
	}

	exp, err := exponent(u)
	if err != nil {
		return "", err
	}

	wei, err := integer.Parse(value)
	if err != nil {
		return "", err
	}

	return decimal.FromInteger(wei, 0).Unshift(exp).String(), nil
}

// ToWei converts an amount given in the unit to wei and renders it as a
// canonical hex string, e.g. ToWei("1000", Kwei) = "0xf4240". Fractional
// amounts are accepted as long as they resolve to a whole number of wei.
func ToWei(value any, u EtherUnit) (string, error) {
	if !validator.IsNumber(value) {
		return "", web3conv.New(web3conv.InvalidNumberError, value, web3conv.CauseInvalidNumber)
	}

	exp, err := exponent(u)
	if err != nil {
		return "", err
	}

	amount, err := parseAmount(value)
	if err != nil {
		return "", err
	}

	wei, err := amount.Shift(exp).Integer()
	if err != nil {
		return "", web3conv.New(web3conv.InvalidNumberError, value, web3conv.CauseTooManyDecimals)
	}

	return wei.Hex(), nil
}

// parseAmount reads a number (see validator.IsNumber) as a decimal.
func parseAmount(value any) (decimal.Block, error) {
	var text string

	switch t := value.(type) {
	case string:
		if !validator.IsIntegerLike(t) {
			text = t

			break
		}

		i, err := integer.Parse(t)
		if err != nil {
			return decimal.Block{}, err
		}

		return decimal.FromInteger(i, 0), nil
	case float32:
		text = formatFloat(float64(t), 32)
	case float64:
		text = formatFloat(t, 64)
	default:
		i, err := integer.Parse(value)
		if err != nil {
			return decimal.Block{}, err
		}

		return decimal.FromInteger(i, 0), nil
	}

	amount, err := decimal.Parse(text)
	if err != nil {
		return decimal.Block{}, web3conv.New(web3conv.InvalidNumberError, value, web3conv.CauseInvalidNumber)
	}

	return amount, nil
}

// formatFloat renders f in positional notation with the fewest digits that
// round trip.
func formatFloat(f float64, bits int) string {
	return strconv.FormatFloat(f, 'f', -1, bits)
}
