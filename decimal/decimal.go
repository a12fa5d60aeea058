package decimal

import (
	"math/big"
	"strings"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/web3conv/integer"
)

// Error is the class of decimal failures.
var Error = errs.Class("decimal")

// ErrFraction is returned when an integer is requested from a block with a
// non-zero fraction.
var ErrFraction = Error.New("non-zero fraction")

var ten = big.NewInt(10)

// Block is a fixed point base 10 decimal number.
type Block struct {
	Value integer.Block
	Scale uint32
}

// FromInteger returns the block value * 10^-scale.
func FromInteger(value integer.Block, scale uint32) Block {
	return Block{
		Value: value,
		Scale: scale,
	}
}

// Parse reads a decimal string such as "-12.5".
func Parse(s string) (b Block, err error) {
	body := s
	negative := false
	if strings.HasPrefix(body, "-") {
		negative = true
		body = body[1:]
	}

	whole, frac, _ := strings.Cut(body, ".")
	if whole == "" && frac == "" {
		return b, Error.New("invalid decimal: %q", s)
	}

	digits := whole + frac
	for _, r := range digits {
		if r < '0' || r > '9' {
			return b, Error.New("invalid decimal: %q", s)
		}
	}

	i, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return b, Error.New("invalid decimal: %q", s)
	}

	if negative {
		i.Neg(i)
	}

	return Block{
		Value: integer.FromBig(i),
		Scale: uint32(len(frac)),
	}, nil
}

// Reduce removes trailing fractional zeros.
func (b Block) Reduce() Block {
	i := b.Value.Big()
	scale := b.Scale

	q, r := new(big.Int), new(big.Int)
	for scale > 0 && i.Sign() != 0 {
		q.QuoRem(i, ten, r)
		if r.Sign() != 0 {
			break
		}

		i.Set(q)
		scale--
	}

	if i.Sign() == 0 {
		scale = 0
	}

	return Block{
		Value: integer.FromBig(i),
		Scale: scale,
	}
}

// Shift multiplies the number by 10^n.
func (b Block) Shift(n uint32) Block {
	if n <= b.Scale {
		return Block{
			Value: b.Value,
			Scale: b.Scale - n,
		}
	}

	i := b.Value.Big()
	i.Mul(i, pow10(n-b.Scale))

	return Block{
		Value: integer.FromBig(i),
	}
}

// Unshift divides the number by 10^n.
func (b Block) Unshift(n uint32) Block {
	return Block{
		Value: b.Value,
		Scale: b.Scale + n,
	}
}

// Integer returns the number as an integer. It fails with ErrFraction if
// any non-zero fractional digit remains.
func (b Block) Integer() (i integer.Block, err error) {
	r := b.Reduce()
	if r.Scale != 0 {
		return i, oops.Trace(ErrFraction)
	}

	return r.Value, nil
}

// String returns the shortest exact decimal representation.
func (b Block) String() string {
	r := b.Reduce()

	digits := new(big.Int).SetBytes(r.Value.Value).String()
	sign := ""
	if r.Value.Negative && digits != "0" {
		sign = "-"
	}

	if r.Scale == 0 {
		return sign + digits
	}

	scale := int(r.Scale)
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}

	point := len(digits) - scale

	return sign + digits[:point] + "." + digits[point:]
}

func pow10(n uint32) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}
