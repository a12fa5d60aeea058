package integer

import (
	"math/big"
	"reflect"
	"strings"

	"github.com/calebcase/oops"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/zeebo/errs"

	"github.com/calebcase/web3conv"
	"github.com/calebcase/web3conv/validator"
)

// Error is the class of internal integer failures.
var Error = errs.Class("integer")

// Sentinels.
var (
	ErrUnsafe   = Error.New("outside of the safe integer range")
	ErrNegative = Error.New("negative value")
	ErrOverflow = Error.New("overflows 256 bits")
)

// MaxSafeInteger is the largest magnitude returned as a native number.
const MaxSafeInteger = validator.MaxSafeInteger

var maxSafe = big.NewInt(MaxSafeInteger)

// Block is a signed integer number.
type Block struct {
	Value    []byte
	Negative bool
}

// FromBig returns the block for i. The argument is not retained.
func FromBig(i *big.Int) Block {
	data := new(big.Int).Abs(i).Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		return Block{Value: []byte{0}}
	}

	return Block{
		Value:    data,
		Negative: i.Sign() < 0,
	}
}

// FromInt64 returns the block for n.
func FromInt64(n int64) Block {
	return FromBig(big.NewInt(n))
}

// Big returns a new big.Int holding the block's value.
func (b Block) Big() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// Sign returns -1, 0 or +1.
func (b Block) Sign() int {
	return b.Big().Sign()
}

// IsSafe returns true if the magnitude is at most MaxSafeInteger.
func (b Block) IsSafe() bool {
	return new(big.Int).SetBytes(b.Value).Cmp(maxSafe) <= 0
}

// Int64 returns the value as a native number. It fails if the value is
// outside of the safe range.
func (b Block) Int64() (n int64, err error) {
	if !b.IsSafe() {
		return 0, oops.Trace(ErrUnsafe)
	}

	return b.Big().Int64(), nil
}

// Native returns an int64 when the value is in the safe range and a
// *big.Int otherwise.
func (b Block) Native() any {
	if b.IsSafe() {
		return b.Big().Int64()
	}

	return b.Big()
}

// Uint256 returns the value as a 256 bit unsigned integer.
func (b Block) Uint256() (u *uint256.Int, err error) {
	if b.Negative {
		return nil, oops.Trace(ErrNegative)
	}

	u, overflow := uint256.FromBig(b.Big())
	if overflow {
		return nil, oops.Trace(ErrOverflow)
	}

	return u, nil
}

// Hex returns the canonical hex form: lower case, minimal digits, "-0x"
// for negatives and "0x0" for zero.
func (b Block) Hex() string {
	abs := new(big.Int).SetBytes(b.Value)
	if b.Negative && abs.Sign() != 0 {
		return "-" + hexutil.EncodeBig(abs)
	}

	return hexutil.EncodeBig(abs)
}

// String returns the decimal form.
func (b Block) String() string {
	return b.Big().String()
}

// MarshalText implements encoding.TextMarshaler using the canonical hex
// form.
func (b Block) MarshalText() (data []byte, err error) {
	return []byte(b.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for hex text.
func (b *Block) UnmarshalText(data []byte) (err error) {
	defer Error.WrapP(&err)

	blk, err := ParseHex(string(data))
	if err != nil {
		return err
	}

	*b = blk

	return nil
}

// ParseHex parses a signed hex string with at least one digit.
func ParseHex(s string) (b Block, err error) {
	if !validator.IsHexString(s) {
		return b, web3conv.New(web3conv.InvalidHexStringError, s, web3conv.CauseInvalidHexString)
	}

	negative := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")[2:]

	i, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return b, web3conv.New(web3conv.InvalidHexStringError, s, web3conv.CauseInvalidHexString)
	}

	if negative {
		i.Neg(i)
	}

	return FromBig(i), nil
}

// Parse coerces an integer-like value (see validator.IsIntegerLike) into a
// block.
func Parse(v any) (b Block, err error) {
	if !validator.IsIntegerLike(v) {
		return b, web3conv.New(web3conv.InvalidIntegerError, v, web3conv.CauseInvalidInteger)
	}

	switch t := v.(type) {
	case *big.Int:
		return FromBig(t), nil
	case big.Int:
		return FromBig(&t), nil
	case *uint256.Int:
		return FromBig(t.ToBig()), nil
	case float32:
		return FromInt64(int64(t)), nil
	case float64:
		return FromInt64(int64(t)), nil
	case string:
		if validator.IsDecimalString(t) {
			i, _ := new(big.Int).SetString(t, 10)

			return FromBig(i), nil
		}

		b, err = ParseHex(t)
		if err != nil {
			return b, web3conv.New(web3conv.InvalidIntegerError, v, web3conv.CauseInvalidInteger)
		}

		return b, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt64(rv.Int()), nil
	default:
		return FromBig(new(big.Int).SetUint64(rv.Uint())), nil
	}
}
