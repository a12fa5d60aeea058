package integer

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/web3conv"
)

func TestHex(t *testing.T) {
	type TC struct {
		name string
		blk  Block
		hex  string
	}

	tcs := []TC{
		{
			name: "+0",
			blk: Block{
				Value: []byte{
					0b0000_0000,
				},
			},
			hex: "0x0",
		},
		{
			name: "+1",
			blk: Block{
				Value: []byte{
					0b0000_0001,
				},
			},
			hex: "0x1",
		},
		{
			name: "-1",
			blk: Block{
				Value: []byte{
					0b0000_0001,
				},
				Negative: true,
			},
			hex: "-0x1",
		},
		{
			name: "-255",
			blk: Block{
				Value: []byte{
					0b1111_1111,
				},
				Negative: true,
			},
			hex: "-0xff",
		},
		{
			name: "+32767",
			blk: Block{
				Value: []byte{
					0b0111_1111,
					0b1111_1111,
				},
			},
			hex: "0x7fff",
		},
		{
			name: "+9007199254740992",
			blk: Block{
				Value: []byte{
					0b0010_0000,
					0, 0, 0, 0, 0, 0,
				},
			},
			hex: "0x20000000000000",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			t.Run("marshal", func(t *testing.T) {
				data, err := tc.blk.MarshalText()
				require.NoError(t, err)
				require.Equal(t, tc.hex, string(data))
			})

			t.Run("unmarshal", func(t *testing.T) {
				blk := Block{}
				err := blk.UnmarshalText([]byte(tc.hex))
				require.NoError(t, err)
				require.Equal(t, tc.blk, blk)

				// These checks ensure that our test case name matches the value.
				i := new(big.Int)
				err = i.UnmarshalText([]byte(tc.name))
				require.NoError(t, err)
				require.Zero(t, i.Cmp(blk.Big()), spew.Sdump(blk))
			})
		})
	}
}

func TestHexMatchesEncodeBig(t *testing.T) {
	huge, ok := new(big.Int).SetString("123456789012345678901234567890123456789012345678901234567890", 10)
	require.True(t, ok)

	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(15),
		big.NewInt(256),
		big.NewInt(MaxSafeInteger),
		huge,
	}

	for i, v := range values {
		t.Run(fmt.Sprintf("[%d]%s", i, v), func(t *testing.T) {
			require.Equal(t, hexutil.EncodeBig(v), FromBig(v).Hex())

			neg := new(big.Int).Neg(v)
			if v.Sign() == 0 {
				require.Equal(t, "0x0", FromBig(neg).Hex())

				return
			}

			require.Equal(t, "-"+hexutil.EncodeBig(v), FromBig(neg).Hex())
		})
	}

	// Sign-magnitude allows a negative zero; it renders as zero.
	require.Equal(t, "0x0", Block{Value: []byte{0}, Negative: true}.Hex())
}

func TestUnmarshalTextInvalid(t *testing.T) {
	for _, s := range []string{"", "0x", "ff", "0xfg", "--0x1"} {
		blk := Block{}
		err := blk.UnmarshalText([]byte(s))
		require.Error(t, err, s)
		require.True(t, Error.Has(err), s)
	}
}

func TestParse(t *testing.T) {
	type TC struct {
		value any
		hex   string
		err   error
	}

	huge, _ := new(big.Int).SetString("-115792089237316195423570985008687907853269984665640564039457584007913129639936", 10)

	tcs := []TC{
		{value: 0, hex: "0x0"},
		{value: -0, hex: "0x0"},
		{value: int8(-128), hex: "-0x80"},
		{value: uint8(255), hex: "0xff"},
		{value: uint64(18446744073709551615), hex: "0xffffffffffffffff"},
		{value: int64(-9223372036854775808), hex: "-0x8000000000000000"},
		{value: float64(-3), hex: "-0x3"},
		{value: float32(16), hex: "0x10"},
		{value: "42", hex: "0x2a"},
		{value: "-0042", hex: "-0x2a"},
		{value: "0X2A", hex: "0x2a"},
		{value: "-0x000", hex: "0x0"},
		{value: big.NewInt(-7), hex: "-0x7"},
		{value: *big.NewInt(7), hex: "0x7"},
		{value: uint256.NewInt(7), hex: "0x7"},
		{value: huge, hex: "-0x10000000000000000000000000000000000000000000000000000000000000000"},
		{value: 1.5, err: oops.New("unexpected")},
		{value: float64(1 << 60), err: oops.New("unexpected")},
		{value: "1e3", err: oops.New("unexpected")},
		{value: "0x", err: oops.New("unexpected")},
		{value: "", err: oops.New("unexpected")},
		{value: true, err: oops.New("unexpected")},
		{value: nil, err: oops.New("unexpected")},
		{value: (*big.Int)(nil), err: oops.New("unexpected")},
		{value: []byte{1}, err: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v", i, tc.value), func(t *testing.T) {
			blk, err := Parse(tc.value)
			if tc.err != nil {
				require.Error(t, err)
				require.True(t, web3conv.Is(err, web3conv.InvalidIntegerError))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.hex, blk.Hex())
		})
	}
}

func TestParseHex(t *testing.T) {
	blk, err := ParseHex("-0xFF")
	require.NoError(t, err)
	require.Equal(t, Block{Value: []byte{0xff}, Negative: true}, blk)

	_, err = ParseHex("-9x123")
	require.EqualError(t, err, `Invalid value given "-9x123". Error: not a valid hex string.`)
	require.True(t, web3conv.Is(err, web3conv.InvalidHexStringError))
}

func TestNative(t *testing.T) {
	safe := FromInt64(MaxSafeInteger)
	require.True(t, safe.IsSafe())
	require.Equal(t, int64(MaxSafeInteger), safe.Native())

	n, err := safe.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(MaxSafeInteger), n)

	neg := FromInt64(-MaxSafeInteger)
	require.Equal(t, int64(-MaxSafeInteger), neg.Native())

	unsafe := FromInt64(MaxSafeInteger + 1)
	require.False(t, unsafe.IsSafe())
	require.IsType(t, &big.Int{}, unsafe.Native())
	require.Equal(t, "9007199254740992", unsafe.String())

	_, err = unsafe.Int64()
	require.ErrorIs(t, err, ErrUnsafe)
}

func TestUint256(t *testing.T) {
	u, err := FromInt64(255).Uint256()
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(255), u)

	_, err = FromInt64(-1).Uint256()
	require.Error(t, err)

	limit := new(big.Int).Lsh(big.NewInt(1), 256)
	_, err = FromBig(limit).Uint256()
	require.Error(t, err)

	u, err = FromBig(limit.Sub(limit, big.NewInt(1))).Uint256()
	require.NoError(t, err)
	require.Equal(t, "0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", u.Hex())
}

func TestFromBig(t *testing.T) {
	i := big.NewInt(-300)
	blk := FromBig(i)
	require.Equal(t, Block{Value: []byte{0x01, 0x2c}, Negative: true}, blk)

	// The argument is not retained.
	i.SetInt64(5)
	require.Equal(t, "-300", blk.String())

	require.Equal(t, Block{Value: []byte{0}}, FromBig(new(big.Int)))
	require.Equal(t, 0, FromBig(new(big.Int)).Sign())
}
