package abicodec

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTupleValueShapes(t *testing.T) {
	typ := MustParseType("(address owner,uint256 amount,string memo)")
	owner := common.HexToAddress("0x00000000000000000000000000000000000000aa")

	want, err := EncodeParam(typ, []any{owner, 5, "hi"})
	require.NoError(t, err)

	type tagged struct {
		Who    common.Address `abi:"owner"`
		Value  *big.Int       `abi:"amount"`
		Note   string         `abi:"memo"`
		hidden int
	}
	type plain struct {
		Owner  common.Address
		Amount uint64
		Memo   string
	}
	named := NewTuple(owner, 5, "hi")

	shapes := map[string]any{
		"tuple":          named,
		"tuple pointer":  &named,
		"map":            map[string]any{"owner": owner, "amount": 5, "memo": "hi"},
		"tagged struct":  tagged{Who: owner, Value: big.NewInt(5), Note: "hi"},
		"plain struct":   plain{Owner: owner, Amount: 5, Memo: "hi"},
		"struct pointer": &plain{Owner: owner, Amount: 5, Memo: "hi"},
		"array":          [3]any{owner, 5, "hi"},
	}

	for name, value := range shapes {
		t.Run(name, func(t *testing.T) {
			got, err := EncodeParam(typ, value)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestTupleValueShapeErrors(t *testing.T) {
	typ := MustParseType("(uint8 a,bool b)")

	tests := []struct {
		name  string
		value any
		kind  error
	}{
		{"map missing field", map[string]any{"a": 1}, ErrInvalidValue},
		{"map extra field", map[string]any{"a": 1, "b": true, "c": 3}, ErrArityMismatch},
		{"struct missing field", struct{ A int }{1}, ErrInvalidValue},
		{"too many values", []any{1, true, 3}, ErrArityMismatch},
		{"not a tuple", 42, ErrInvalidValue},
		{"nil tuple pointer", (*Tuple)(nil), ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeParam(typ, tt.value)
			assert.ErrorIs(t, err, tt.kind)
		})
	}

	t.Run("map needs named components", func(t *testing.T) {
		_, err := EncodeParam(MustParseType("(uint8,bool)"), map[string]any{"": 1})
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestArrayValueShapes(t *testing.T) {
	typ := MustParseType("uint16[]")
	want, err := EncodeParam(typ, []any{1, 2})
	require.NoError(t, err)

	for name, value := range map[string]any{
		"[]int":    []int{1, 2},
		"[]uint16": []uint16{1, 2},
		"[2]int64": [2]int64{1, 2},
		"[]string": []string{"1", "0x2"},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := EncodeParam(typ, value)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err = EncodeParam(typ, 12)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestFixedArrayOfDynamic(t *testing.T) {
	// A fixed array of a dynamic type is itself dynamic and carries offsets,
	// but no count word.
	typ := MustParseType("string[2]")

	got, err := EncodeParam(typ, []string{"a", "b"})
	require.NoError(t, err)

	want := join(
		word(0x40),
		word(0x80),
		word(1), padded([]byte("a")),
		word(1), padded([]byte("b")),
	)
	assert.Equal(t, want, got)

	back, err := DecodeParam(typ, got)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, back)
}

func TestDynamicArrayOfStaticTuples(t *testing.T) {
	typ := MustParseType("(uint8,bool)[]")

	got, err := EncodeParam(typ, []any{NewTuple(1, true), NewTuple(2, false)})
	require.NoError(t, err)
	assert.Equal(t, words(2, 1, 1, 2, 0), got)

	back, err := DecodeParam(typ, got)
	require.NoError(t, err)
	elems := back.([]any)
	require.Len(t, elems, 2)
	assert.Equal(t, false, elems[1].(Tuple).At(1))
}

func TestDecodeSequenceEnd(t *testing.T) {
	// The reported extent covers the furthest tail chunk, so a parent can
	// account for bytes consumed.
	c := New()
	typ := MustParseType("(bytes,uint8)")
	body, err := c.EncodeParam(typ, NewTuple([]byte{1, 2, 3}, 7))
	require.NoError(t, err)

	_, size, err := c.decodeBody(typ, body)
	require.NoError(t, err)
	assert.Equal(t, len(body), size)
}
