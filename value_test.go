package abicodec

import (
	"math/big"
	"testing"
)

func TestParamTypeString(t *testing.T) {
	tests := []struct {
		typ  ParamType
		want string
	}{
		{AddressType{}, "address"},
		{BoolType{}, "bool"},
		{UIntType{Bits: 256}, "uint256"},
		{IntType{Bits: 8}, "int8"},
		{FixedBytesType{Size: 32}, "bytes32"},
		{BytesType{}, "bytes"},
		{StringType{}, "string"},
		{FixedArrayType{Elem: AddressType{}, Size: 3}, "address[3]"},
		{DynamicArrayType{Elem: FixedArrayType{Elem: BoolType{}, Size: 2}}, "bool[2][]"},
		{TupleType{Components: []Component{{Name: "a", Type: UIntType{Bits: 8}}, {Type: BytesType{}}}}, "(uint8,bytes)"},
		{TupleType{}, "()"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if tt.typ.String() != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, tt.typ.String())
			}
		})
	}
}

func TestParamTypeIsDynamic(t *testing.T) {
	tests := []struct {
		typ     string
		dynamic bool
		head    int
	}{
		{"uint256", false, 32},
		{"bytes", true, 32},
		{"string", true, 32},
		{"uint256[3]", false, 96},
		{"uint256[0]", false, 0},
		{"string[0]", true, 32},
		{"uint256[]", true, 32},
		{"(uint256,bool)", false, 64},
		{"(uint256,bytes)", true, 32},
		{"(uint8,(bool,address)[2])", false, 160},
		{"(uint8,(bool,string)[2])", true, 32},
		{"uint8[2][3]", false, 192},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			typ := MustParseType(tt.typ)
			if typ.IsDynamic() != tt.dynamic {
				t.Errorf("Expected dynamic=%v, got %v", tt.dynamic, typ.IsDynamic())
			}
			head, ok := headSize(typ)
			if !ok {
				t.Fatal("headSize overflowed")
			}
			if head != tt.head {
				t.Errorf("Expected head size %d, got %d", tt.head, head)
			}
		})
	}
}

func TestHeadSizeOverflow(t *testing.T) {
	huge := FixedArrayType{Elem: FixedArrayType{Elem: UIntType{Bits: 256}, Size: maxInt / 2}, Size: 4}
	if _, ok := headSize(huge); ok {
		t.Error("Expected headSize to report overflow")
	}

	// Decoding such a type fails on the input bound rather than panicking.
	if _, err := DecodeParameters([]ParamType{huge}, words(1, 2)); err == nil {
		t.Error("Expected an error decoding an oversized static type")
	}
}

func TestTuple(t *testing.T) {
	typ := TupleType{Components: []Component{
		{Name: "amount", Type: UIntType{Bits: 256}},
		{Type: BoolType{}},
		{Name: "memo", Type: StringType{}},
	}}
	tuple := newTuple(typ, []any{big.NewInt(5), true, "hi"})

	t.Run("Len", func(t *testing.T) {
		if tuple.Len() != 3 {
			t.Errorf("Expected 3 fields, got %d", tuple.Len())
		}
	})

	t.Run("Get by name", func(t *testing.T) {
		v, ok := tuple.Get("memo")
		if !ok || v != "hi" {
			t.Errorf("Expected memo=hi, got %v (%v)", v, ok)
		}
	})

	t.Run("Get unnamed", func(t *testing.T) {
		if _, ok := tuple.Get(""); ok {
			t.Error("Empty name should not match unnamed components")
		}
	})

	t.Run("At", func(t *testing.T) {
		if tuple.At(1) != true {
			t.Errorf("Expected true at index 1, got %v", tuple.At(1))
		}
		if tuple.At(3) != nil || tuple.At(-1) != nil {
			t.Error("Out of range index should return nil")
		}
	})

	t.Run("Values", func(t *testing.T) {
		values := tuple.Values()
		if len(values) != 3 || values[2] != "hi" {
			t.Errorf("Unexpected values %v", values)
		}
	})

	t.Run("NewTuple is unnamed", func(t *testing.T) {
		in := NewTuple(1, 2)
		for i, f := range in.Fields {
			if f.Name != "" {
				t.Errorf("Field %d: expected no name, got %q", i, f.Name)
			}
		}
	})
}
