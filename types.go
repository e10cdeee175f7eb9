package abicodec

import (
	"strconv"
	"strings"
)

// WordSize is the alignment granularity of the encoding.
const WordSize = 32

// ParamType describes an ABI type. This is a sealed interface - only the
// variants declared in this file implement it.
type ParamType interface {
	// isParamType is unexported to seal the interface.
	isParamType()

	// String returns the canonical type name, e.g. "uint256[2][]" or "(address,bytes)".
	String() string

	// IsDynamic returns true if the type is encoded by offset into a tail region.
	IsDynamic() bool
}

// AddressType is a 20-byte account address.
type AddressType struct{}

// BoolType is a boolean.
type BoolType struct{}

// UIntType is an unsigned integer of Bits width.
type UIntType struct {
	Bits int
}

// IntType is a two's complement signed integer of Bits width.
type IntType struct {
	Bits int
}

// FixedBytesType is a byte string of exactly Size bytes (bytes1 .. bytes32).
type FixedBytesType struct {
	Size int
}

// BytesType is a variable-length byte string.
type BytesType struct{}

// StringType is a variable-length UTF-8 string.
type StringType struct{}

// FixedArrayType is Size elements of Elem.
type FixedArrayType struct {
	Elem ParamType
	Size int
}

// DynamicArrayType is a length-prefixed sequence of Elem.
type DynamicArrayType struct {
	Elem ParamType
}

// Component is a named member of a tuple.
type Component struct {
	Name string
	Type ParamType
}

// TupleType is an ordered list of components.
type TupleType struct {
	Components []Component
}

func (AddressType) isParamType()      {}
func (BoolType) isParamType()         {}
func (UIntType) isParamType()         {}
func (IntType) isParamType()          {}
func (FixedBytesType) isParamType()   {}
func (BytesType) isParamType()        {}
func (StringType) isParamType()       {}
func (FixedArrayType) isParamType()   {}
func (DynamicArrayType) isParamType() {}
func (TupleType) isParamType()        {}

func (AddressType) String() string      { return "address" }
func (BoolType) String() string         { return "bool" }
func (t UIntType) String() string       { return "uint" + strconv.Itoa(t.Bits) }
func (t IntType) String() string        { return "int" + strconv.Itoa(t.Bits) }
func (t FixedBytesType) String() string { return "bytes" + strconv.Itoa(t.Size) }
func (BytesType) String() string        { return "bytes" }
func (StringType) String() string       { return "string" }

func (t FixedArrayType) String() string {
	return t.Elem.String() + "[" + strconv.Itoa(t.Size) + "]"
}

func (t DynamicArrayType) String() string {
	return t.Elem.String() + "[]"
}

func (t TupleType) String() string {
	names := make([]string, len(t.Components))
	for i, c := range t.Components {
		names[i] = c.Type.String()
	}
	return "(" + strings.Join(names, ",") + ")"
}

func (AddressType) IsDynamic() bool      { return false }
func (BoolType) IsDynamic() bool         { return false }
func (UIntType) IsDynamic() bool         { return false }
func (IntType) IsDynamic() bool          { return false }
func (FixedBytesType) IsDynamic() bool   { return false }
func (BytesType) IsDynamic() bool        { return true }
func (StringType) IsDynamic() bool       { return true }
func (DynamicArrayType) IsDynamic() bool { return true }

// IsDynamic returns true if the element type is dynamic.
// A zero-length array of a dynamic type is still dynamic.
func (t FixedArrayType) IsDynamic() bool {
	return t.Elem.IsDynamic()
}

// IsDynamic returns true if any component is dynamic.
func (t TupleType) IsDynamic() bool {
	for _, c := range t.Components {
		if c.Type.IsDynamic() {
			return true
		}
	}
	return false
}

// Types returns the component types in order.
func (t TupleType) Types() []ParamType {
	types := make([]ParamType, len(t.Components))
	for i, c := range t.Components {
		types[i] = c.Type
	}
	return types
}

// headSize returns the number of bytes t occupies in its parent's head region:
// one word for dynamic types, the full static encoding otherwise. ok is false
// if the size does not fit in an int.
func headSize(t ParamType) (int, bool) {
	if t.IsDynamic() {
		return WordSize, true
	}
	switch v := t.(type) {
	case FixedArrayType:
		elem, ok := headSize(v.Elem)
		if !ok {
			return 0, false
		}
		if v.Size != 0 && elem > maxInt/v.Size {
			return 0, false
		}
		return elem * v.Size, true
	case TupleType:
		total := 0
		for _, c := range v.Components {
			n, ok := headSize(c.Type)
			if !ok || total > maxInt-n {
				return 0, false
			}
			total += n
		}
		return total, true
	default:
		return WordSize, true
	}
}

const maxInt = int(^uint(0) >> 1)
