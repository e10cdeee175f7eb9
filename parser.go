package abicodec

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// DynamicSize is the size ExtractArrayType reports for a "[]" suffix.
const DynamicSize = -1

// Argument is a type descriptor as it appears in ABI JSON:
// {"name": "...", "type": "...", "components": [...]}.
type Argument struct {
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	InternalType string     `json:"internalType,omitempty"`
	Components   []Argument `json:"components,omitempty"`
	Indexed      bool       `json:"indexed,omitempty"`
}

// ParamType parses the argument's type together with its components.
func (a Argument) ParamType() (ParamType, error) {
	return ParseType(a.Type, a.Components)
}

// ParseArguments decodes a JSON list of type descriptors.
func ParseArguments(data []byte) ([]Argument, error) {
	var args []Argument
	if err := json.Unmarshal(data, &args); err != nil {
		return nil, newError(ErrInvalidType, nil, "malformed descriptor list: %v", err)
	}
	return args, nil
}

// ArgumentTypes parses every argument in order.
func ArgumentTypes(args []Argument) ([]ParamType, error) {
	types := make([]ParamType, len(args))
	for i, a := range args {
		t, err := a.ParamType()
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return types, nil
}

// ParseType turns a type name into a ParamType. Array suffixes are stripped
// right to left, so "uint256[2][]" is a dynamic array of uint256[2].
// components supplies the members of a "tuple" base type; inline tuple
// syntax "(T1,T2)" or "tuple(T1,T2)" is accepted as well.
func ParseType(typeStr string, components []Argument) (ParamType, error) {
	s := strings.TrimSpace(typeStr)
	if strings.HasSuffix(s, "]") {
		elem, size, err := ExtractArrayType(s)
		if err != nil {
			return nil, err
		}
		inner, err := ParseType(elem, components)
		if err != nil {
			return nil, err
		}
		if size == DynamicSize {
			return DynamicArrayType{Elem: inner}, nil
		}
		return FixedArrayType{Elem: inner, Size: size}, nil
	}
	return parseBase(s, components)
}

// MustParseType is like ParseType but panics on error.
// Use only with compile-time constant type names.
func MustParseType(typeStr string) ParamType {
	t, err := ParseType(typeStr, nil)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTypes parses a list of type names without components.
func ParseTypes(typeStrs ...string) ([]ParamType, error) {
	types := make([]ParamType, len(typeStrs))
	for i, s := range typeStrs {
		t, err := ParseType(s, nil)
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return types, nil
}

// ParseTypeList parses a comma separated list such as "uint256,(address,bool)[]".
func ParseTypeList(list string) ([]ParamType, error) {
	parts, err := splitTopLevel(list)
	if err != nil {
		return nil, err
	}
	return ParseTypes(parts...)
}

// ExtractArrayType strips the outermost (rightmost) array suffix from typeStr.
// It returns the element type name and the array size, which is DynamicSize
// for "[]".
func ExtractArrayType(typeStr string) (elem string, size int, err error) {
	s := strings.TrimSpace(typeStr)
	if !strings.HasSuffix(s, "]") {
		return "", 0, &CodecError{Kind: ErrInvalidType, Type: s, Detail: "not an array type"}
	}
	open := strings.LastIndexByte(s, '[')
	if open <= 0 {
		return "", 0, &CodecError{Kind: ErrInvalidType, Type: s, Detail: "unbalanced array suffix"}
	}
	elem = s[:open]
	digits := s[open+1 : len(s)-1]
	if digits == "" {
		return elem, DynamicSize, nil
	}
	if !isDigits(digits) {
		return "", 0, &CodecError{Kind: ErrInvalidType, Type: s, Detail: "malformed array size " + strconv.Quote(digits)}
	}
	size, convErr := strconv.Atoi(digits)
	if convErr != nil {
		return "", 0, &CodecError{Kind: ErrInvalidType, Type: s, Detail: "array size too large"}
	}
	return elem, size, nil
}

func parseBase(s string, components []Argument) (ParamType, error) {
	switch s {
	case "address":
		return AddressType{}, nil
	case "bool":
		return BoolType{}, nil
	case "string":
		return StringType{}, nil
	case "bytes":
		return BytesType{}, nil
	case "uint":
		return UIntType{Bits: 256}, nil
	case "int":
		return IntType{Bits: 256}, nil
	case "tuple":
		return tupleFromArguments(components)
	}

	switch {
	case strings.HasPrefix(s, "("):
		return parseInlineTuple(s)
	case strings.HasPrefix(s, "tuple("):
		return parseInlineTuple(strings.TrimPrefix(s, "tuple"))
	case strings.HasPrefix(s, "uint"):
		bits, ok := parseWidth(s[len("uint"):])
		if !ok || bits < 8 || bits > 256 || bits%8 != 0 {
			return nil, invalidType(s, "integer width must be a multiple of 8 in [8,256]")
		}
		return UIntType{Bits: bits}, nil
	case strings.HasPrefix(s, "int"):
		bits, ok := parseWidth(s[len("int"):])
		if !ok || bits < 8 || bits > 256 || bits%8 != 0 {
			return nil, invalidType(s, "integer width must be a multiple of 8 in [8,256]")
		}
		return IntType{Bits: bits}, nil
	case strings.HasPrefix(s, "bytes"):
		size, ok := parseWidth(s[len("bytes"):])
		if !ok || size < 1 || size > 32 {
			return nil, invalidType(s, "fixed bytes size must be in [1,32]")
		}
		return FixedBytesType{Size: size}, nil
	}
	return nil, invalidType(s, "unsupported type")
}

func tupleFromArguments(components []Argument) (ParamType, error) {
	tuple := TupleType{Components: make([]Component, len(components))}
	for i, c := range components {
		t, err := c.ParamType()
		if err != nil {
			return nil, err
		}
		tuple.Components[i] = Component{Name: c.Name, Type: t}
	}
	return tuple, nil
}

// parseInlineTuple parses "(T1 name1,T2,...)".
func parseInlineTuple(s string) (ParamType, error) {
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return nil, invalidType(s, "malformed tuple")
	}
	parts, err := splitTopLevel(s[1 : len(s)-1])
	if err != nil {
		return nil, err
	}
	tuple := TupleType{Components: make([]Component, len(parts))}
	for i, part := range parts {
		typeName, name := splitName(part)
		t, err := ParseType(typeName, nil)
		if err != nil {
			return nil, err
		}
		tuple.Components[i] = Component{Name: name, Type: t}
	}
	return tuple, nil
}

// splitTopLevel splits on commas that are not nested inside parentheses.
func splitTopLevel(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var (
		parts []string
		depth int
		start int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, invalidType(s, "unbalanced parentheses")
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, invalidType(s, "unbalanced parentheses")
	}
	parts = append(parts, strings.TrimSpace(s[start:]))
	for _, p := range parts {
		if p == "" {
			return nil, invalidType(s, "empty type in list")
		}
	}
	return parts, nil
}

// splitName separates "uint256 amount" into type and name. A space inside
// parentheses belongs to the type.
func splitName(part string) (typeName, name string) {
	depth := 0
	for i := 0; i < len(part); i++ {
		switch part[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ' ':
			if depth == 0 {
				return part[:i], strings.TrimSpace(part[i+1:])
			}
		}
	}
	return part, ""
}

// parseWidth parses the numeric suffix of uintN/intN/bytesN. Leading zeros
// are rejected so every type has one spelling.
func parseWidth(digits string) (int, bool) {
	if !isDigits(digits) || (len(digits) > 1 && digits[0] == '0') {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func invalidType(s, detail string) *CodecError {
	return &CodecError{Kind: ErrInvalidType, Type: s, Detail: detail}
}

// FromABIType converts a go-ethereum ABI type descriptor. go-ethereum
// accepts some widths the codec does not (uint7), so the result is
// validated.
func FromABIType(t abi.Type) (ParamType, error) {
	pt, err := fromABIType(t)
	if err != nil {
		return nil, err
	}
	if err := validateType(pt); err != nil {
		return nil, err
	}
	return pt, nil
}

func fromABIType(t abi.Type) (ParamType, error) {
	switch t.T {
	case abi.AddressTy:
		return AddressType{}, nil
	case abi.BoolTy:
		return BoolType{}, nil
	case abi.UintTy:
		return UIntType{Bits: t.Size}, nil
	case abi.IntTy:
		return IntType{Bits: t.Size}, nil
	case abi.FixedBytesTy:
		return FixedBytesType{Size: t.Size}, nil
	case abi.HashTy:
		return FixedBytesType{Size: 32}, nil
	case abi.FunctionTy:
		return FixedBytesType{Size: 24}, nil
	case abi.BytesTy:
		return BytesType{}, nil
	case abi.StringTy:
		return StringType{}, nil
	case abi.SliceTy:
		elem, err := fromABIType(*t.Elem)
		if err != nil {
			return nil, err
		}
		return DynamicArrayType{Elem: elem}, nil
	case abi.ArrayTy:
		elem, err := fromABIType(*t.Elem)
		if err != nil {
			return nil, err
		}
		return FixedArrayType{Elem: elem, Size: t.Size}, nil
	case abi.TupleTy:
		tuple := TupleType{Components: make([]Component, len(t.TupleElems))}
		for i, elem := range t.TupleElems {
			ct, err := fromABIType(*elem)
			if err != nil {
				return nil, err
			}
			name := ""
			if i < len(t.TupleRawNames) {
				name = t.TupleRawNames[i]
			}
			tuple.Components[i] = Component{Name: name, Type: ct}
		}
		return tuple, nil
	default:
		return nil, invalidType(t.String(), "unsupported type")
	}
}

// FromABIArguments converts go-ethereum arguments, keeping their names.
func FromABIArguments(args abi.Arguments) ([]Component, error) {
	out := make([]Component, len(args))
	for i, a := range args {
		t, err := FromABIType(a.Type)
		if err != nil {
			return nil, err
		}
		out[i] = Component{Name: a.Name, Type: t}
	}
	return out, nil
}
