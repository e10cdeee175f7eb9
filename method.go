package abicodec

import (
	"bytes"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
)

// SelectorSize is the length of a function selector.
const SelectorSize = 4

// Method describes a contract function for building call data and decoding
// its return data.
type Method struct {
	Name    string
	Inputs  []Component
	Outputs []Component

	codec *Codec
}

// MethodOption configures a Method.
type MethodOption func(*Method)

// WithCodec sets the codec a method encodes and decodes with.
func WithCodec(c *Codec) MethodOption {
	return func(m *Method) {
		if c != nil {
			m.codec = c
		}
	}
}

// NewMethod creates a Method from its name and argument lists.
func NewMethod(name string, inputs, outputs []Component, opts ...MethodOption) *Method {
	m := &Method{
		Name:    name,
		Inputs:  inputs,
		Outputs: outputs,
		codec:   defaultCodec,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ParseSignature parses "name(T1,T2 label)" with an optional output list,
// written either as "name(T1)(R1)" or "name(T1) returns (R1)".
func ParseSignature(sig string, opts ...MethodOption) (*Method, error) {
	s := strings.TrimSpace(sig)
	open := strings.IndexByte(s, '(')
	if open <= 0 {
		return nil, invalidType(sig, "malformed signature")
	}
	name := strings.TrimSpace(s[:open])
	end := matchParen(s, open)
	if end < 0 {
		return nil, invalidType(sig, "unbalanced parentheses")
	}
	inputs, err := parseInlineTuple(s[open : end+1])
	if err != nil {
		return nil, err
	}

	var outputs []Component
	rest := strings.TrimSpace(s[end+1:])
	rest = strings.TrimSpace(strings.TrimPrefix(rest, "returns"))
	if rest != "" {
		out, err := parseInlineTuple(rest)
		if err != nil {
			return nil, err
		}
		outputs = out.(TupleType).Components
	}
	return NewMethod(name, inputs.(TupleType).Components, outputs, opts...), nil
}

// MustParseSignature is like ParseSignature but panics on error.
func MustParseSignature(sig string, opts ...MethodOption) *Method {
	m, err := ParseSignature(sig, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func matchParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// Signature returns the canonical signature, e.g. "transfer(address,uint256)".
func (m *Method) Signature() string {
	return m.Name + TupleType{Components: m.Inputs}.String()
}

// Selector returns the first four bytes of the Keccak-256 hash of the signature.
func (m *Method) Selector() [SelectorSize]byte {
	return EncodeFunctionSignature(m.Signature())
}

// InputTypes returns the input types in order.
func (m *Method) InputTypes() []ParamType {
	return TupleType{Components: m.Inputs}.Types()
}

// OutputTypes returns the output types in order.
func (m *Method) OutputTypes() []ParamType {
	return TupleType{Components: m.Outputs}.Types()
}

// EncodeCall builds call data: the selector followed by the encoded arguments.
func (m *Method) EncodeCall(args ...any) ([]byte, error) {
	if len(args) != len(m.Inputs) {
		return nil, &ArgumentError{
			Method: m.Name,
			Index:  len(args),
			Err:    newError(ErrArityMismatch, TupleType{Components: m.Inputs}, "got %d arguments, want %d", len(args), len(m.Inputs)),
		}
	}

	chunks := make([]chunk, len(args))
	for i, in := range m.Inputs {
		if err := validateType(in.Type); err != nil {
			return nil, &ArgumentError{Method: m.Name, Index: i, Err: err}
		}
		ch, err := m.codec.encode(in.Type, args[i])
		if err != nil {
			return nil, &ArgumentError{Method: m.Name, Index: i, Err: err}
		}
		chunks[i] = ch
	}

	sel := m.Selector()
	body := encodeHeadTail(chunks)
	out := make([]byte, 0, SelectorSize+len(body))
	out = append(out, sel[:]...)
	return append(out, body...), nil
}

// DecodeCall decodes call data produced by EncodeCall.
func (m *Method) DecodeCall(data []byte) (Tuple, error) {
	sel := m.Selector()
	if len(data) < SelectorSize || !bytes.Equal(data[:SelectorSize], sel[:]) {
		return Tuple{}, &CodecError{Kind: ErrSelectorMismatch, Type: m.Signature(), Detail: "call data does not start with the method selector"}
	}
	return m.decode(m.Inputs, data[SelectorSize:])
}

// DecodeOutputs decodes the return data of a call.
func (m *Method) DecodeOutputs(data []byte) (Tuple, error) {
	return m.decode(m.Outputs, data)
}

func (m *Method) decode(components []Component, data []byte) (Tuple, error) {
	t := TupleType{Components: components}
	values, err := m.codec.DecodeParameters(t.Types(), data)
	if err != nil {
		return Tuple{}, err
	}
	return newTuple(t, values), nil
}

// EncodeFunctionSignature hashes a canonical signature into its selector.
func EncodeFunctionSignature(sig string) [SelectorSize]byte {
	var sel [SelectorSize]byte
	copy(sel[:], crypto.Keccak256([]byte(sig))[:SelectorSize])
	return sel
}

// MethodFromABI converts a go-ethereum method definition.
func MethodFromABI(method abi.Method, opts ...MethodOption) (*Method, error) {
	inputs, err := FromABIArguments(method.Inputs)
	if err != nil {
		return nil, &ArgumentError{Method: method.Name, Index: -1, Err: err}
	}
	outputs, err := FromABIArguments(method.Outputs)
	if err != nil {
		return nil, &ArgumentError{Method: method.Name, Index: -1, Err: err}
	}
	return NewMethod(method.RawName, inputs, outputs, opts...), nil
}

// MethodsFromABI converts every method of a go-ethereum ABI, keyed by the
// ABI's unique method name (overloads carry a numeric suffix).
func MethodsFromABI(contractABI abi.ABI, opts ...MethodOption) (map[string]*Method, error) {
	methods := make(map[string]*Method, len(contractABI.Methods))
	for name, method := range contractABI.Methods {
		m, err := MethodFromABI(method, opts...)
		if err != nil {
			return nil, err
		}
		methods[name] = m
	}
	return methods, nil
}

// ParseABI parses a JSON ABI and returns its methods.
func ParseABI(abiJSON string, opts ...MethodOption) (map[string]*Method, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, &CodecError{Kind: ErrInvalidType, Detail: err.Error()}
	}
	return MethodsFromABI(parsed, opts...)
}

// MustParseABI is like ParseABI but panics on error.
func MustParseABI(abiJSON string, opts ...MethodOption) map[string]*Method {
	methods, err := ParseABI(abiJSON, opts...)
	if err != nil {
		panic(err)
	}
	return methods
}
