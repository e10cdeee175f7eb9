package abicodec

import (
	"fmt"

	"go.uber.org/zap"
)

// Codec encodes and decodes ABI values. A Codec holds only its
// configuration and is safe for concurrent use.
type Codec struct {
	logger     *zap.Logger
	strictUTF8 bool
}

// New creates a Codec with the given options.
func New(opts ...CodecOption) *Codec {
	c := &Codec{
		logger:     zap.NewNop(),
		strictUTF8: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EncodeParam encodes a single value on its own: a static value's words, or
// a dynamic value's body without the offset word a parameter list would put
// in front of it.
func (c *Codec) EncodeParam(t ParamType, value any) ([]byte, error) {
	if err := validateType(t); err != nil {
		return nil, c.reject("encode", []ParamType{t}, 0, err)
	}
	ch, err := c.encode(t, value)
	if err != nil {
		return nil, c.reject("encode", []ParamType{t}, 0, err)
	}
	return ch.data, nil
}

// EncodeParameters encodes values as an implicit tuple of types.
func (c *Codec) EncodeParameters(types []ParamType, values []any) ([]byte, error) {
	if len(types) != len(values) {
		return nil, c.reject("encode", types, 0, &CodecError{
			Kind:   ErrArityMismatch,
			Detail: fmt.Sprintf("got %d values for %d types", len(values), len(types)),
		})
	}
	for _, t := range types {
		if err := validateType(t); err != nil {
			return nil, c.reject("encode", types, 0, err)
		}
	}
	chunks := make([]chunk, len(types))
	for i, t := range types {
		ch, err := c.encode(t, values[i])
		if err != nil {
			return nil, c.reject("encode", types, 0, err)
		}
		chunks[i] = ch
	}
	return encodeHeadTail(chunks), nil
}

// DecodeParam decodes a single value whose encoding starts at data[0], the
// inverse of EncodeParam.
func (c *Codec) DecodeParam(t ParamType, data []byte) (any, error) {
	if err := validateType(t); err != nil {
		return nil, c.reject("decode", []ParamType{t}, len(data), err)
	}
	var (
		v   any
		err error
	)
	if t.IsDynamic() {
		v, _, err = c.decodeBody(t, data)
	} else {
		v, _, err = c.decodeStatic(t, data)
	}
	if err != nil {
		return nil, c.reject("decode", []ParamType{t}, len(data), err)
	}
	return v, nil
}

// DecodeParameters decodes data, typically a call's return bytes, as an
// implicit tuple of types. data is untrusted: every length, offset and
// count it declares is checked against its actual size.
func (c *Codec) DecodeParameters(types []ParamType, data []byte) ([]any, error) {
	for _, t := range types {
		if err := validateType(t); err != nil {
			return nil, c.reject("decode", types, len(data), err)
		}
	}
	parent := TupleType{Components: make([]Component, len(types))}
	for i, t := range types {
		parent.Components[i] = Component{Type: t}
	}
	values, _, err := c.decodeSequence(parent, len(types), func(i int) ParamType { return types[i] }, data)
	if err != nil {
		return nil, c.reject("decode", types, len(data), err)
	}
	return values, nil
}

// encode dispatches on the type variant.
func (c *Codec) encode(t ParamType, value any) (chunk, error) {
	var (
		data []byte
		err  error
	)
	switch v := t.(type) {
	case AddressType:
		data, err = encodeAddress(v, value)
	case BoolType:
		data, err = encodeBool(v, value)
	case UIntType:
		data, err = c.encodeInteger(v, value, v.Bits, false)
	case IntType:
		data, err = c.encodeInteger(v, value, v.Bits, true)
	case FixedBytesType:
		data, err = encodeFixedBytes(v, value)
	case BytesType:
		data, err = encodeBytes(v, value)
		return chunk{data: data, dynamic: true}, err
	case StringType:
		data, err = encodeString(v, value)
		return chunk{data: data, dynamic: true}, err
	case FixedArrayType:
		return c.encodeFixedArray(v, value)
	case DynamicArrayType:
		return c.encodeDynamicArray(v, value)
	case TupleType:
		return c.encodeTuple(v, value)
	default:
		return chunk{}, newError(ErrInvalidType, t, "unsupported type %T", t)
	}
	return chunk{data: data, dynamic: false}, err
}

func (c *Codec) encodeInteger(t ParamType, value any, bits int, signed bool) ([]byte, error) {
	n, err := toBigInt(t, value)
	if err != nil {
		return nil, err
	}
	return encodeInteger(t, n, bits, signed)
}

func (c *Codec) reject(op string, types []ParamType, size int, err error) error {
	if ce := c.logger.Check(zap.DebugLevel, "abi "+op+" rejected"); ce != nil {
		ce.Write(
			zap.Strings("types", typeNames(types)),
			zap.Int("len", size),
			zap.Error(err),
		)
	}
	return err
}

// validateType checks a descriptor at every depth before any output is produced.
func validateType(t ParamType) error {
	switch v := t.(type) {
	case nil:
		return &CodecError{Kind: ErrInvalidType, Detail: "nil type"}
	case AddressType, BoolType, BytesType, StringType:
		return nil
	case UIntType:
		if v.Bits < 8 || v.Bits > 256 || v.Bits%8 != 0 {
			return newError(ErrInvalidType, v, "integer width must be a multiple of 8 in [8,256]")
		}
	case IntType:
		if v.Bits < 8 || v.Bits > 256 || v.Bits%8 != 0 {
			return newError(ErrInvalidType, v, "integer width must be a multiple of 8 in [8,256]")
		}
	case FixedBytesType:
		if v.Size < 1 || v.Size > 32 {
			return newError(ErrInvalidType, v, "fixed bytes size must be in [1,32]")
		}
	case FixedArrayType:
		if v.Size < 0 {
			return &CodecError{Kind: ErrInvalidType, Detail: "negative array size"}
		}
		return validateType(v.Elem)
	case DynamicArrayType:
		return validateType(v.Elem)
	case TupleType:
		for _, comp := range v.Components {
			if err := validateType(comp.Type); err != nil {
				return err
			}
		}
	default:
		return &CodecError{Kind: ErrInvalidType, Detail: "unknown type variant"}
	}
	return nil
}

func typeNames(types []ParamType) []string {
	names := make([]string, len(types))
	for i, t := range types {
		if t == nil {
			names[i] = "<nil>"
			continue
		}
		names[i] = t.String()
	}
	return names
}

// defaultCodec backs the package-level functions. It is never modified.
var defaultCodec = New()

// EncodeParam encodes a single value with the default codec.
func EncodeParam(t ParamType, value any) ([]byte, error) {
	return defaultCodec.EncodeParam(t, value)
}

// EncodeParameters encodes a parameter list with the default codec.
func EncodeParameters(types []ParamType, values []any) ([]byte, error) {
	return defaultCodec.EncodeParameters(types, values)
}

// DecodeParam decodes a single value with the default codec.
func DecodeParam(t ParamType, data []byte) (any, error) {
	return defaultCodec.DecodeParam(t, data)
}

// DecodeParameters decodes a parameter list with the default codec.
func DecodeParameters(types []ParamType, data []byte) ([]any, error) {
	return defaultCodec.DecodeParameters(types, data)
}

// EncodeParametersByType parses typeStrs and encodes values with the default codec.
func EncodeParametersByType(typeStrs []string, values []any) ([]byte, error) {
	types, err := ParseTypes(typeStrs...)
	if err != nil {
		return nil, err
	}
	return defaultCodec.EncodeParameters(types, values)
}

// DecodeParametersByType parses typeStrs and decodes data with the default codec.
func DecodeParametersByType(typeStrs []string, data []byte) ([]any, error) {
	types, err := ParseTypes(typeStrs...)
	if err != nil {
		return nil, err
	}
	return defaultCodec.DecodeParameters(types, data)
}
