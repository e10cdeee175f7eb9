package abicodec

import (
	"reflect"
	"strings"
)

// encodeFixedArray concatenates static elements, or lays dynamic elements
// out with head/tail so the whole array is referenced by one offset.
func (c *Codec) encodeFixedArray(t FixedArrayType, value any) (chunk, error) {
	elems, err := toSlice(t, value)
	if err != nil {
		return chunk{}, err
	}
	if len(elems) != t.Size {
		return chunk{}, newError(ErrArityMismatch, t, "got %d elements, want %d", len(elems), t.Size)
	}
	chunks, err := c.encodeElems(t.Elem, elems)
	if err != nil {
		return chunk{}, err
	}
	if t.Elem.IsDynamic() {
		return chunk{data: encodeHeadTail(chunks), dynamic: true}, nil
	}
	return chunk{data: concatChunks(chunks), dynamic: false}, nil
}

// encodeDynamicArray writes the element count followed by the elements.
// Offsets inside are measured from just after the count word.
func (c *Codec) encodeDynamicArray(t DynamicArrayType, value any) (chunk, error) {
	elems, err := toSlice(t, value)
	if err != nil {
		return chunk{}, err
	}
	chunks, err := c.encodeElems(t.Elem, elems)
	if err != nil {
		return chunk{}, err
	}
	body := encodeHeadTail(chunks)
	out := make([]byte, 0, WordSize+len(body))
	out = append(out, encodeSize(len(elems))...)
	out = append(out, body...)
	return chunk{data: out, dynamic: true}, nil
}

// encodeTuple lays the components out with head/tail. The tuple is dynamic
// iff any component is.
func (c *Codec) encodeTuple(t TupleType, value any) (chunk, error) {
	values, err := toTupleValues(t, value)
	if err != nil {
		return chunk{}, err
	}
	chunks := make([]chunk, len(t.Components))
	for i, comp := range t.Components {
		ch, err := c.encode(comp.Type, values[i])
		if err != nil {
			return chunk{}, err
		}
		chunks[i] = ch
	}
	return chunk{data: encodeHeadTail(chunks), dynamic: t.IsDynamic()}, nil
}

func (c *Codec) encodeElems(elem ParamType, values []any) ([]chunk, error) {
	chunks := make([]chunk, len(values))
	for i, v := range values {
		ch, err := c.encode(elem, v)
		if err != nil {
			return nil, err
		}
		chunks[i] = ch
	}
	return chunks, nil
}

// decodeSequence decodes n consecutive head entries of region. Static
// values are read in place; dynamic values are followed through their
// offset, which is relative to the start of region. It returns the values
// and the number of bytes of region they span.
func (c *Codec) decodeSequence(parent ParamType, n int, typeAt func(int) ParamType, region []byte) ([]any, int, error) {
	heads := 0
	for i := 0; i < n; i++ {
		size, ok := headSize(typeAt(i))
		if !ok || size > len(region)-heads {
			return nil, 0, newError(ErrBufferOverrun, parent, "%d head entries do not fit in %d bytes", n, len(region))
		}
		heads += size
	}

	values := make([]any, n)
	head, end := 0, heads
	for i := 0; i < n; i++ {
		t := typeAt(i)
		if !t.IsDynamic() {
			v, size, err := c.decodeStatic(t, region[head:])
			if err != nil {
				return nil, 0, err
			}
			values[i] = v
			head += size
			continue
		}
		off, err := readOffset(t, region, head)
		if err != nil {
			return nil, 0, err
		}
		v, size, err := c.decodeBody(t, region[off:])
		if err != nil {
			return nil, 0, err
		}
		values[i] = v
		head += WordSize
		if off+size > end {
			end = off + size
		}
	}
	return values, end, nil
}

// decodeStatic decodes a static value at the start of data.
func (c *Codec) decodeStatic(t ParamType, data []byte) (any, int, error) {
	size, ok := headSize(t)
	if !ok || size > len(data) {
		return nil, 0, newError(ErrBufferOverrun, t, "need %d bytes, have %d", size, len(data))
	}
	switch v := t.(type) {
	case AddressType:
		return decodeAddress(data), WordSize, nil
	case BoolType:
		return decodeBool(data), WordSize, nil
	case UIntType:
		return decodeInteger(data, v.Bits, false), WordSize, nil
	case IntType:
		return decodeInteger(data, v.Bits, true), WordSize, nil
	case FixedBytesType:
		return decodeFixedBytes(v, data), WordSize, nil
	case FixedArrayType:
		elems, _, err := c.decodeSequence(v, v.Size, func(int) ParamType { return v.Elem }, data[:size])
		if err != nil {
			return nil, 0, err
		}
		return elems, size, nil
	case TupleType:
		values, _, err := c.decodeSequence(v, len(v.Components), func(i int) ParamType { return v.Components[i].Type }, data[:size])
		if err != nil {
			return nil, 0, err
		}
		return newTuple(v, values), size, nil
	default:
		return nil, 0, newError(ErrInvalidType, t, "not a static type")
	}
}

// decodeBody decodes a dynamic value whose encoding starts at data[0].
func (c *Codec) decodeBody(t ParamType, data []byte) (any, int, error) {
	switch v := t.(type) {
	case BytesType:
		return decodeDynamicBytes(v, data)
	case StringType:
		return decodeString(v, data, c.strictUTF8)
	case DynamicArrayType:
		elemSize, ok := headSize(v.Elem)
		if !ok {
			return nil, 0, newError(ErrBufferOverrun, t, "element size overflows")
		}
		limit := len(data) - WordSize
		if elemSize > 0 && limit > 0 {
			limit /= elemSize
		}
		count, err := readSize(v, data, "count", limit)
		if err != nil {
			return nil, 0, err
		}
		elems, size, err := c.decodeSequence(v, count, func(int) ParamType { return v.Elem }, data[WordSize:])
		if err != nil {
			return nil, 0, err
		}
		return elems, WordSize + size, nil
	case FixedArrayType:
		return c.decodeSequence(v, v.Size, func(int) ParamType { return v.Elem }, data)
	case TupleType:
		values, size, err := c.decodeSequence(v, len(v.Components), func(i int) ParamType { return v.Components[i].Type }, data)
		if err != nil {
			return nil, 0, err
		}
		return newTuple(v, values), size, nil
	default:
		return nil, 0, newError(ErrInvalidType, t, "not a dynamic type")
	}
}

// toSlice accepts []any or any Go slice or array.
func toSlice(t ParamType, value any) ([]any, error) {
	if v, ok := value.([]any); ok {
		return v, nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, newError(ErrInvalidValue, t, "cannot use %T as array", value)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

// toTupleValues orders a tuple value by component. Accepted shapes are
// Tuple, []any (or any slice), map[string]any keyed by component name, and
// structs whose fields match component names, case-insensitively or via an
// `abi:"name"` tag.
func toTupleValues(t TupleType, value any) ([]any, error) {
	var values []any
	switch v := value.(type) {
	case Tuple:
		values = v.Values()
	case *Tuple:
		if v == nil {
			return nil, newError(ErrInvalidValue, t, "nil *Tuple")
		}
		values = v.Values()
	case map[string]any:
		values = make([]any, len(t.Components))
		for i, comp := range t.Components {
			x, ok := v[comp.Name]
			if comp.Name == "" || !ok {
				return nil, newError(ErrInvalidValue, t, "missing component %d %q", i, comp.Name)
			}
			values[i] = x
		}
		if len(v) != len(t.Components) {
			return nil, newError(ErrArityMismatch, t, "got %d fields, want %d", len(v), len(t.Components))
		}
		return values, nil
	default:
		rv := reflect.Indirect(reflect.ValueOf(value))
		if rv.Kind() == reflect.Struct {
			return structValues(t, rv)
		}
		s, err := toSlice(t, value)
		if err != nil {
			return nil, err
		}
		values = s
	}
	if len(values) != len(t.Components) {
		return nil, newError(ErrArityMismatch, t, "got %d values, want %d", len(values), len(t.Components))
	}
	return values, nil
}

func structValues(t TupleType, rv reflect.Value) ([]any, error) {
	rt := rv.Type()
	values := make([]any, len(t.Components))
	for i, comp := range t.Components {
		idx := -1
		for j := 0; j < rt.NumField(); j++ {
			f := rt.Field(j)
			if !f.IsExported() {
				continue
			}
			if tag, ok := f.Tag.Lookup("abi"); ok {
				if tag == comp.Name {
					idx = j
					break
				}
				continue
			}
			if comp.Name != "" && strings.EqualFold(f.Name, comp.Name) {
				idx = j
				break
			}
		}
		if idx < 0 {
			return nil, newError(ErrInvalidValue, t, "no field for component %d %q in %s", i, comp.Name, rt)
		}
		values[i] = rv.Field(idx).Interface()
	}
	return values, nil
}
