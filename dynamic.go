package abicodec

import (
	"unicode/utf8"
)

// encodeDynamicBytes writes the byte count followed by the content
// zero-padded to a word boundary.
func encodeDynamicBytes(b []byte) []byte {
	out := make([]byte, WordSize+paddedLen(len(b)))
	putWord(out[:WordSize], uint64(len(b)))
	copy(out[WordSize:], b)
	return out
}

func encodeBytes(t ParamType, value any) ([]byte, error) {
	b, err := toBytes(t, value)
	if err != nil {
		return nil, err
	}
	return encodeDynamicBytes(b), nil
}

func encodeString(t ParamType, value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return encodeDynamicBytes([]byte(v)), nil
	case []byte:
		return encodeDynamicBytes(v), nil
	default:
		return nil, newError(ErrInvalidValue, t, "cannot use %T as string", value)
	}
}

// decodeDynamicBytes reads a length-prefixed region starting at data[0]. The
// declared length is checked against the input before anything is
// allocated. consumed includes the padding.
func decodeDynamicBytes(t ParamType, data []byte) (b []byte, consumed int, err error) {
	length, err := readSize(t, data, "length", len(data)-WordSize)
	if err != nil {
		return nil, 0, err
	}
	remaining := len(data) - WordSize
	// Trailing padding may be cut off by a short response; the content itself is present.
	padded := paddedLen(length)
	if padded > remaining {
		padded = remaining
	}
	out := make([]byte, length)
	copy(out, data[WordSize:WordSize+length])
	return out, WordSize + padded, nil
}

func decodeString(t ParamType, data []byte, strict bool) (string, int, error) {
	b, n, err := decodeDynamicBytes(t, data)
	if err != nil {
		return "", 0, err
	}
	if strict && !utf8.Valid(b) {
		return "", 0, newError(ErrInvalidUTF8, t, "%d bytes are not valid utf-8", len(b))
	}
	return string(b), n, nil
}

// paddedLen rounds n up to a multiple of WordSize.
func paddedLen(n int) int {
	return (n + WordSize - 1) / WordSize * WordSize
}
