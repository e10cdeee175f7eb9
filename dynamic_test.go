package abicodec

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeDynamicBytes(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		size int
	}{
		{"empty", []byte{}, 32},
		{"one byte", []byte{0xab}, 64},
		{"one word", bytes.Repeat([]byte{1}, 32), 64},
		{"word and a byte", bytes.Repeat([]byte{1}, 33), 96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encodeDynamicBytes(tt.in)
			if len(got) != tt.size {
				t.Fatalf("Expected %d bytes, got %d", tt.size, len(got))
			}
			if !bytes.Equal(got[:WordSize], word(uint64(len(tt.in)))) {
				t.Errorf("Expected length word %d, got %x", len(tt.in), got[:WordSize])
			}
			if !bytes.Equal(got[WordSize:WordSize+len(tt.in)], tt.in) {
				t.Error("Content mismatch")
			}
			for i, b := range got[WordSize+len(tt.in):] {
				if b != 0 {
					t.Errorf("Padding byte %d is %#x", i, b)
				}
			}

			decoded, consumed, err := decodeDynamicBytes(BytesType{}, got)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !bytes.Equal(decoded, tt.in) {
				t.Errorf("Expected %x, got %x", tt.in, decoded)
			}
			if consumed != tt.size {
				t.Errorf("Expected %d bytes consumed, got %d", tt.size, consumed)
			}
		})
	}
}

func TestDecodeDynamicBytesBounds(t *testing.T) {
	t.Run("length beyond input", func(t *testing.T) {
		data := join(word(33), padded([]byte{1}))
		if _, _, err := decodeDynamicBytes(BytesType{}, data); !errors.Is(err, ErrBufferOverrun) {
			t.Errorf("Expected ErrBufferOverrun, got %v", err)
		}
	})

	t.Run("missing length word", func(t *testing.T) {
		if _, _, err := decodeDynamicBytes(BytesType{}, make([]byte, 16)); !errors.Is(err, ErrBufferOverrun) {
			t.Errorf("Expected ErrBufferOverrun, got %v", err)
		}
	})

	t.Run("truncated padding is tolerated", func(t *testing.T) {
		data := join(word(2), []byte{0xbe, 0xef})
		decoded, consumed, err := decodeDynamicBytes(BytesType{}, data)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !bytes.Equal(decoded, []byte{0xbe, 0xef}) {
			t.Errorf("Expected beef, got %x", decoded)
		}
		if consumed != len(data) {
			t.Errorf("Expected %d bytes consumed, got %d", len(data), consumed)
		}
	})

	t.Run("result does not alias input", func(t *testing.T) {
		data := encodeDynamicBytes([]byte{1, 2, 3})
		decoded, _, err := decodeDynamicBytes(BytesType{}, data)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		data[WordSize] = 0xff
		if decoded[0] != 1 {
			t.Error("Decoded bytes share memory with the input")
		}
	})
}

func TestEncodeString(t *testing.T) {
	got, err := encodeString(StringType{}, "héllo")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !bytes.Equal(got[:WordSize], word(6)) {
		t.Errorf("Expected byte length 6, got %x", got[:WordSize])
	}

	if _, err := encodeString(StringType{}, 42); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Expected ErrInvalidValue, got %v", err)
	}
}

func TestDecodeStringUTF8(t *testing.T) {
	invalid := encodeDynamicBytes([]byte{0xff, 0xfe, 0x41})

	t.Run("strict", func(t *testing.T) {
		_, _, err := decodeString(StringType{}, invalid, true)
		if !errors.Is(err, ErrInvalidUTF8) {
			t.Errorf("Expected ErrInvalidUTF8, got %v", err)
		}
	})

	t.Run("pass through", func(t *testing.T) {
		s, _, err := decodeString(StringType{}, invalid, false)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if s != "\xff\xfeA" {
			t.Errorf("Expected raw bytes, got %q", s)
		}
	})

	t.Run("codec option", func(t *testing.T) {
		data := join(word(0x20), invalid)

		if _, err := New().DecodeParameters([]ParamType{StringType{}}, data); !errors.Is(err, ErrInvalidUTF8) {
			t.Errorf("Expected ErrInvalidUTF8 from default codec, got %v", err)
		}

		values, err := New(WithUTF8Validation(false)).DecodeParameters([]ParamType{StringType{}}, data)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if values[0] != "\xff\xfeA" {
			t.Errorf("Expected raw bytes, got %q", values[0])
		}
	})
}

func TestPaddedLen(t *testing.T) {
	tests := map[int]int{0: 0, 1: 32, 31: 32, 32: 32, 33: 64, 64: 64}
	for in, want := range tests {
		if got := paddedLen(in); got != want {
			t.Errorf("paddedLen(%d): expected %d, got %d", in, want, got)
		}
	}
}
