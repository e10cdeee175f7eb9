package abicodec

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

// word returns n as a big-endian 32-byte word.
func word(n uint64) []byte {
	w := make([]byte, WordSize)
	binary.BigEndian.PutUint64(w[WordSize-8:], n)
	return w
}

func words(ns ...uint64) []byte {
	var out []byte
	for _, n := range ns {
		out = append(out, word(n)...)
	}
	return out
}

// padded right-pads b with zeros to a word boundary.
func padded(b []byte) []byte {
	return common.RightPadBytes(b, paddedLen(len(b)))
}

func join(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func bigString(t *testing.T, v any) string {
	t.Helper()
	n, ok := v.(*big.Int)
	if !ok {
		t.Fatalf("Expected *big.Int, got %T", v)
	}
	return n.String()
}

func bigStrings(t *testing.T, v any) []string {
	t.Helper()
	elems, ok := v.([]any)
	if !ok {
		t.Fatalf("Expected []any, got %T", v)
	}
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = bigString(t, e)
	}
	return out
}

func mustBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("bad big.Int literal " + s)
	}
	return n
}
