package abicodec

import (
	"encoding/binary"
)

// chunk is the encoding of one value. Dynamic chunks are placed in the tail
// of their enclosing region and referenced from the head by offset.
type chunk struct {
	data    []byte
	dynamic bool
}

// encodeHeadTail lays out one head entry per chunk followed by the tail.
// A static chunk is written into the head as-is; a dynamic chunk gets a
// one-word offset, measured from the start of this block, pointing at its
// bytes in the tail.
//
//	[head 0][head 1]...[head n-1][tail chunk a][tail chunk b]...
func encodeHeadTail(chunks []chunk) []byte {
	headLen, tailLen := 0, 0
	for _, c := range chunks {
		if c.dynamic {
			headLen += WordSize
			tailLen += len(c.data)
		} else {
			headLen += len(c.data)
		}
	}

	out := make([]byte, headLen, headLen+tailLen)
	head := 0
	for _, c := range chunks {
		if !c.dynamic {
			copy(out[head:], c.data)
			head += len(c.data)
			continue
		}
		putWord(out[head:head+WordSize], uint64(len(out)))
		out = append(out, c.data...)
		head += WordSize
	}
	return out
}

// concatChunks joins static chunks back to back.
func concatChunks(chunks []chunk) []byte {
	n := 0
	for _, c := range chunks {
		n += len(c.data)
	}
	out := make([]byte, 0, n)
	for _, c := range chunks {
		out = append(out, c.data...)
	}
	return out
}

// putWord writes v as a big-endian 32-byte word.
func putWord(word []byte, v uint64) {
	for i := 0; i < WordSize-8; i++ {
		word[i] = 0
	}
	binary.BigEndian.PutUint64(word[WordSize-8:], v)
}

// encodeSize returns a length or count word.
func encodeSize(n int) []byte {
	word := make([]byte, WordSize)
	putWord(word, uint64(n))
	return word
}

// readSize reads a length, count or offset word from the start of data and
// bounds it by limit. The value is untrusted: anything above limit is an
// overrun, and so is any value that does not fit in 64 bits.
func readSize(t ParamType, data []byte, what string, limit int) (int, error) {
	if len(data) < WordSize {
		return 0, newError(ErrBufferOverrun, t, "need %d bytes for %s word, have %d", WordSize, what, len(data))
	}
	for _, b := range data[:WordSize-8] {
		if b != 0 {
			return 0, newError(ErrBufferOverrun, t, "%s exceeds 64 bits", what)
		}
	}
	v := binary.BigEndian.Uint64(data[WordSize-8 : WordSize])
	if limit < 0 || v > uint64(limit) {
		return 0, newError(ErrBufferOverrun, t, "%s %d exceeds limit of %d bytes", what, v, limit)
	}
	return int(v), nil
}

// readOffset reads the head word at pos in region and returns the tail
// position it points to, relative to the start of region.
func readOffset(t ParamType, region []byte, pos int) (int, error) {
	if pos > len(region) {
		return 0, newError(ErrBufferOverrun, t, "head at %d beyond region of %d bytes", pos, len(region))
	}
	return readSize(t, region[pos:], "offset", len(region))
}
