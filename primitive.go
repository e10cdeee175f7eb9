package abicodec

import (
	"encoding/hex"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// encodeAddress right-aligns the 20 address bytes in one word, the same
// shape as a uint160.
func encodeAddress(t ParamType, value any) ([]byte, error) {
	addr, err := toAddress(t, value)
	if err != nil {
		return nil, err
	}
	return common.LeftPadBytes(addr.Bytes(), WordSize), nil
}

// decodeAddress takes the low 20 bytes of the word. Checksum casing is a
// presentation concern and is not verified here.
func decodeAddress(word []byte) common.Address {
	return common.BytesToAddress(word[WordSize-common.AddressLength : WordSize])
}

func toAddress(t ParamType, value any) (common.Address, error) {
	switch v := value.(type) {
	case common.Address:
		return v, nil
	case *common.Address:
		if v == nil {
			return common.Address{}, newError(ErrInvalidValue, t, "nil *common.Address")
		}
		return *v, nil
	case [common.AddressLength]byte:
		return common.Address(v), nil
	case []byte:
		if len(v) != common.AddressLength {
			return common.Address{}, newError(ErrInvalidBytesLength, t, "got %d bytes, want %d", len(v), common.AddressLength)
		}
		return common.BytesToAddress(v), nil
	case string:
		s := strings.TrimPrefix(strings.TrimPrefix(v, "0x"), "0X")
		if len(s) != 2*common.AddressLength {
			return common.Address{}, newError(ErrInvalidBytesLength, t, "got %d hex digits, want %d", len(s), 2*common.AddressLength)
		}
		b, err := hex.DecodeString(s)
		if err != nil {
			return common.Address{}, newError(ErrInvalidValue, t, "invalid hex %q", v)
		}
		return common.BytesToAddress(b), nil
	default:
		return common.Address{}, newError(ErrInvalidValue, t, "cannot use %T as address", value)
	}
}

// encodeBool sets the low byte to 0x01 for true.
func encodeBool(t ParamType, value any) ([]byte, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, newError(ErrInvalidValue, t, "cannot use %T as bool", value)
	}
	word := make([]byte, WordSize)
	if b {
		word[WordSize-1] = 1
	}
	return word, nil
}

// decodeBool treats any nonzero low byte as true.
func decodeBool(word []byte) bool {
	return word[WordSize-1] != 0
}

// encodeFixedBytes right-pads exactly size bytes to one word.
func encodeFixedBytes(t FixedBytesType, value any) ([]byte, error) {
	b, err := toBytes(t, value)
	if err != nil {
		return nil, err
	}
	if len(b) != t.Size {
		return nil, newError(ErrInvalidBytesLength, t, "got %d bytes, want %d", len(b), t.Size)
	}
	return common.RightPadBytes(b, WordSize), nil
}

// decodeFixedBytes returns a copy of the first size bytes; the padding is discarded.
func decodeFixedBytes(t FixedBytesType, word []byte) []byte {
	out := make([]byte, t.Size)
	copy(out, word[:t.Size])
	return out
}

// toBytes accepts []byte, byte arrays of any length (common.Hash included)
// and 0x-prefixed hex strings.
func toBytes(t ParamType, value any) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case hexutil.Bytes:
		return v, nil
	case common.Hash:
		return v.Bytes(), nil
	case string:
		b, err := hexutil.Decode(v)
		if err != nil {
			return nil, newError(ErrInvalidValue, t, "invalid hex string %q: %v", v, err)
		}
		return b, nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8 {
		out := make([]byte, rv.Len())
		for i := range out {
			out[i] = byte(rv.Index(i).Uint())
		}
		return out, nil
	}
	return nil, newError(ErrInvalidValue, t, "cannot use %T as bytes", value)
}
