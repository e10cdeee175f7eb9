package abicodec

import (
	"encoding/json"
	"math"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// integerBounds returns the inclusive range of an integer type.
func integerBounds(bits int, signed bool) (lo, hi *big.Int) {
	if signed {
		hi = new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
		lo = new(big.Int).Neg(hi)
		hi.Sub(hi, big.NewInt(1))
		return lo, hi
	}
	hi = new(big.Int).Lsh(big.NewInt(1), uint(bits))
	hi.Sub(hi, big.NewInt(1))
	return new(big.Int), hi
}

// encodeInteger encodes n into a single word. Unsigned values are zero
// padded; signed values are two's complement sign-extended to 256 bits,
// which for in-range values equals the two's complement over bits.
func encodeInteger(t ParamType, n *big.Int, bits int, signed bool) ([]byte, error) {
	lo, hi := integerBounds(bits, signed)
	if n.Cmp(lo) < 0 || n.Cmp(hi) > 0 {
		return nil, newError(ErrOutOfRange, t, "%s not in [%s, %s]", n, lo, hi)
	}
	word := new(big.Int).Set(n)
	if word.Sign() < 0 {
		word.Add(word, tt256)
	}
	return common.LeftPadBytes(word.Bytes(), WordSize), nil
}

// tt256 is 2^256.
var tt256 = new(big.Int).Lsh(big.NewInt(1), 256)

// decodeInteger reads the low bits of a word. The high padding bits are not
// re-validated.
func decodeInteger(word []byte, bits int, signed bool) *big.Int {
	n := new(big.Int).SetBytes(word[:WordSize])
	if bits < 256 {
		mask := new(big.Int).Lsh(big.NewInt(1), uint(bits))
		mask.Sub(mask, big.NewInt(1))
		n.And(n, mask)
	}
	if signed && n.Bit(bits-1) == 1 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
	}
	return n
}

// toBigInt converts the accepted Go numeric representations to *big.Int.
// The result is always a fresh value owned by the caller.
func toBigInt(t ParamType, value any) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		if v == nil {
			return nil, newError(ErrInvalidValue, t, "nil *big.Int")
		}
		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case *uint256.Int:
		if v == nil {
			return nil, newError(ErrInvalidValue, t, "nil *uint256.Int")
		}
		return v.ToBig(), nil
	case uint256.Int:
		return v.ToBig(), nil
	case int:
		return big.NewInt(int64(v)), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case float32:
		return floatToBigInt(t, float64(v))
	case float64:
		return floatToBigInt(t, v)
	case json.Number:
		return parseIntegerString(t, string(v))
	case string:
		return parseIntegerString(t, v)
	case common.Hash:
		return new(big.Int).SetBytes(v[:]), nil
	default:
		return nil, newError(ErrInvalidValue, t, "cannot use %T as integer", value)
	}
}

func floatToBigInt(t ParamType, f float64) (*big.Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, newError(ErrInvalidValue, t, "non-integral number %v", f)
	}
	n, _ := new(big.Float).SetFloat64(f).Int(nil)
	return n, nil
}

// parseIntegerString accepts decimal and 0x-prefixed hex, either optionally
// preceded by a minus sign.
func parseIntegerString(t ParamType, s string) (*big.Int, error) {
	str := strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(str, "-") {
		neg = true
		str = str[1:]
	}
	base := 10
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		base = 16
		str = str[2:]
	}
	if str == "" || strings.ContainsAny(str, "+-_") {
		return nil, newError(ErrInvalidValue, t, "malformed integer %q", s)
	}
	n, ok := new(big.Int).SetString(str, base)
	if !ok {
		// A decimal with a fractional part that is still integral, e.g. "5.0".
		if base == 10 {
			if f, _, err := big.ParseFloat(str, 10, 512, big.ToZero); err == nil && f.IsInt() {
				n, _ = f.Int(nil)
				ok = true
			}
		}
		if !ok {
			return nil, newError(ErrInvalidValue, t, "malformed integer %q", s)
		}
	}
	if neg {
		n.Neg(n)
	}
	return n, nil
}
