package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	abicodec "github.com/branched-services/go-abicodec"
)

// parseArg reads one command line value. Anything that parses as JSON is
// taken as JSON (numbers keep full precision); everything else, such as
// 0x-prefixed hex, is taken as a plain string.
func parseArg(arg string) any {
	dec := json.NewDecoder(strings.NewReader(arg))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil || dec.More() {
		return arg
	}
	return v
}

// coerce adapts JSON-shaped input to what the codec accepts for t. JSON
// numbers given for string parameters are passed as their literal text.
func coerce(t abicodec.ParamType, v any) any {
	switch tt := t.(type) {
	case abicodec.StringType:
		if n, ok := v.(json.Number); ok {
			return n.String()
		}
	case abicodec.FixedArrayType:
		return coerceElems(tt.Elem, v)
	case abicodec.DynamicArrayType:
		return coerceElems(tt.Elem, v)
	case abicodec.TupleType:
		switch x := v.(type) {
		case []any:
			if len(x) != len(tt.Components) {
				return v
			}
			out := make([]any, len(x))
			for i, c := range tt.Components {
				out[i] = coerce(c.Type, x[i])
			}
			return out
		case map[string]any:
			out := make(map[string]any, len(x))
			for k, e := range x {
				out[k] = e
			}
			for _, c := range tt.Components {
				if e, ok := x[c.Name]; ok {
					out[c.Name] = coerce(c.Type, e)
				}
			}
			return out
		}
	}
	return v
}

func coerceElems(elem abicodec.ParamType, v any) any {
	x, ok := v.([]any)
	if !ok {
		return v
	}
	out := make([]any, len(x))
	for i, e := range x {
		out[i] = coerce(elem, e)
	}
	return out
}

func parseArgs(types []abicodec.ParamType, args []string) ([]any, error) {
	if len(args) != len(types) {
		return nil, fmt.Errorf("got %d values for %d types", len(args), len(types))
	}
	values := make([]any, len(args))
	for i, arg := range args {
		values[i] = coerce(types[i], parseArg(arg))
	}
	return values, nil
}

// readHexData decodes a 0x-prefixed hex argument, or standard input for "-".
func readHexData(arg string, stdin io.Reader) ([]byte, error) {
	if arg == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		arg = string(bytes.TrimSpace(raw))
	}
	if !strings.HasPrefix(arg, "0x") && !strings.HasPrefix(arg, "0X") {
		arg = "0x" + arg
	}
	data, err := hexutil.Decode(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid hex data: %w", err)
	}
	return data, nil
}
