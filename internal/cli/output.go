package cli

import (
	"encoding/json"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	abicodec "github.com/branched-services/go-abicodec"
	"github.com/branched-services/go-abicodec/internal/config"
)

// tabular is a result that can be printed as a table as well as JSON or YAML.
type tabular interface {
	header() []string
	rows() [][]string
}

func render(w io.Writer, format string, v tabular) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatTable:
		table := tablewriter.NewWriter(w)
		table.SetHeader(v.header())
		table.SetAutoWrapText(false)
		table.SetAutoFormatHeaders(false)
		table.AppendBulk(v.rows())
		table.Render()
		return nil
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

// display converts a decoded value into plain strings, lists and maps.
// Integers become decimal strings so no precision is lost in JSON.
func display(v any) any {
	switch x := v.(type) {
	case *big.Int:
		return x.String()
	case common.Address:
		return x.Hex()
	case []byte:
		return hexutil.Encode(x)
	case abicodec.Tuple:
		if !allNamed(x) {
			return display(x.Values())
		}
		m := make(map[string]any, x.Len())
		for _, f := range x.Fields {
			m[f.Name] = display(f.Value)
		}
		return m
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = display(e)
		}
		return out
	default:
		return v
	}
}

func allNamed(t abicodec.Tuple) bool {
	if t.Len() == 0 {
		return false
	}
	for _, f := range t.Fields {
		if f.Name == "" {
			return false
		}
	}
	return true
}

// cell renders a display value for a table cell. Composite values are
// written as compact JSON.
func cell(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err.Error()
	}
	return string(b)
}
