package cli

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	abicodec "github.com/branched-services/go-abicodec"
)

type encodeResult struct {
	Signature string   `json:"signature,omitempty" yaml:"signature,omitempty"`
	Selector  string   `json:"selector,omitempty" yaml:"selector,omitempty"`
	Types     []string `json:"types" yaml:"types"`
	Data      string   `json:"data" yaml:"data"`
}

func (r encodeResult) header() []string { return []string{"FIELD", "VALUE"} }

func (r encodeResult) rows() [][]string {
	var rows [][]string
	if r.Signature != "" {
		rows = append(rows, []string{"signature", r.Signature}, []string{"selector", r.Selector})
	}
	for i, t := range r.Types {
		rows = append(rows, []string{"type " + strconv.Itoa(i), t})
	}
	return append(rows, []string{"data", r.Data})
}

func newEncodeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [flags] VALUE...",
		Short: "Encode values as ABI parameters or call data",
		Long: `Encode one value per type. Values are JSON (numbers, strings, arrays,
objects keyed by tuple component name) or bare strings such as 0x-prefixed hex.

With --sig the output is call data: the four byte selector followed by the
encoded arguments.

Examples:
  abicodec encode --types "address,uint256" 0xc285289346689ee7cd63e4bb1a3b40f5f6e7973c 1000
  abicodec encode --types "(uint256 id,string[] tags)" '{"id": 7, "tags": ["a","b"]}'
  abicodec encode --sig "approve(address,uint256)" 0x0000000000000000000000000000000000000001 0x10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEncode(cmd, args)
		},
	}
	cmd.Flags().String("types", "", "comma separated parameter types")
	cmd.Flags().String("sig", "", "function signature, e.g. transfer(address,uint256)")
	cmd.MarkFlagsMutuallyExclusive("types", "sig")
	cmd.MarkFlagsOneRequired("types", "sig")
	return cmd
}

func (a *app) runEncode(cmd *cobra.Command, args []string) error {
	typeList, _ := cmd.Flags().GetString("types")
	sig, _ := cmd.Flags().GetString("sig")

	var (
		method *abicodec.Method
		types  []abicodec.ParamType
		err    error
	)
	if sig != "" {
		method, err = abicodec.ParseSignature(sig, abicodec.WithCodec(a.codec))
		if err != nil {
			return err
		}
		types = method.InputTypes()
	} else {
		types, err = abicodec.ParseTypeList(typeList)
		if err != nil {
			return err
		}
	}

	values, err := parseArgs(types, args)
	if err != nil {
		return err
	}

	result := encodeResult{Types: typeNames(types)}
	var data []byte
	if method != nil {
		data, err = method.EncodeCall(values...)
		sel := method.Selector()
		result.Signature = method.Signature()
		result.Selector = hexutil.Encode(sel[:])
	} else {
		data, err = a.codec.EncodeParameters(types, values)
	}
	if err != nil {
		return err
	}
	result.Data = hexutil.Encode(data)

	a.logger.Debug("encoded parameters", zap.Strings("types", result.Types), zap.Int("bytes", len(data)))
	return render(cmd.OutOrStdout(), a.cfg.Output.Format, result)
}

func typeNames(types []abicodec.ParamType) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}
