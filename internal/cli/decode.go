package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	abicodec "github.com/branched-services/go-abicodec"
)

type decodedValue struct {
	Index int    `json:"index" yaml:"index"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Type  string `json:"type" yaml:"type"`
	Value any    `json:"value" yaml:"value"`
}

type decodeResult []decodedValue

func (r decodeResult) header() []string { return []string{"#", "NAME", "TYPE", "VALUE"} }

func (r decodeResult) rows() [][]string {
	rows := make([][]string, len(r))
	for i, v := range r {
		rows[i] = []string{strconv.Itoa(v.Index), v.Name, v.Type, cell(v.Value)}
	}
	return rows
}

func newDecodeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [flags] DATA",
		Short: "Decode ABI parameters, return data or call data",
		Long: `Decode 0x-prefixed hex data, or standard input when DATA is "-".

With --types the data is decoded as a parameter list. With --sig it is
decoded as the function's return data, or with --call as call data whose
selector must match the signature.

Examples:
  abicodec decode --types "uint256,bool" 0x...
  abicodec decode --sig "balanceOf(address)(uint256)" 0x...
  abicodec decode --sig "transfer(address,uint256)" --call 0xa9059cbb...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDecode(cmd, args[0])
		},
	}
	cmd.Flags().String("types", "", "comma separated parameter types")
	cmd.Flags().String("sig", "", "function signature with outputs, e.g. name()(string)")
	cmd.Flags().Bool("call", false, "decode call data for --sig instead of return data")
	cmd.MarkFlagsMutuallyExclusive("types", "sig")
	cmd.MarkFlagsOneRequired("types", "sig")
	return cmd
}

func (a *app) runDecode(cmd *cobra.Command, arg string) error {
	typeList, _ := cmd.Flags().GetString("types")
	sig, _ := cmd.Flags().GetString("sig")
	call, _ := cmd.Flags().GetBool("call")

	data, err := readHexData(arg, cmd.InOrStdin())
	if err != nil {
		return err
	}

	var (
		components []abicodec.Component
		values     []any
	)
	if sig != "" {
		method, err := abicodec.ParseSignature(sig, abicodec.WithCodec(a.codec))
		if err != nil {
			return err
		}
		var tuple abicodec.Tuple
		if call {
			components = method.Inputs
			tuple, err = method.DecodeCall(data)
		} else {
			components = method.Outputs
			tuple, err = method.DecodeOutputs(data)
		}
		if err != nil {
			return err
		}
		values = tuple.Values()
	} else {
		types, err := abicodec.ParseTypeList(typeList)
		if err != nil {
			return err
		}
		components = make([]abicodec.Component, len(types))
		for i, t := range types {
			components[i] = abicodec.Component{Type: t}
		}
		values, err = a.codec.DecodeParameters(types, data)
		if err != nil {
			return err
		}
	}

	result := make(decodeResult, len(values))
	for i, v := range values {
		result[i] = decodedValue{
			Index: i,
			Name:  components[i].Name,
			Type:  components[i].Type.String(),
			Value: display(v),
		}
	}

	a.logger.Debug("decoded parameters", zap.Int("bytes", len(data)), zap.Int("values", len(values)))
	return render(cmd.OutOrStdout(), a.cfg.Output.Format, result)
}
