package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	abicodec "github.com/branched-services/go-abicodec"
)

type selectorEntry struct {
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Signature string `json:"signature" yaml:"signature"`
	Selector  string `json:"selector" yaml:"selector"`
}

type selectorResult []selectorEntry

func (r selectorResult) header() []string { return []string{"SELECTOR", "SIGNATURE"} }

func (r selectorResult) rows() [][]string {
	rows := make([][]string, len(r))
	for i, e := range r {
		rows[i] = []string{e.Selector, e.Signature}
	}
	return rows
}

func newSelectorCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selector [flags] [SIGNATURE...]",
		Short: "Compute function selectors",
		Long: `Print the canonical signature and four byte selector of each function
signature, or of every function in an ABI JSON file given with --abi.

Examples:
  abicodec selector "transfer(address to, uint256 amount)"
  abicodec selector --abi erc20.json -o table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSelector(cmd, args)
		},
	}
	cmd.Flags().String("abi", "", "ABI JSON file")
	return cmd
}

func (a *app) runSelector(cmd *cobra.Command, args []string) error {
	var methods []*abicodec.Method
	names := make(map[*abicodec.Method]string)

	if path, _ := cmd.Flags().GetString("abi"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read abi: %w", err)
		}
		parsed, err := abicodec.ParseABI(string(raw))
		if err != nil {
			return err
		}
		for name, m := range parsed {
			methods = append(methods, m)
			names[m] = name
		}
	}
	for _, sig := range args {
		m, err := abicodec.ParseSignature(sig)
		if err != nil {
			return err
		}
		methods = append(methods, m)
	}
	if len(methods) == 0 {
		return fmt.Errorf("no signatures given")
	}

	result := make(selectorResult, len(methods))
	for i, m := range methods {
		sel := m.Selector()
		result[i] = selectorEntry{
			Name:      names[m],
			Signature: m.Signature(),
			Selector:  hexutil.Encode(sel[:]),
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Signature < result[j].Signature
	})

	return render(cmd.OutOrStdout(), a.cfg.Output.Format, result)
}
