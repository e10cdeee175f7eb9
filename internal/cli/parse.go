package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	abicodec "github.com/branched-services/go-abicodec"
)

type layoutResult struct {
	Type    string                 `json:"type" yaml:"type"`
	Dynamic bool                   `json:"dynamic" yaml:"dynamic"`
	Entries []abicodec.LayoutEntry `json:"layout" yaml:"layout"`
}

func (r layoutResult) header() []string { return []string{"PATH", "TYPE", "DYNAMIC", "HEAD BYTES"} }

func (r layoutResult) rows() [][]string {
	rows := make([][]string, len(r.Entries))
	for i, e := range r.Entries {
		path := e.Path
		if path == "" {
			path = "."
		}
		head := strconv.Itoa(e.HeadSize)
		if e.HeadSize < 0 {
			head = "overflow"
		}
		rows[i] = []string{path, e.Type, strconv.FormatBool(e.Dynamic), head}
	}
	return rows
}

func newParseCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] TYPE",
		Short: "Parse a type and show its encoding layout",
		Long: `Parse a type name and print its canonical form and layout: for every node
of the type tree, whether it is dynamic and how many bytes it takes in its
parent's head.

Tuple members may be given inline, "(uint256 amount,address to)[]", or as
an ABI JSON component list with --components when TYPE is "tuple".

Examples:
  abicodec parse "uint256[2][]"
  abicodec parse tuple --components '[{"name":"to","type":"address"},{"name":"data","type":"bytes"}]'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParse(cmd, args[0])
		},
	}
	cmd.Flags().String("components", "", "tuple components as an ABI JSON list")
	return cmd
}

func (a *app) runParse(cmd *cobra.Command, typeStr string) error {
	var components []abicodec.Argument
	if raw, _ := cmd.Flags().GetString("components"); raw != "" {
		var err error
		components, err = abicodec.ParseArguments([]byte(raw))
		if err != nil {
			return err
		}
	}

	t, err := abicodec.ParseType(typeStr, components)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), a.cfg.Output.Format, layoutResult{
		Type:    t.String(),
		Dynamic: t.IsDynamic(),
		Entries: abicodec.Layout(t),
	})
}
