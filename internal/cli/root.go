// Package cli implements the abicodec command line tool.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	abicodec "github.com/branched-services/go-abicodec"
	"github.com/branched-services/go-abicodec/internal/config"
)

// app carries state shared by all subcommands. It is populated once the
// flags are parsed.
type app struct {
	cfgFile     string
	lenientUTF8 bool

	cfg    *config.Config
	logger *zap.Logger
	codec  *abicodec.Codec
}

// NewRootCommand builds the abicodec command tree.
func NewRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "abicodec",
		Short: "Encode and decode contract ABI data",
		Long: `Encode typed values into contract ABI bytes and decode ABI bytes back into values.

Examples:
  # Build call data for an ERC-20 transfer
  abicodec encode --sig "transfer(address,uint256)" 0xc285289346689ee7cd63e4bb1a3b40f5f6e7973c 1000

  # Encode a parameter list
  abicodec encode --types "uint256[],string" '[1,2,3]' '"hello"'

  # Decode return data
  abicodec decode --types "uint256,bool" 0x...

  # Show how a type is laid out
  abicodec parse "(address,bytes)[]" -o table`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default ./abicodec.yaml)")
	flags.StringP("output", "o", "", "output format: json, yaml or table")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&a.lenientUTF8, "lenient-utf8", false, "pass decoded strings through without utf-8 validation")

	root.AddCommand(
		newEncodeCommand(a),
		newDecodeCommand(a),
		newParseCommand(a),
		newSelectorCommand(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.codec = abicodec.New(
		abicodec.WithLogger(logger.Named("codec")),
		abicodec.WithUTF8Validation(cfg.Codec.UTF8Validation && !a.lenientUTF8),
	)

	logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("output", cfg.Output.Format),
		zap.Bool("utf8_validation", cfg.Codec.UTF8Validation && !a.lenientUTF8),
	)
	return nil
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}
