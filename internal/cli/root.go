// Package cli wires configuration, pricing and reporting into the
// option-pricing command line.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/contactkeval/option-pricing/internal/config"
	"github.com/contactkeval/option-pricing/internal/logger"
	"github.com/contactkeval/option-pricing/internal/report"
)

type options struct {
	configPath string
	envFile    string
	optType    string
}

// Execute runs the command line against the process arguments.
func Execute() error {
	return NewRootCmd(os.Stdout, os.Stderr).Execute()
}

// NewRootCmd builds the command tree. Without a sub-command it prices the
// reference example (S=100, K=105, T=1, r=5%, sigma=20%) and prints the call
// and put prices.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "option-pricing",
		Short: "Price European options with the Black-Scholes formula",
		Long: `Price European call and put options with the closed-form Black-Scholes formula.

Run without arguments to price the reference example:
  S=100, K=105, T=1 year, r=5%, sigma=20%

Inputs are not range checked unless --strict is given; a zero or negative
expiry or volatility then yields NaN or Inf instead of an error.

Examples:
  option-pricing
  option-pricing price --spot 4200 --strike 4000 --expiry 0.25 --vol 0.18 --type call
  option-pricing price --config pricer.yaml --format json
  option-pricing serve --addr :8080`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetOutput(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrice(cmd, o)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&o.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVar(&o.envFile, "env-file", config.DefaultEnvFile, "dotenv file with PRICER_* variables; ignored when it is the default and missing")
	flags.IntP("verbosity", "v", 1, "log verbosity: 0=errors, 1=info, 2=debug, 3=trace")
	flags.Bool("strict", false, "reject non-positive or non-finite spot, strike, expiry and volatility")
	flags.StringP("format", "f", string(report.FormatText), "output format (text, table, yaml, json, csv)")

	root.AddCommand(newPriceCmd(o), newServeCmd(o))
	return root
}

// resolve layers defaults, the config file, the environment and the flags
// that were set explicitly on cmd.
func resolve(cmd *cobra.Command, o *options) (config.Config, error) {
	cfg, err := config.Resolve(o.configPath, o.envFile, cmd.Flags())
	if err != nil {
		return cfg, err
	}
	logger.SetVerbosity(cfg.Verbosity)
	return cfg, nil
}
