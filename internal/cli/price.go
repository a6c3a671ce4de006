package cli

import (
	"github.com/spf13/cobra"

	"github.com/contactkeval/option-pricing/internal/logger"
	"github.com/contactkeval/option-pricing/internal/report"
)

func newPriceCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a single European option",
		Long: `Price a European option. Inputs default to the reference example and can be
overridden by --config, PRICER_* variables and the flags below, in that order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrice(cmd, o)
		},
	}

	cmd.Flags().Float64("spot", 100, "spot price of the underlying (S)")
	cmd.Flags().Float64("strike", 105, "strike price (K)")
	cmd.Flags().Float64("expiry", 1, "time to expiry in years (T)")
	cmd.Flags().Float64("rate", 0.05, "continuously compounded risk-free rate (r), e.g. 0.05 for 5%")
	cmd.Flags().Float64("vol", 0.20, "annualised volatility (sigma), e.g. 0.2 for 20%")
	cmd.Flags().StringVarP(&o.optType, "type", "t", "both", "option type: call, put or both")
	return cmd
}

func runPrice(cmd *cobra.Command, o *options) error {
	cfg, err := resolve(cmd, o)
	if err != nil {
		return err
	}

	types, err := report.ParseTypes(o.optType)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	in := cfg.Inputs
	logger.Debugf("pricing S=%g K=%g T=%g r=%g sigma=%g strict=%t", in.Spot, in.Strike, in.Expiry, in.Rate, in.Volatility, cfg.Strict)

	quote, err := cfg.Pricer().Quote(in)
	if err != nil {
		logger.Errorf("pricing failed: %v", err)
		return err
	}
	logger.Tracef("call=%v put=%v", quote.Call, quote.Put)

	return report.Write(cmd.OutOrStdout(), format, quote, types)
}
