package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/contactkeval/option-pricing/internal/server"
)

func newServeCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve prices over HTTP",
		Long: `Serve GET /price and GET /health.

  curl 'localhost:8080/price?spot=100&strike=105&expiry=1&rate=0.05&vol=0.2&type=call'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd, o)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg.Pricer()).ListenAndServe(ctx, cfg.Addr)
		},
	}

	cmd.Flags().String("addr", ":8080", "REST server listen address")
	return cmd
}
