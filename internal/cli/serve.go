package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ppiankov/capsule/internal/server"
)

var serveAddr string

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the resolver over HTTP",
	Long: `Serve exposes the resolver as a JSON API:

  GET /v1/resolve?category=&location=&date=
  GET /v1/capsule?location=&date=
  GET /v1/categories
  GET /healthz
  GET /metrics`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		cfg := server.DefaultConfig(a.cfg.Server.Addr)
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}
		cfg.Version = Version

		ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.New(cfg, a.resolver, a.batch, a.logger).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: config server.addr)")
}
