package main

import (
	"github.com/joeydtaylor/steeze-router/pkg/serverfx"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve /fetch, /route and /resolve over HTTP",
		Long: `Serve the manifest's schemes over HTTP.

Environment:
  ROUTER_MANIFEST          manifest path
  SERVER_LISTEN_ADDRESS    listen address (default :4000)
  SSL_SERVER_CERTIFICATE   TLS certificate file
  SSL_SERVER_KEY           TLS key file
  LOG_DIR                  log directory (default ./log)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := fx.New(serverfx.Module(serveOptions(cmd)...))
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}

// serveOptions lets an explicit --manifest win over $ROUTER_MANIFEST, as it
// does for resolve and validate.
func serveOptions(cmd *cobra.Command) []serverfx.Option {
	if p, _ := cmd.Flags().GetString("manifest"); p != "" {
		return []serverfx.Option{serverfx.WithManifest(p)}
	}
	return nil
}
