package main

import (
	"fmt"
	"os"

	"github.com/joeydtaylor/steeze-router/pkg/handlers"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	handlers.RegisterBuiltins()
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "steeze-router",
		Short: "Resolve scheme://module/sub URLs to handlers",
		Long: `steeze-router resolves URLs such as app://user/profile?id=7 into
handlers declared in a TOML manifest, and serves Route and Fetch over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("manifest", "m", "", "manifest path (default $ROUTER_MANIFEST or manifest.toml)")

	root.AddCommand(
		serveCmd(),
		resolveCmd(),
		validateCmd(),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", version, commit)
		},
	}
}
