package main

import (
	"os"

	"github.com/joeydtaylor/steeze-router/pkg/core"
	"github.com/joeydtaylor/steeze-router/pkg/handlers"
	"github.com/joeydtaylor/steeze-router/pkg/manifest"
	"github.com/spf13/cobra"
)

// manifestPath resolves --manifest, then $ROUTER_MANIFEST, then manifest.toml.
func manifestPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("manifest"); p != "" {
		return p
	}
	if p := os.Getenv("ROUTER_MANIFEST"); p != "" {
		return p
	}
	return "manifest.toml"
}

func loadDispatcher(cmd *cobra.Command) (manifest.Config, *core.Dispatcher, error) {
	cfg, err := manifest.Load(manifestPath(cmd))
	if err != nil {
		return manifest.Config{}, nil, err
	}
	d := core.NewDispatcher(core.WithSchemeMaxDepth(cfg.Router.MaxDepth))
	if err := handlers.Build(cfg, d); err != nil {
		return manifest.Config{}, nil, err
	}
	return cfg, d, nil
}
