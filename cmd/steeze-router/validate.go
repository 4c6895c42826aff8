package main

import (
	"fmt"
	"strings"

	"github.com/joeydtaylor/steeze-router/pkg/handlers"
	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load and check the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, d, err := loadDispatcher(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range d.Schemes() {
				fmt.Fprintf(out, "%s: %s\n", s, strings.Join(d.Scheme(s).Modules(), ", "))
			}
			if missing := handlers.Missing(cfg); len(missing) > 0 {
				if strict {
					return fmt.Errorf("unregistered inproc handlers: %s", strings.Join(missing, ", "))
				}
				fmt.Fprintf(out, "warning: unregistered inproc handlers: %s\n", strings.Join(missing, ", "))
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when an inproc handler is not registered")
	return cmd
}
