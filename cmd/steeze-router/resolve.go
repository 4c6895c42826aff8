package main

import (
	"encoding/json"
	"fmt"

	"github.com/joeydtaylor/steeze-router/pkg/core"
	"github.com/joeydtaylor/steeze-router/pkg/urlx"
	"github.com/spf13/cobra"
)

func resolveCmd() *cobra.Command {
	var fetch bool

	cmd := &cobra.Command{
		Use:   "resolve <url>",
		Short: "Print the module trail a URL resolves to",
		Example: `  steeze-router resolve app://user/profile
  steeze-router resolve --fetch 'app://user?id=7'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, d, err := loadDispatcher(cmd)
			if err != nil {
				return err
			}
			u, err := urlx.Parse(args[0])
			if err != nil {
				return err
			}
			t, trail, ok, err := d.ResolveType(u)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no scheme %q in manifest", u.Scheme)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\t%s\n", t.Module(), trail)
			if !fetch {
				return nil
			}

			var res core.Result
			v, err := d.FetchURL(cmd.Context(), u, nil, func(r core.Result) { res = r })
			if err != nil {
				return err
			}
			if res.Err != nil {
				return res.Err
			}
			b, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&fetch, "fetch", "f", false, "also run Fetch and print the value as JSON")
	return cmd
}
