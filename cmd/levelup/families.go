package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/levelup/pkg/seed"
)

func newFamiliesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List the entity families 'generate --family' accepts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range seed.List() {
				fmt.Fprintf(tw, "%s\t%s\n", name, seed.Registry[name].Description)
			}
			return tw.Flush()
		},
	}
}
