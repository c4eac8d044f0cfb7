package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/levelup/pkg/storage"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print what the store currently holds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(func(kv storage.KeyValue) error {
				s, err := a.injector(kv, nil).Summary()
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				for _, r := range s.Rows() {
					fmt.Fprintf(tw, "%s\t%s\n", r.Name, r.Value)
				}
				return tw.Flush()
			})
		},
	}
}
