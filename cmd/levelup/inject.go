package main

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/levelup/internal/inject"
	"pkg.jsn.cam/levelup/pkg/seed"
	"pkg.jsn.cam/levelup/pkg/storage"
)

// newProgress returns a spinner that counts keys touched.
func newProgress(w io.Writer, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSpinnerType(14),
	)
}

type sourceFlags struct {
	options  optionFlags
	snapshot string
	metrics  bool
}

func (s *sourceFlags) bind(cmd *cobra.Command) {
	s.options.bind(cmd)
	cmd.Flags().StringVar(&s.snapshot, "snapshot", "", "Inject a snapshot file written by 'levelup generate --out'")
	cmd.Flags().BoolVar(&s.metrics, "metrics", false, "Print injection counters when done")
}

func (a *app) source(cmd *cobra.Command, s *sourceFlags) (*seed.Dataset, error) {
	if s.snapshot == "" {
		snap, err := a.dataset(cmd, &s.options)
		if err != nil {
			return nil, err
		}
		return snap.Dataset, nil
	}
	f, err := os.Open(s.snapshot)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	snap, err := seed.ReadSnapshot(f)
	if err != nil {
		return nil, err
	}
	a.log.Debug().Str("run_id", snap.RunID).Int32("seed", snap.Seed).Msg("snapshot loaded")
	return snap.Dataset, nil
}

func (a *app) printCounts(w io.Writer, verb string, c inject.Counts) {
	fmt.Fprintf(w, "%s %d documents: %d workouts, %d receipts, %d flashcards, %d meals, %d trips, %d bowling weeks, %d events, %d plants\n",
		verb, c.Total(), c.Workouts, c.Receipts, c.Flashcards, c.Meals, c.Trips, c.BowlingWeeks, c.Events, c.Plants)
}

func newInjectCmd(a *app) *cobra.Command {
	var src sourceFlags
	cmd := &cobra.Command{
		Use:   "inject",
		Short: "Clear every app key and write a fresh dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.source(cmd, &src)
			if err != nil {
				return err
			}
			return a.withStore(func(kv storage.KeyValue) error {
				bar := newProgress(cmd.ErrOrStderr(), "writing keys")
				inj := a.injector(kv, func(string) { _ = bar.Add(1) })
				c, ok, err := inj.FullReset(ds)
				_ = bar.Finish()
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
				a.printCounts(cmd.OutOrStdout(), "Injected", c)
				return a.maybeDumpMetrics(cmd.OutOrStdout(), src.metrics)
			})
		},
	}
	src.bind(cmd)
	return cmd
}

func newAppendCmd(a *app) *cobra.Command {
	var src sourceFlags
	cmd := &cobra.Command{
		Use:   "append",
		Short: "Merge a dataset into the store without touching existing documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.source(cmd, &src)
			if err != nil {
				return err
			}
			return a.withStore(func(kv storage.KeyValue) error {
				bar := newProgress(cmd.ErrOrStderr(), "merging keys")
				c, err := a.injector(kv, func(string) { _ = bar.Add(1) }).Append(ds)
				_ = bar.Finish()
				if err != nil {
					return err
				}
				a.printCounts(cmd.OutOrStdout(), "Appended", c)
				return a.maybeDumpMetrics(cmd.OutOrStdout(), src.metrics)
			})
		},
	}
	src.bind(cmd)
	return cmd
}

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every app key from the store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(func(kv storage.KeyValue) error {
				bar := newProgress(cmd.ErrOrStderr(), "removing keys")
				n, ok, err := a.injector(kv, func(string) { _ = bar.Add(1) }).Clear()
				_ = bar.Finish()
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d keys.\n", n)
				return nil
			})
		},
	}
}

// maybeDumpMetrics prints every non-zero injection counter.
func (a *app) maybeDumpMetrics(w io.Writer, enabled bool) error {
	if !enabled {
		return nil
	}
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			v := m.GetCounter().GetValue()
			if v == 0 {
				continue
			}
			labels := ""
			for _, lp := range m.GetLabel() {
				if labels != "" {
					labels += ","
				}
				labels += fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue())
			}
			if labels != "" {
				labels = "{" + labels + "}"
			}
			fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), labels, v)
		}
	}
	return nil
}
