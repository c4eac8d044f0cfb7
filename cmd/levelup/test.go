package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/levelup/internal/suites"
	"pkg.jsn.cam/levelup/pkg/check"
	"pkg.jsn.cam/levelup/pkg/storage"
)

var errSuitesFailed = errors.New("suites failed")

func newTestCmd(a *app) *cobra.Command {
	var (
		color   bool
		useFile bool
	)
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the schema, aggregation and store suites",
		Long:  "Runs every registered suite and exits non-zero if any test fails. Store suites use in-memory stores unless --file is set, in which case each test gets a scratch store of the configured backend in a temporary directory.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env := suites.MemoryEnv()
			if useFile && a.cfg.StoreBackend != storage.KindMemory {
				dir, err := os.MkdirTemp("", "levelup-suites-")
				if err != nil {
					return fmt.Errorf("create scratch dir: %w", err)
				}
				defer os.RemoveAll(dir)
				env = suites.FileEnv(dir, a.cfg.StoreBackend, a.base)
			}

			f := check.New(check.WithLogger(a.base))
			suites.Register(f, env)
			sum := f.Run()

			if !cmd.Flags().Changed("color") {
				color = isTerminal(cmd.OutOrStdout())
			}
			if err := check.Report(cmd.OutOrStdout(), f.Results(), sum, color); err != nil {
				return err
			}
			if sum.Failed > 0 {
				return fmt.Errorf("%w: %d of %d", errSuitesFailed, sum.Failed, sum.Total)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&color, "color", false, "Colour PASS/FAIL markers (default: when stdout is a terminal)")
	cmd.Flags().BoolVar(&useFile, "file", false, "Run store suites against the configured file backend")
	return cmd
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
