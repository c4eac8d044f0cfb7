package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/levelup/pkg/seed"
)

type optionFlags struct {
	file string
	opts seed.Options
}

// bind registers the dataset option flags on cmd.
func (o *optionFlags) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.file, "options", "", "YAML file with dataset options")
	f.IntVar(&o.opts.WorkoutDays, "workout-days", 0, "Days of workout history")
	f.IntVar(&o.opts.ReceiptCount, "receipts", 0, "Number of receipts")
	f.IntVar(&o.opts.FlashcardCount, "flashcards", 0, "Number of flashcards")
	f.IntVar(&o.opts.NutritionDays, "nutrition-days", 0, "Days of meals")
	f.IntVar(&o.opts.TripCount, "trips", 0, "Number of trips")
	f.IntVar(&o.opts.BowlingWeeks, "bowling-weeks", 0, "Number of bowling weeks")
	f.IntVar(&o.opts.EventCount, "events", 0, "Number of calendar events")
	f.IntVar(&o.opts.PlantCount, "plants", 0, "Number of garden plants")
	f.Float64Var(&o.opts.SkipRate, "skip-rate", 0, "Chance a workout day is skipped")
	f.StringVar(&o.opts.StartDate, "start", "", "Reference date (YYYY-MM-DD)")
}

// resolve merges the options file with flags set on the command line.
func (o *optionFlags) resolve(cmd *cobra.Command) (seed.Options, error) {
	var opts seed.Options
	if o.file != "" {
		loaded, err := seed.LoadOptions(o.file)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}
	f := cmd.Flags()
	override := func(name string, dst *int, v int) {
		if f.Changed(name) {
			*dst = v
		}
	}
	override("workout-days", &opts.WorkoutDays, o.opts.WorkoutDays)
	override("receipts", &opts.ReceiptCount, o.opts.ReceiptCount)
	override("flashcards", &opts.FlashcardCount, o.opts.FlashcardCount)
	override("nutrition-days", &opts.NutritionDays, o.opts.NutritionDays)
	override("trips", &opts.TripCount, o.opts.TripCount)
	override("bowling-weeks", &opts.BowlingWeeks, o.opts.BowlingWeeks)
	override("events", &opts.EventCount, o.opts.EventCount)
	override("plants", &opts.PlantCount, o.opts.PlantCount)
	if f.Changed("skip-rate") {
		opts.SkipRate = o.opts.SkipRate
	}
	if f.Changed("start") {
		opts.StartDate = o.opts.StartDate
	}
	return opts, opts.Validate()
}

// dataset builds the full dataset for the configured seed.
func (a *app) dataset(cmd *cobra.Command, of *optionFlags) (*seed.Snapshot, error) {
	opts, err := of.resolve(cmd)
	if err != nil {
		return nil, err
	}
	ds, err := seed.GenerateFullDataset(a.cfg.Seed, opts)
	if err != nil {
		return nil, err
	}
	a.log.Debug().Int32("seed", a.cfg.Seed).Int("workouts", len(ds.Workouts)).Msg("dataset generated")
	snap := seed.NewSnapshot(a.cfg.Seed, opts, ds)
	return &snap, nil
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		of     optionFlags
		out    string
		family string
		count  int
		date   string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dataset snapshot or single-family documents as JSON",
		Example: `  levelup generate --seed 7 --out var/seed-7.json
  levelup generate --family receipt --count 3 --date 2026-02-01`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			if family != "" {
				docs, err := seed.GenerateN(seed.New(a.cfg.Seed), family, date, count)
				if err != nil {
					return err
				}
				return writeJSON(w, docs)
			}

			snap, err := a.dataset(cmd, &of)
			if err != nil {
				return err
			}
			if err := seed.WriteSnapshot(w, *snap); err != nil {
				return err
			}
			if out != "" {
				a.log.Info().Str("file", out).Str("run_id", snap.RunID).Msg("snapshot written")
			}
			return nil
		},
	}
	of.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVarP(&family, "family", "f", "", "Generate documents of one family (see 'levelup families')")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Documents to generate with --family")
	cmd.Flags().StringVar(&date, "date", seed.DefaultStartDate, "Anchor date for --family")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
