package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/levelup/internal/config"
	"pkg.jsn.cam/levelup/internal/inject"
	"pkg.jsn.cam/levelup/internal/metrics"
	"pkg.jsn.cam/levelup/pkg/storage"
)

// app carries state shared by every subcommand for a single invocation.
type app struct {
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	cfg      *config.Config
	base     zerolog.Logger
	log      zerolog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Injection

	envFile  string
	backend  string
	path     string
	bucket   string
	logLevel string
	yes      bool
	seed     int32
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "levelup",
		Short:         "levelup seeds and checks LevelUp dashboard data",
		Long:          "levelup generates reproducible sample data from a seed, writes it into a local key-value store and runs the schema and aggregation suites against it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.envFile, "env-file", ".env", "Optional dotenv file read before the environment")
	pf.StringVar(&a.backend, "backend", "", "Store backend: memory, bbolt or sqlite (env LEVELUP_STORE_BACKEND)")
	pf.StringVar(&a.path, "store", "", "Store file path (env LEVELUP_STORE_PATH)")
	pf.StringVar(&a.bucket, "bucket", "", "Bucket holding app keys (env LEVELUP_STORE_BUCKET)")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level (env LEVELUP_LOG_LEVEL)")
	pf.BoolVarP(&a.yes, "yes", "y", false, "Skip confirmation prompts (env LEVELUP_ASSUME_YES)")
	pf.Int32Var(&a.seed, "seed", 0, "PRNG seed (env LEVELUP_SEED)")

	root.AddCommand(
		newGenerateCmd(a),
		newInjectCmd(a),
		newAppendCmd(a),
		newClearCmd(a),
		newSummaryCmd(a),
		newTestCmd(a),
		newFamiliesCmd(a),
	)
	return root
}

// setup loads configuration and lets explicitly set flags override it.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.StoreBackend = a.backend
	}
	if flags.Changed("store") {
		cfg.StorePath = a.path
	}
	if flags.Changed("bucket") {
		cfg.StoreBucket = a.bucket
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("yes") {
		cfg.AssumeYes = a.yes
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.base = config.Logger(a.errOut, cfg.Level())
	a.log = a.base.With().Str("component", "cli").Logger()
	a.registry = prometheus.NewRegistry()
	a.metrics = metrics.NewInjection(a.registry)
	return nil
}

func (a *app) openStore() (*storage.BucketKV, error) {
	kv, err := storage.Open(a.cfg.StoreBackend, a.cfg.StorePath, a.cfg.StoreBucket)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", a.cfg.StoreBackend, err)
	}
	a.base.Debug().
		Str("component", "storage").
		Str("backend", a.cfg.StoreBackend).
		Str("path", a.cfg.StorePath).
		Str("bucket", kv.Bucket()).
		Msg("store opened")
	return kv, nil
}

func (a *app) withStore(run func(kv storage.KeyValue) error) error {
	kv, err := a.openStore()
	if err != nil {
		return err
	}
	defer kv.Close()
	return run(kv)
}

func (a *app) confirm() inject.ConfirmFunc {
	if a.cfg.AssumeYes {
		return inject.AlwaysConfirm
	}
	return inject.PromptConfirm(a.in, a.out)
}

func (a *app) injector(kv storage.KeyValue, observe func(string)) *inject.Injector {
	opts := []inject.Option{
		inject.WithConfirm(a.confirm()),
		inject.WithLogger(a.base),
		inject.WithMetrics(a.metrics),
	}
	if observe != nil {
		opts = append(opts, inject.WithObserver(observe))
	}
	return inject.New(kv, opts...)
}
