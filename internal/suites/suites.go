// Package suites registers the schema, aggregation and store suites that
// check generated data end to end with the check framework.
package suites

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/rs/zerolog"

	"pkg.jsn.cam/levelup/pkg/check"
	"pkg.jsn.cam/levelup/pkg/seed"
	"pkg.jsn.cam/levelup/pkg/storage"
)

// ReferenceSeed is the seed every suite generates from unless a test says
// otherwise.
const ReferenceSeed = 42

// Env supplies the stores used by suites that touch storage.
type Env struct {
	// NewStore opens an empty store and returns a function that releases it.
	NewStore func() (storage.KeyValue, func(), error)
	Log      zerolog.Logger
}

// MemoryEnv gives every test a fresh in-memory store.
func MemoryEnv() Env {
	return Env{
		NewStore: func() (storage.KeyValue, func(), error) {
			kv := storage.NewMemoryKV()
			return kv, func() { _ = kv.Close() }, nil
		},
		Log: zerolog.Nop(),
	}
}

// FileEnv gives every test a fresh file-backed store of the given kind
// under dir. The file is removed on release.
func FileEnv(dir, kind string, log zerolog.Logger) Env {
	var n atomic.Int64
	return Env{
		NewStore: func() (storage.KeyValue, func(), error) {
			path := filepath.Join(dir, fmt.Sprintf("suite-%d.db", n.Add(1)))
			kv, err := storage.Open(kind, path, storage.DefaultBucket)
			if err != nil {
				return nil, nil, err
			}
			return kv, func() {
				_ = kv.Close()
				_ = os.Remove(path)
			}, nil
		},
		Log: log,
	}
}

// Register declares every suite on f.
func Register(f *check.Framework, env Env) {
	registerSchema(f)
	registerDataset(f)
	registerAggregation(f)
	registerStore(f, env)
}

func mustDataset(s int32, opts seed.Options) *seed.Dataset {
	ds, err := seed.GenerateFullDataset(s, opts)
	if err != nil {
		panic(err)
	}
	return ds
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
