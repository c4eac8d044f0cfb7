package suites

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkg.jsn.cam/levelup/pkg/check"
	"pkg.jsn.cam/levelup/pkg/storage"
)

func runSuites(t *testing.T, env Env) {
	t.Helper()
	f := check.New()
	Register(f, env)

	sum := f.Run()
	for _, r := range f.Results() {
		if r.Status == check.StatusFail {
			t.Errorf("%s > %s: %s", r.Suite, r.Test, r.Error)
		}
	}
	require.Zero(t, sum.Failed)
	assert.Equal(t, sum.Total, sum.Passed)
	assert.Greater(t, sum.Total, 70)
}

func TestSuitesPassInMemory(t *testing.T) {
	runSuites(t, MemoryEnv())
}

func TestSuitesPassOnFileBackends(t *testing.T) {
	for _, kind := range []string{storage.KindBbolt, storage.KindSQLite} {
		t.Run(kind, func(t *testing.T) {
			runSuites(t, FileEnv(t.TempDir(), kind, zerolog.Nop()))
		})
	}
}

func TestSuitesRerun(t *testing.T) {
	f := check.New()
	Register(f, MemoryEnv())
	first := f.Run()
	second := f.Run()
	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.Passed, second.Passed)
}
