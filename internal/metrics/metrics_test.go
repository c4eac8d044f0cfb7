package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectionCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewInjection(reg)

	m.AddWritten("receipts", "append", 3)
	m.AddWritten("receipts", "append", 2)
	m.AddWritten("trips", "overwrite", 0)
	m.AddSkipped("workouts", "append", 4)
	m.AddCleared(7)

	assert.Equal(t, 5.0, testutil.ToFloat64(m.Written.WithLabelValues("receipts", "append")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Skipped.WithLabelValues("workouts", "append")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.Cleared))

	// zero adds do not create a series
	assert.Equal(t, 1, testutil.CollectAndCount(m.Written))

	n, err := testutil.GatherAndCount(reg, "levelup_inject_keys_cleared_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDiscardIsIndependent(t *testing.T) {
	a, b := Discard(), Discard()
	a.AddCleared(1)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Cleared))
}
