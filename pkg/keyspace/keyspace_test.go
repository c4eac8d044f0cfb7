package keyspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkg.jsn.cam/levelup/pkg/seed"
	"pkg.jsn.cam/levelup/pkg/storage"
)

func TestIsAppKey(t *testing.T) {
	for _, k := range KnownKeys {
		assert.True(t, IsAppKey(k), k)
	}
	assert.True(t, IsAppKey("powerUp:2026-01-15"))
	assert.True(t, IsAppKey("powerUp:notes"))
	assert.True(t, IsAppKey("bowling:week:2026-W03"))

	for _, k := range []string{"theme", "levelUp:other", "garden:settings", "bowling:season", "PowerUp:2026-01-15"} {
		assert.False(t, IsAppKey(k), k)
	}
}

func TestIsWorkoutKey(t *testing.T) {
	assert.True(t, IsWorkoutKey(WorkoutKey("2026-02-10")))
	assert.False(t, IsWorkoutKey("powerUp:notes"))
	assert.False(t, IsWorkoutKey("powerUp:2026-2-10"))
	assert.True(t, IsBowlingKey(BowlingKey("2026-W01")))
}

func TestPrefixesMatchSeedPackage(t *testing.T) {
	assert.Equal(t, WorkoutPrefix, seed.WorkoutKeyPrefix)
	assert.Equal(t, BowlingPrefix, seed.BowlingKeyPrefix)
}

func TestAppKeys(t *testing.T) {
	kv := storage.NewMemoryKV()
	for _, k := range []string{"theme", Trips, "powerUp:2026-01-02", "zzz", CharacterLevel} {
		require.NoError(t, kv.Set(k, "1"))
	}

	got, err := AppKeys(kv)
	require.NoError(t, err)
	assert.Equal(t, []string{CharacterLevel, "powerUp:2026-01-02", Trips}, got)

	got, err = Filter(kv, IsWorkoutKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"powerUp:2026-01-02"}, got)
}
