package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketKVAcrossBackends(t *testing.T) {
	for _, kind := range []string{KindMemory, KindBbolt, KindSQLite} {
		t.Run(kind, func(t *testing.T) {
			kv, err := Open(kind, filepath.Join(t.TempDir(), "store.db"), "")
			require.NoError(t, err)
			defer kv.Close()
			assert.Equal(t, DefaultBucket, kv.Bucket())

			_, ok, err := kv.Get("character_level")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, kv.Set("character_level", "4"))
			require.NoError(t, kv.Set("powerUp:2026-01-15", `{"date":"2026-01-15"}`))
			require.NoError(t, kv.Set("unrelated", "x"))

			v, ok, err := kv.Get("character_level")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "4", v)

			keys, err := kv.Keys()
			require.NoError(t, err)
			assert.Equal(t, []string{"character_level", "powerUp:2026-01-15", "unrelated"}, keys)

			require.NoError(t, kv.Remove("character_level"))
			require.NoError(t, kv.Remove("character_level"))
			keys, err = kv.Keys()
			require.NoError(t, err)
			assert.Equal(t, []string{"powerUp:2026-01-15", "unrelated"}, keys)
		})
	}
}

func TestBucketKVEmptyValue(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set("garden:totalXp", ""))
	v, ok, err := kv.Get("garden:totalXp")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("redis", "", "")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestBboltPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levelup.db")

	kv, err := Open(KindBbolt, path, "app")
	require.NoError(t, err)
	require.NoError(t, kv.Set("receipts", "[]"))
	require.NoError(t, kv.Close())

	kv, err = Open(KindBbolt, path, "app")
	require.NoError(t, err)
	defer kv.Close()
	v, ok, err := kv.Get("receipts")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)
}
