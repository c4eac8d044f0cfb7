package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testWeek struct {
	WeekID string `json:"weekId"`
	Games  []int  `json:"games"`
}

func TestJSONStore(t *testing.T) {
	t.Run("PutAndGetJSON", func(t *testing.T) {
		store := NewJSONStore(NewMemoryKV())

		original := testWeek{WeekID: "2026-W06", Games: []int{176, 152, 217}}
		require.NoError(t, store.PutJSON("bowling:week:2026-W06", original))

		raw, ok, err := store.KV().Get("bowling:week:2026-W06")
		require.NoError(t, err)
		require.True(t, ok)
		assert.JSONEq(t, `{"weekId":"2026-W06","games":[176,152,217]}`, raw)

		var got testWeek
		found, err := store.GetJSON("bowling:week:2026-W06", &got)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, original, got)
	})

	t.Run("GetJSONMissing", func(t *testing.T) {
		store := NewJSONStore(NewMemoryKV())

		var got testWeek
		found, err := store.GetJSON("nonexistent", &got)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Zero(t, got)
	})

	t.Run("GetJSONMalformed", func(t *testing.T) {
		store := NewJSONStore(NewMemoryKV())
		require.NoError(t, store.KV().Set("receipts", "{not json"))

		var got []testWeek
		found, err := store.GetJSON("receipts", &got)
		assert.True(t, found)
		assert.ErrorIs(t, err, ErrMalformedValue)
	})

	t.Run("HasAndDelete", func(t *testing.T) {
		store := NewJSONStore(NewMemoryKV())
		require.NoError(t, store.PutJSON("trips", []testWeek{}))

		ok, err := store.Has("trips")
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, store.Delete("trips"))
		ok, err = store.Has("trips")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
