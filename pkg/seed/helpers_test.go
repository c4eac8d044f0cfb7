package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFixed(t *testing.T) {
	tests := []struct {
		in     float64
		digits int
		want   float64
	}{
		{1.005, 2, 1},    // 1.00499999999999989...
		{1.125, 2, 1.13}, // exact tie rounds up
		{2.675, 2, 2.67},
		{0.5, 0, 1},
		{-1.125, 2, -1.13},
		{44.2, 1, 44.2},
		{90.38999999999999, 2, 90.39},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toFixed(tt.in, tt.digits), "toFixed(%v, %d)", tt.in, tt.digits)
	}
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3, roundHalfUp(2.5))
	assert.Equal(t, -2, roundHalfUp(-2.5))
	assert.Equal(t, 2, roundHalfUp(2.49))
}

func TestAddDays(t *testing.T) {
	d, err := AddDays("2026-02-14", -20)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-25", d)

	d, err = AddDays("2024-02-28", 1)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d)

	_, err = AddDays("not-a-date", 1)
	assert.Error(t, err)
}

func TestDateRange(t *testing.T) {
	got, err := DateRange("2025-12-30", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-12-30", "2025-12-31", "2026-01-01", "2026-01-02"}, got)

	got, err = DateRange("2026-01-01", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseWeekID(t *testing.T) {
	y, w, err := ParseWeekID("2026-W06")
	require.NoError(t, err)
	assert.Equal(t, 2026, y)
	assert.Equal(t, 6, w)
	assert.Equal(t, "2026-W06", WeekID(y, w))

	for _, bad := range []string{"2026W06", "abcd-W01", "2026-Wxx", "2026-W00"} {
		_, _, err := ParseWeekID(bad)
		assert.ErrorIs(t, err, ErrInvalidWeekID, bad)
	}
}

func TestPlantXP(t *testing.T) {
	assert.Equal(t, 3, PlantXP(0, 0, 0, 0))
	assert.Equal(t, 3+5+5+3+8+10+5+2+1+5, PlantXP(6, 2, 1, 4))
}

func TestGardenDataset(t *testing.T) {
	g := New(8)
	garden := g.GardenDataset(5, "2026-03-01")

	require.Len(t, garden.Plants, 5)
	require.Len(t, garden.Activities, 5)
	total := 0
	for i, p := range garden.Plants {
		total += p.XPAwarded
		act := garden.Activities[i]
		assert.Equal(t, "Planted "+p.Type, act.Detail)
		assert.Equal(t, *p.Dates.Seeded, act.Date)
		assert.Equal(t, act.Date+"T12:00:00.000Z", act.Timestamp)
		assert.Equal(t, 3, act.XP)
		if StageIndex(p.Status) >= 5 {
			assert.Positive(t, p.Yield.Count)
		} else {
			assert.Zero(t, p.Yield.Count)
		}
	}
	assert.Equal(t, total, garden.TotalXP)
}

func TestRegistry(t *testing.T) {
	names := List()
	assert.Equal(t, []string{
		"bowling-week", "event", "flashcards", "garden", "meal",
		"nutrition-day", "plant", "receipt", "trip", "workout",
	}, names)

	_, err := Get("spaceship")
	assert.ErrorIs(t, err, ErrUnknownFamily)

	docs, err := GenerateN(New(1), "receipt", "2026-02-10", 3)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	for _, d := range docs {
		_, ok := d.(Receipt)
		assert.True(t, ok)
	}

	docs, err = GenerateN(New(1), "bowling-week", "2026-02-10", 1)
	require.NoError(t, err)
	assert.Equal(t, "2026-W07", docs[0].(BowlingWeek).WeekID)

	_, err = GenerateN(New(1), "plant", "yesterday", 1)
	assert.ErrorIs(t, err, ErrInvalidOptions)
}
