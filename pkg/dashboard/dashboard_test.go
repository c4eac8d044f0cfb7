package dashboard

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkg.jsn.cam/levelup/pkg/keyspace"
	"pkg.jsn.cam/levelup/pkg/seed"
	"pkg.jsn.cam/levelup/pkg/storage"
)

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestNormalizeDayAlternateFields(t *testing.T) {
	raw := decode(t, `{
		"date": "2026-01-03",
		"exercises": [
			{"exercise": "Squat", "muscle": "Legs", "sets": [{"weight": "135", "reps": 5, "completed": true}, {"weight": null, "reps": "x"}]},
			{"group": "Back"},
			{"name": "", "sets": []}
		]
	}`)

	day, ok := NormalizeDay(raw)
	require.True(t, ok)
	require.Len(t, day.Exercises, 3)

	sq := day.Exercises[0]
	assert.Equal(t, "Squat", sq.Name)
	assert.Equal(t, "Legs", sq.BodyPart)
	assert.Equal(t, []Set{{Weight: 135, Reps: 5, Done: true}, {}}, sq.Sets)

	assert.Equal(t, "Exercise", day.Exercises[1].Name)
	assert.Equal(t, "Back", day.Exercises[1].BodyPart)
	assert.Empty(t, day.Exercises[1].Sets)
	assert.Equal(t, "Other", day.Exercises[2].BodyPart)

	tot := DayTotals(day)
	assert.Equal(t, Totals{Sets: 1, Volume: 675, Moves: 1}, tot)

	_, ok = NormalizeDay(decode(t, `{"exercises": []}`))
	assert.False(t, ok)
	_, ok = NormalizeDay(nil)
	assert.False(t, ok)
}

func TestFromWorkoutMatchesGeneratorVolume(t *testing.T) {
	w := seed.New(42).Workout("2026-02-10")
	day := FromWorkout(w)
	assert.Equal(t, float64(w.Volume()), DayTotals(day).Volume)
	assert.Equal(t, float64(17525), DayTotals(day).Volume)
	assert.Equal(t, len(w.Exercises), DayTotals(day).Moves)
}

func TestVolumeSince(t *testing.T) {
	days := []Day{
		{Date: "2026-01-01", Exercises: []Exercise{{Sets: []Set{{Weight: 100, Reps: 10}}}}},
		{Date: "2026-01-05", Exercises: []Exercise{{Sets: []Set{{Weight: 50.5, Reps: 3}}}}},
		{Date: "2026-01-09", Exercises: []Exercise{{Sets: []Set{{Weight: 10, Reps: 0}}}}},
	}
	assert.Equal(t, 1152, VolumeSince(days, "1900-01-01"))
	assert.Equal(t, 152, VolumeSince(days, "2026-01-01"))
	assert.Equal(t, 0, VolumeSince(days, "2026-01-09"))
}

func TestReceiptsToEntries(t *testing.T) {
	receipts := []map[string]any{
		decode(t, `{"date":"2026-02-03","category":"Groceries","items":[
			{"price":2.5,"quantity":2,"subcategory":"Produce"},
			{"price":4,"category":"Household"},
			{"price":0,"quantity":3}
		]}`),
		decode(t, `{"purchaseDate":"2026-02-10T18:30:00Z","total":"1200","category":"Mortgage","store":"Bank"}`),
		decode(t, `{"date":"soon","total":10}`),
		decode(t, `{"date":"2026-03-01","total":-5}`),
	}

	got := ReceiptsToEntries(receipts)
	assert.Equal(t, []Entry{
		{Date: "2026-02-03", Amount: 5, Category: "Groceries", Subcategory: "Produce"},
		{Date: "2026-02-03", Amount: 4, Category: "Household"},
		{Date: "2026-02-10", Amount: 1200, Category: "Mortgage", Subcategory: "Bank"},
	}, got)

	start, end := MonthRange(2026, time.February)
	assert.Equal(t, "2026-02-01", start)
	assert.Equal(t, "2026-03-01", end)
	assert.Len(t, FilterRange(got, start, end), 3)
	decStart, decEnd := MonthRange(2025, time.December)
	assert.Equal(t, "2026-01-01", decEnd)
	assert.Empty(t, FilterRange(got, decStart, decEnd))

	rows := SumByCategory(got)
	assert.Equal(t, []Row{{"Mortgage", 1200}, {"Groceries", 5}, {"Household", 4}}, rows)
	assert.Equal(t, 1209.0, Total(rows))

	groceries := FinanceFilter{GroceriesOnly: true}.Apply(got)
	assert.Equal(t, []Row{{"Produce", 5}}, SumByGroceriesSubcategory(groceries))

	assert.Len(t, FinanceFilter{HideMortgage: true}.Apply(got), 2)
}

func TestCategoryPredicates(t *testing.T) {
	assert.True(t, IsGroceries("Groceries"))
	assert.True(t, IsGroceries("grocery run"))
	assert.False(t, IsGroceries("Cafe"))
	assert.True(t, IsMortgage("Home Mortgage"))
	for _, c := range []string{"Utilities", "Electric", "Gas", "Water bill", "Internet"} {
		assert.True(t, IsUtilities(c), c)
	}
	assert.False(t, IsUtilities("Rental"))
}

func TestCharacterReaders(t *testing.T) {
	assert.Equal(t, 1, Level("", false))
	assert.Equal(t, 1, Level("0", true))
	assert.Equal(t, 1, Level("abc", true))
	assert.Equal(t, 4, Level("4.7", true))
	assert.Equal(t, 0, TransformCount("-1", true))
	assert.Equal(t, 3, TransformCount(" 3 ", true))
	assert.Equal(t, 0, TransformCount("", false))
	assert.Equal(t, "2026-01-26", ExerciseResetAt("2026-01-26", true))
	assert.Equal(t, DefaultResetAt, ExerciseResetAt("yesterday", true))
	assert.Equal(t, DefaultResetAt, ExerciseResetAt("", false))
}

func TestBowling(t *testing.T) {
	weeks := []map[string]any{
		decode(t, `{"weekId":"2026-W01","games":[{"score":176},{"score":152},{"score":217}]}`),
		decode(t, `{"weekId":"2026-W02","games":[{"score":null},{"score":100}]}`),
		decode(t, `{}`),
	}
	st := Bowling(weeks)
	assert.Equal(t, 3, st.Weeks)
	assert.Equal(t, 4, st.Games)
	assert.Equal(t, 645.0, st.Total)
	assert.Equal(t, 161, st.Average)
	assert.Equal(t, 0, BowlingAverage(0, 0))
}

func TestDailyCalories(t *testing.T) {
	meals := Objects(seed.New(42).NutritionDay("2026-02-01"))
	got := DailyCalories(meals)
	assert.Equal(t, map[string]float64{"2026-02-01": 227 + 972 + 1562 + 1380}, got)
	assert.Equal(t, 1, MealDays(meals))
}

func TestReaderDefaultsOnBadJSON(t *testing.T) {
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(keyspace.Receipts, "{oops"))
	require.NoError(t, kv.Set(keyspace.Flashcards, "[]"))
	require.NoError(t, kv.Set(keyspace.Trips, "null"))
	require.NoError(t, kv.Set("powerUp:2026-01-01", "not json"))
	require.NoError(t, kv.Set("powerUp:2026-01-02", `{"date":"2026-01-02","exercises":[{"name":"Row","sets":[{"weight":100,"reps":10}]}]}`))
	require.NoError(t, kv.Set("powerUp:2026-01-03", `{"date":"2026-01-03","exercises":[]}`))

	r := NewReader(kv, zerolog.Nop())

	receipts, err := r.Array(keyspace.Receipts)
	require.NoError(t, err)
	assert.Empty(t, receipts)
	assert.NotNil(t, receipts)

	trips, err := r.Array(keyspace.Trips)
	require.NoError(t, err)
	assert.Empty(t, trips)

	cards, err := r.Flashcards()
	require.NoError(t, err)
	assert.Empty(t, cards)

	days, err := r.Workouts()
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2026-01-02", days[0].Date)

	require.NoError(t, kv.Set(keyspace.ExerciseResetAt, "2026-01-01"))
	power, err := r.ExercisePower()
	require.NoError(t, err)
	assert.Equal(t, 1000, power)

	ch, err := r.Character()
	require.NoError(t, err)
	assert.Equal(t, Character{Level: 1, TransformCount: 0, ExerciseResetAt: "2026-01-01"}, ch)
}

func TestSummaryHelpers(t *testing.T) {
	doc := decode(t, `{"exercises":[{"sets":[{"weight":10,"reps":3},{"weight":-5,"reps":3}]}]}`)
	assert.Equal(t, 30.0, DocumentVolume(doc))

	receipts := []map[string]any{
		decode(t, `{"total": 10.5}`),
		decode(t, `{"total": "2.25"}`),
		decode(t, `{"total": "n/a"}`),
		decode(t, `{}`),
	}
	assert.Equal(t, 12.75, ReceiptTotal(receipts))

	cards := []map[string]any{
		decode(t, `{"state":"mastered"}`),
		decode(t, `{"state":"new"}`),
		decode(t, `{"state":"mastered"}`),
	}
	assert.Equal(t, 2, Mastered(cards))
}
