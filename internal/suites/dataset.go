package suites

import (
	"pkg.jsn.cam/levelup/pkg/check"
	"pkg.jsn.cam/levelup/pkg/seed"
)

func uniqueIDs[T any](items []T, id func(T) string, family string) {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		k := id(it)
		check.OK(!seen[k], "duplicate "+family+" id "+k)
		seen[k] = true
	}
}

func registerDataset(f *check.Framework) {
	f.Describe("Character Data", func() {
		f.It("level is in 3-5", func() {
			ds := mustDataset(ReferenceSeed, seed.Options{})
			check.OK(ds.Character.Level >= 3 && ds.Character.Level <= 5, "level should be 3-5")
		})

		f.It("transformCount aligns with level", func() {
			ds := mustDataset(ReferenceSeed, seed.Options{})
			check.OK(ds.Character.TransformCount >= 0, "transformCount should be >= 0")
			check.Equal(ds.Character.TransformCount, ds.Character.Level-1, "transformCount should be level - 1")
		})

		f.It("exerciseResetAt is valid ISO date", func() {
			ds := mustDataset(ReferenceSeed, seed.Options{})
			check.OK(isoDate.MatchString(ds.Character.ExerciseResetAt), "ISO date")
			check.OK(seed.ValidDate(ds.Character.ExerciseResetAt), "calendar date")
		})
	})

	f.Describe("ID Uniqueness", func() {
		ds := mustDataset(ReferenceSeed, seed.Options{})
		f.It("no duplicate receipt IDs", func() {
			uniqueIDs(ds.Receipts, func(r seed.Receipt) string { return r.ID }, "receipt")
		})
		f.It("no duplicate flashcard IDs", func() {
			uniqueIDs(ds.FlashData.Flashcards, func(c seed.Flashcard) string { return c.ID }, "flashcard")
		})
		f.It("no duplicate meal IDs", func() {
			uniqueIDs(ds.Meals, func(m seed.Meal) string { return m.ID }, "meal")
		})
		f.It("no duplicate event IDs", func() {
			uniqueIDs(ds.Events, func(e seed.CalendarEvent) string { return e.ID }, "event")
		})
		f.It("no duplicate trip IDs", func() {
			uniqueIDs(ds.Trips, func(t seed.Trip) string { return t.ID }, "trip")
		})
		f.It("no duplicate plant IDs", func() {
			uniqueIDs(ds.GardenData.Plants, func(p seed.Plant) string { return p.ID }, "plant")
		})
	})

	f.Describe("Full Dataset", func() {
		f.It("generates expected data counts", func() {
			ds := mustDataset(ReferenceSeed, seed.Options{})
			check.OK(len(ds.Workouts) > 0, "should have workouts")
			check.Equal(len(ds.Receipts), seed.DefaultReceiptCount)
			check.Equal(len(ds.FlashData.Flashcards), seed.DefaultFlashcardCount)
			check.OK(len(ds.Meals) > 0, "should have meals")
			check.Equal(len(ds.Trips), seed.DefaultTripCount)
			check.Equal(len(ds.BowlingData), seed.DefaultBowlingWeeks)
			check.Equal(len(ds.Events), seed.DefaultEventCount)
			check.Equal(len(ds.GardenData.Plants), seed.DefaultPlantCount)
		})

		f.It("keys match their documents", func() {
			ds := mustDataset(ReferenceSeed, seed.Options{})
			for k, w := range ds.Workouts {
				check.Equal(k, seed.WorkoutKeyPrefix+w.Date)
			}
			for k, b := range ds.BowlingData {
				check.Equal(k, seed.BowlingKeyPrefix+b.WeekID)
				check.ArrayLength(b.Games, seed.GamesPerWeek)
			}
		})

		f.It("is deterministic with same seed", func() {
			a := mustDataset(ReferenceSeed, seed.Options{})
			b := mustDataset(ReferenceSeed, seed.Options{})
			check.Equal(len(a.Receipts), len(b.Receipts), "same receipt count")
			check.Equal(len(a.Workouts), len(b.Workouts), "same workout count")
			check.Equal(len(a.Meals), len(b.Meals), "same meal count")
			check.DeepEqual(a.Character, b.Character, "same character data")
			check.DeepEqual(a, b, "same dataset")
		})

		f.It("produces different data with different seed", func() {
			a := mustDataset(42, seed.Options{})
			b := mustDataset(99, seed.Options{})
			same := a.Character.Level == b.Character.Level &&
				len(a.Workouts) == len(b.Workouts) &&
				len(a.Meals) == len(b.Meals)
			check.OK(!same, "different seeds should produce different data")
		})

		f.It("respects options overrides", func() {
			ds := mustDataset(ReferenceSeed, seed.Options{ReceiptCount: 5, FlashcardCount: 10, TripCount: 1, EventCount: 3})
			check.ArrayLength(ds.Receipts, 5, "should respect receiptCount")
			check.ArrayLength(ds.FlashData.Flashcards, 10, "should respect flashcardCount")
			check.ArrayLength(ds.Trips, 1, "should respect tripCount")
			check.ArrayLength(ds.Events, 3, "should respect eventCount")
		})

		f.It("rejects invalid options", func() {
			check.Throws(func() { mustDataset(ReferenceSeed, seed.Options{ReceiptCount: -1}) })
			check.Throws(func() { mustDataset(ReferenceSeed, seed.Options{StartDate: "2026-13-01"}) })
		})
	})
}
