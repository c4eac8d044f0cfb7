package suites

import (
	"math"
	"strconv"
	"time"

	"pkg.jsn.cam/levelup/pkg/check"
	"pkg.jsn.cam/levelup/pkg/dashboard"
	"pkg.jsn.cam/levelup/pkg/pools"
	"pkg.jsn.cam/levelup/pkg/seed"
)

func registerAggregation(f *check.Framework) {
	f.Describe("Exercise Volume", func() {
		f.It("sum of weight x reps matches day totals", func() {
			w := seed.New(ReferenceSeed).Workout(sampleDate)
			expected := 0
			for _, ex := range w.Exercises {
				for _, s := range ex.Sets {
					if s.Weight > 0 && s.Reps > 0 {
						expected += s.Weight * s.Reps
					}
				}
			}
			tot := dashboard.DayTotals(dashboard.FromWorkout(w))
			check.Equal(tot.Volume, expected, "volume calculation should match")
			check.Equal(w.Volume(), expected)
			check.GreaterThan(tot.Moves, 0, "should have at least one exercise with sets")
			check.GreaterThan(tot.Sets, 0, "should have at least one set")
		})

		f.It("volume is zero for cardio-only workout", func() {
			w := seed.Workout{Date: sampleDate, Exercises: []seed.Exercise{{
				Name:     "Treadmill Run",
				BodyPart: pools.CardioPart,
				Sets:     []seed.Set{{Weight: 0, Reps: 20, Done: true}, {Weight: 0, Reps: 25, Done: true}},
			}}}
			tot := dashboard.DayTotals(dashboard.FromWorkout(w))
			check.Equal(tot.Volume, 0, "cardio volume should be zero")
			check.Equal(tot.Sets, 2, "reps-only sets still count")
		})

		f.It("multi-day volume accumulates correctly", func() {
			ds := mustDataset(ReferenceSeed, seed.Options{})
			days := make([]dashboard.Day, 0, len(ds.Workouts))
			for _, w := range ds.Workouts {
				days = append(days, dashboard.FromWorkout(w))
			}
			total := ds.TotalVolume()
			check.GreaterThan(total, 50000, "with 20+ workout days, volume should exceed 50k")
			check.Equal(dashboard.VolumeSince(days, dashboard.DefaultResetAt), total)
		})

		f.It("volume since reset only counts later days", func() {
			ds := mustDataset(ReferenceSeed, seed.Options{})
			reset := ds.Character.ExerciseResetAt
			days := make([]dashboard.Day, 0, len(ds.Workouts))
			expected := 0
			for _, w := range ds.Workouts {
				days = append(days, dashboard.FromWorkout(w))
				if w.Date > reset {
					expected += w.Volume()
				}
			}
			check.Equal(dashboard.VolumeSince(days, reset), expected)
		})
	})

	f.Describe("Finance Monthly Total", func() {
		f.It("month totals match at receipt and item granularity", func() {
			ds := mustDataset(ReferenceSeed, seed.Options{})
			start, end := dashboard.MonthRange(2026, time.February)

			receiptTotal, itemTotal := 0.0, 0.0
			count := 0
			for _, r := range ds.Receipts {
				if r.Date < start || r.Date >= end {
					continue
				}
				count++
				receiptTotal += r.Total
				for _, it := range r.Items {
					itemTotal += it.Price * float64(it.Quantity)
				}
			}
			check.GreaterThan(count, 0, "february has receipts")

			entries := dashboard.FilterRange(dashboard.ReceiptsToEntries(dashboard.Objects(ds.Receipts)), start, end)
			sum := 0.0
			for _, e := range entries {
				sum += e.Amount
			}
			check.CloseTo(sum, itemTotal, 1e-6, "item entries sum to line totals")
			check.OK(receiptTotal >= itemTotal-0.01*float64(count), "receipt totals include rounding and tax")
		})

		f.It("empty month returns zero", func() {
			ds := mustDataset(ReferenceSeed, seed.Options{StartDate: "2026-05-01"})
			start, end := dashboard.MonthRange(2026, time.January)
			entries := dashboard.FilterRange(dashboard.ReceiptsToEntries(dashboard.Objects(ds.Receipts)), start, end)
			check.ArrayLength(entries, 0)
			check.Equal(dashboard.Total(dashboard.SumByCategory(entries)), 0)
		})
	})

	f.Describe("Nutrition Daily Totals", func() {
		f.It("meal totals match sum of ingredient macros", func() {
			m := seed.New(ReferenceSeed).Meal(sampleDate, "Lunch")
			cal, pro, carbs, fat := 0, 0.0, 0.0, 0.0
			for _, ing := range m.Ingredients {
				cal += ing.Calories
				pro += ing.Protein
				carbs += ing.Carbs
				fat += ing.Fat
			}
			check.Equal(m.Totals.Calories, cal, "calories should match")
			check.CloseTo(m.Totals.Protein, pro, 0.2, "protein should match")
			check.CloseTo(m.Totals.Carbs, carbs, 0.2, "carbs should match")
			check.CloseTo(m.Totals.Fat, fat, 0.2, "fat should match")
		})

		f.It("daily totals accumulate across meals", func() {
			meals := seed.New(ReferenceSeed).NutritionDay(sampleDate)
			expected := 0
			for _, m := range meals {
				expected += m.Totals.Calories
			}
			got := dashboard.DailyCalories(dashboard.Objects(meals))
			check.Equal(got[sampleDate], expected)
			check.GreaterThan(expected, 500, "should be > 500 cal for 3+ meals")
		})

		f.It("meal days count distinct dates", func() {
			ds := mustDataset(ReferenceSeed, seed.Options{})
			dates := map[string]bool{}
			for _, m := range ds.Meals {
				dates[m.Date] = true
			}
			check.Equal(dashboard.MealDays(dashboard.Objects(ds.Meals)), len(dates))
		})
	})

	f.Describe("Bowling Average", func() {
		f.It("average of game scores is correct", func() {
			b := must(seed.New(ReferenceSeed).BowlingWeek("2026-W06"))
			total := 0
			for _, g := range b.Games {
				total += g.Score
			}
			expected := int(math.Floor(float64(total)/float64(len(b.Games)) + 0.5))
			check.Equal(b.Average(), expected)
			check.OK(expected >= 80 && expected <= 240, "average should be realistic")
		})

		f.It("overall average across multiple weeks", func() {
			ds := mustDataset(ReferenceSeed, seed.Options{})
			total, count := 0, 0
			weeks := make([]map[string]any, 0, len(ds.BowlingData))
			for _, w := range ds.BowlingData {
				for _, g := range w.Games {
					total += g.Score
					count++
				}
				weeks = append(weeks, dashboard.Object(w))
			}
			check.GreaterThan(count, 0, "should have bowling games")
			st := dashboard.Bowling(weeks)
			check.Equal(st.Games, count)
			check.Equal(st.Average, dashboard.BowlingAverage(float64(total), count))
			check.OK(st.Average >= 80 && st.Average <= 240, "average should be in realistic range")
		})
	})

	f.Describe("Level Progression", func() {
		f.It("transform count aligns with character level", func() {
			ds := mustDataset(ReferenceSeed, seed.Options{})
			check.Equal(ds.Character.TransformCount, ds.Character.Level-1)
		})

		f.It("stored character strings read back as numbers", func() {
			ds := mustDataset(ReferenceSeed, seed.Options{})
			check.Equal(dashboard.Level(strconv.Itoa(ds.Character.Level), true), ds.Character.Level)
			check.Equal(dashboard.TransformCount(strconv.Itoa(ds.Character.TransformCount), true), ds.Character.TransformCount)
			check.Equal(dashboard.ExerciseResetAt(ds.Character.ExerciseResetAt, true), ds.Character.ExerciseResetAt)
		})
	})

	f.Describe("Finance Category Filtering", func() {
		f.It("filtering by Groceries returns correct subset", func() {
			ds := mustDataset(ReferenceSeed, seed.Options{})
			groceries, cafe := 0, 0
			for _, r := range ds.Receipts {
				switch r.Category {
				case seed.CategoryGroceries:
					groceries++
				case seed.CategoryCafe:
					cafe++
				}
			}
			check.OK(groceries+cafe <= len(ds.Receipts), "filtered subsets should not exceed total")

			entries := dashboard.ReceiptsToEntries(dashboard.Objects(ds.Receipts))
			for _, e := range (dashboard.FinanceFilter{GroceriesOnly: true}).Apply(entries) {
				check.OK(dashboard.IsGroceries(e.Category) || dashboard.IsGroceries(e.Subcategory), "grocery entry")
			}
		})

		f.It("grocery items have valid subcategories", func() {
			ds := mustDataset(ReferenceSeed, seed.Options{})
			subs := map[string]bool{}
			for _, it := range pools.GroceryItems {
				subs[it.Subcategory] = true
			}
			for _, r := range ds.Receipts {
				if r.Category != seed.CategoryGroceries {
					continue
				}
				for _, it := range r.Items {
					check.TypeOf(it.Subcategory, "string")
					check.OK(subs[it.Subcategory], "subcategory from catalog")
				}
			}
		})

		f.It("category sums cover every entry", func() {
			ds := mustDataset(ReferenceSeed, seed.Options{})
			entries := dashboard.ReceiptsToEntries(dashboard.Objects(ds.Receipts))
			sum := 0.0
			for _, e := range entries {
				sum += e.Amount
			}
			rows := dashboard.SumByCategory(entries)
			check.CloseTo(dashboard.Total(rows), sum, 1e-6)
			for i := 1; i < len(rows); i++ {
				check.OK(rows[i-1].Value >= rows[i].Value, "rows sorted by value")
			}
		})
	})
}
