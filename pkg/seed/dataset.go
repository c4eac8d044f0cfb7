package seed

import (
	"strconv"
	"time"

	"pkg.jsn.cam/levelup/pkg/prng"
)

// Store key prefixes for the keyed dataset families.
const (
	WorkoutKeyPrefix = "powerUp:"
	BowlingKeyPrefix = "bowling:week:"
)

// GenerateFullDataset builds a dataset from a fresh stream seeded with seed.
func GenerateFullDataset(seed int32, opts Options) (*Dataset, error) {
	return New(seed).FullDataset(opts)
}

// FullDataset generates every entity family in a fixed order (workouts,
// receipts, flashcards, nutrition, trips, bowling, events, garden, character)
// from the generator's current stream position. Callers wanting a
// reproducible bundle Reset first or use GenerateFullDataset.
func (g *Generator) FullDataset(opts Options) (*Dataset, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	o := opts.WithDefaults()
	r := g.rng

	ds := &Dataset{
		Workouts:    make(map[string]Workout, o.WorkoutDays),
		BowlingData: make(map[string]BowlingWeek, o.BowlingWeeks),
	}

	days, err := DateRange(o.StartDate, o.WorkoutDays+workoutExtraDays)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(days) && len(ds.Workouts) < o.WorkoutDays; i++ {
		if r.Chance(o.SkipRate) {
			continue
		}
		ds.Workouts[WorkoutKeyPrefix+days[i]] = g.Workout(days[i])
	}

	receiptDates, _ := DateRange(o.StartDate, receiptWindowDays)
	ds.Receipts = make([]Receipt, 0, o.ReceiptCount)
	for j := 0; j < o.ReceiptCount; j++ {
		rc := g.Receipt(prng.Pick(r, receiptDates), "")
		rc.ID += "_" + strconv.Itoa(j)
		ds.Receipts = append(ds.Receipts, rc)
	}

	ds.FlashData = g.FlashcardSet(o.FlashcardCount)

	nutDates, _ := DateRange(mustAddDays(o.StartDate, -nutritionLeadDays), o.NutritionDays+nutritionExtraDays)
	ds.Meals = []Meal{}
	for k, done := 0, 0; k < len(nutDates) && done < o.NutritionDays; k++ {
		if r.Chance(NutritionSkipRate) {
			continue
		}
		ds.Meals = append(ds.Meals, g.NutritionDay(nutDates[k])...)
		done++
	}

	ds.Trips = make([]Trip, 0, o.TripCount)
	for t := 0; t < o.TripCount; t++ {
		ds.Trips = append(ds.Trips, g.Trip())
	}

	start, _ := time.Parse(isoDate, o.StartDate)
	week := 1
	for b := 0; b < o.BowlingWeeks; b++ {
		id := WeekID(start.Year(), week)
		bw, err := g.BowlingWeek(id)
		if err != nil {
			return nil, err
		}
		ds.BowlingData[BowlingKeyPrefix+id] = bw
		week += r.IntRange(1, 2)
	}

	eventDates, _ := DateRange(o.StartDate, eventWindowDays)
	ds.Events = make([]CalendarEvent, 0, o.EventCount)
	for e := 0; e < o.EventCount; e++ {
		ds.Events = append(ds.Events, g.CalendarEvent(prng.Pick(r, eventDates)))
	}

	ds.GardenData = g.GardenDataset(o.PlantCount, o.StartDate)

	level := r.IntRange(3, 5)
	ds.Character = Character{
		Level:           level,
		TransformCount:  level - 1,
		ExerciseResetAt: mustAddDays(ReferenceDate, -r.IntRange(5, 20)),
	}

	return ds, nil
}

// TotalVolume sums Volume over every workout in the dataset.
func (ds *Dataset) TotalVolume() int {
	total := 0
	for _, w := range ds.Workouts {
		total += w.Volume()
	}
	return total
}
