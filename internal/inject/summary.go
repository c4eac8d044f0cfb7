package inject

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"

	"pkg.jsn.cam/levelup/pkg/dashboard"
	"pkg.jsn.cam/levelup/pkg/keyspace"
)

// Summary is a read-only rollup of what the store holds.
type Summary struct {
	Workouts       int
	WorkoutVolume  float64
	Receipts       int
	ReceiptTotal   float64
	Flashcards     int
	Mastered       int
	Meals          int
	MealDays       int
	Trips          int
	Bowling        dashboard.BowlingStats
	Events         int
	Plants         int
	GardenXP       float64
	Level          string
	TransformCount string
}

// Row is one labelled line of a summary table.
type Row struct {
	Name  string
	Value string
}

func (s Summary) Rows() []Row {
	return []Row{
		{"Workouts", fmt.Sprintf("%d days, %s total volume", s.Workouts, humanize.Commaf(s.WorkoutVolume))},
		{"Receipts", fmt.Sprintf("%d receipts, $%.2f total", s.Receipts, s.ReceiptTotal)},
		{"Flashcards", fmt.Sprintf("%d cards, %d mastered", s.Flashcards, s.Mastered)},
		{"Meals", fmt.Sprintf("%d meals across %d days", s.Meals, s.MealDays)},
		{"Trips", fmt.Sprintf("%d trips", s.Trips)},
		{"Bowling", fmt.Sprintf("%d weeks, %d games, avg %d", s.Bowling.Weeks, s.Bowling.Games, s.Bowling.Average)},
		{"Events", fmt.Sprintf("%d events", s.Events)},
		{"Garden", fmt.Sprintf("%d plants, %s XP", s.Plants, humanize.Commaf(s.GardenXP))},
		{"Character", fmt.Sprintf("Level %s, %s transforms", s.Level, s.TransformCount)},
	}
}

// Summary scans the store. Unparsable values count as empty.
func (i *Injector) Summary() (Summary, error) {
	var s Summary
	r := dashboard.NewReader(i.kv, i.log)

	workoutKeys, err := keyspace.Filter(i.kv, keyspace.IsWorkoutKey)
	if err != nil {
		return s, err
	}
	s.Workouts = len(workoutKeys)
	for _, k := range workoutKeys {
		doc, err := r.Object(k)
		if err != nil {
			return s, err
		}
		s.WorkoutVolume += dashboard.DocumentVolume(doc)
	}

	receipts, err := r.Array(keyspace.Receipts)
	if err != nil {
		return s, err
	}
	s.Receipts = len(receipts)
	s.ReceiptTotal = dashboard.ReceiptTotal(receipts)

	cards, err := r.Flashcards()
	if err != nil {
		return s, err
	}
	s.Flashcards = len(cards)
	s.Mastered = dashboard.Mastered(cards)

	meals, err := r.Array(keyspace.Meals)
	if err != nil {
		return s, err
	}
	s.Meals = len(meals)
	s.MealDays = dashboard.MealDays(meals)

	trips, err := r.Array(keyspace.Trips)
	if err != nil {
		return s, err
	}
	s.Trips = len(trips)

	weeks, err := r.BowlingWeeks()
	if err != nil {
		return s, err
	}
	s.Bowling = dashboard.Bowling(weeks)

	events, err := r.Array(keyspace.Events)
	if err != nil {
		return s, err
	}
	s.Events = len(events)

	plants, err := r.Array(keyspace.GardenPlants)
	if err != nil {
		return s, err
	}
	s.Plants = len(plants)
	xp, ok, err := i.kv.Get(keyspace.GardenTotalXP)
	if err != nil {
		return s, err
	}
	if ok {
		s.GardenXP, _ = strconv.ParseFloat(xp, 64)
	}

	if s.Level, err = i.stringOr(keyspace.CharacterLevel, "none"); err != nil {
		return s, err
	}
	if s.TransformCount, err = i.stringOr(keyspace.TransformCount, "0"); err != nil {
		return s, err
	}
	return s, nil
}

func (i *Injector) stringOr(key, fallback string) (string, error) {
	v, ok, err := i.kv.Get(key)
	if err != nil {
		return "", err
	}
	if !ok || v == "" {
		return fallback, nil
	}
	return v, nil
}
