// Package keyspace names every store key the app owns. A key that is neither
// listed in KnownKeys nor starts with one of Prefixes is foreign: the
// injector never writes, reads or removes it.
package keyspace

import (
	"regexp"
	"slices"
	"strings"

	"pkg.jsn.cam/levelup/pkg/storage"
)

// Singular keys.
const (
	CharacterLevel  = "levelUp:characterLevel"
	TransformCount  = "levelUp:transformCount"
	ExerciseResetAt = "levelUp:exerciseResetAt"

	Receipts          = "finances:receipts"
	FinanceLoaded     = "finances:dataLoaded"
	FinanceVersion    = "finances:dataVersion"
	FinanceSeedTag    = "seed"
	FinanceLoadedFlag = "true"

	Flashcards = "levelupFlashData"

	Meals            = "nutrition:meals"
	NutritionTargets = "nutrition:targets"
	NutritionRecipes = "nutrition:recipes"

	Events = "calendar:events"
	Trips  = "travel:trips"

	GardenPlants     = "garden:plants"
	GardenActivities = "garden:activities"
	GardenTotalXP    = "garden:totalXp"
)

// Prefixed key families.
const (
	WorkoutPrefix = "powerUp:"
	BowlingPrefix = "bowling:week:"
)

// KnownKeys lists every singular app key.
var KnownKeys = []string{
	CharacterLevel,
	TransformCount,
	ExerciseResetAt,
	Receipts,
	FinanceLoaded,
	FinanceVersion,
	Flashcards,
	Meals,
	NutritionTargets,
	NutritionRecipes,
	Events,
	Trips,
	GardenPlants,
	GardenActivities,
	GardenTotalXP,
}

// Prefixes lists the per-document key families.
var Prefixes = []string{WorkoutPrefix, BowlingPrefix}

var workoutKeyRe = regexp.MustCompile(`^powerUp:\d{4}-\d{2}-\d{2}$`)

// IsAppKey reports whether key belongs to the app.
func IsAppKey(key string) bool {
	if slices.Contains(KnownKeys, key) {
		return true
	}
	for _, p := range Prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

// IsWorkoutKey reports whether key is a dated workout key. Other keys under
// the workout prefix are still app keys but are not read as workouts.
func IsWorkoutKey(key string) bool {
	return workoutKeyRe.MatchString(key)
}

// IsBowlingKey reports whether key holds a bowling week.
func IsBowlingKey(key string) bool {
	return strings.HasPrefix(key, BowlingPrefix)
}

func WorkoutKey(date string) string { return WorkoutPrefix + date }

func BowlingKey(weekID string) string { return BowlingPrefix + weekID }

// AppKeys returns the app keys currently present in kv, in key order.
func AppKeys(kv storage.KeyValue) ([]string, error) {
	keys, err := kv.Keys()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if IsAppKey(k) {
			out = append(out, k)
		}
	}
	return out, nil
}

// Filter returns the keys in kv accepted by match, in key order.
func Filter(kv storage.KeyValue, match func(string) bool) ([]string, error) {
	keys, err := kv.Keys()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if match(k) {
			out = append(out, k)
		}
	}
	return out, nil
}
