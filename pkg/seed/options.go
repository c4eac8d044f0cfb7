package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults for Options fields left at their zero value.
const (
	DefaultWorkoutDays   = 30
	DefaultReceiptCount  = 18
	DefaultNutritionDays = 20
	DefaultTripCount     = 2
	DefaultBowlingWeeks  = 8
	DefaultEventCount    = 10
	DefaultSkipRate      = 0.3
	DefaultStartDate     = "2026-01-15"
	NutritionSkipRate    = 0.2
	receiptWindowDays    = 60
	eventWindowDays      = 45
	workoutExtraDays     = 10
	nutritionLeadDays    = 5
	nutritionExtraDays   = 10
)

// Options controls the volume and date range of a full dataset. A zero value
// in any field selects that field's default, so a skip rate of exactly 0 is
// not expressible.
type Options struct {
	WorkoutDays    int     `json:"workoutDays,omitempty" yaml:"workoutDays"`
	ReceiptCount   int     `json:"receiptCount,omitempty" yaml:"receiptCount"`
	FlashcardCount int     `json:"flashcardCount,omitempty" yaml:"flashcardCount"`
	NutritionDays  int     `json:"nutritionDays,omitempty" yaml:"nutritionDays"`
	TripCount      int     `json:"tripCount,omitempty" yaml:"tripCount"`
	BowlingWeeks   int     `json:"bowlingWeeks,omitempty" yaml:"bowlingWeeks"`
	EventCount     int     `json:"eventCount,omitempty" yaml:"eventCount"`
	PlantCount     int     `json:"plantCount,omitempty" yaml:"plantCount"`
	SkipRate       float64 `json:"skipRate,omitempty" yaml:"skipRate"`
	StartDate      string  `json:"startDate,omitempty" yaml:"startDate"`
}

// WithDefaults returns a copy with every zero field replaced by its default.
func (o Options) WithDefaults() Options {
	setInt := func(v *int, def int) {
		if *v == 0 {
			*v = def
		}
	}
	setInt(&o.WorkoutDays, DefaultWorkoutDays)
	setInt(&o.ReceiptCount, DefaultReceiptCount)
	setInt(&o.FlashcardCount, DefaultFlashcardCount)
	setInt(&o.NutritionDays, DefaultNutritionDays)
	setInt(&o.TripCount, DefaultTripCount)
	setInt(&o.BowlingWeeks, DefaultBowlingWeeks)
	setInt(&o.EventCount, DefaultEventCount)
	setInt(&o.PlantCount, DefaultPlantCount)
	if o.SkipRate == 0 {
		o.SkipRate = DefaultSkipRate
	}
	if o.StartDate == "" {
		o.StartDate = DefaultStartDate
	}
	return o
}

// Validate rejects negative counts, skip rates outside [0, 1] and start dates
// that are not YYYY-MM-DD.
func (o Options) Validate() error {
	counts := []struct {
		name string
		v    int
	}{
		{"workoutDays", o.WorkoutDays},
		{"receiptCount", o.ReceiptCount},
		{"flashcardCount", o.FlashcardCount},
		{"nutritionDays", o.NutritionDays},
		{"tripCount", o.TripCount},
		{"bowlingWeeks", o.BowlingWeeks},
		{"eventCount", o.EventCount},
		{"plantCount", o.PlantCount},
	}
	for _, c := range counts {
		if c.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidOptions, c.name, c.v)
		}
	}
	if o.SkipRate < 0 || o.SkipRate > 1 {
		return fmt.Errorf("%w: skipRate must be within [0, 1], got %v", ErrInvalidOptions, o.SkipRate)
	}
	if o.StartDate != "" && !ValidDate(o.StartDate) {
		return fmt.Errorf("%w: startDate %q is not YYYY-MM-DD", ErrInvalidOptions, o.StartDate)
	}
	return nil
}

// LoadOptions reads Options from a YAML file. Unknown keys are ignored.
func LoadOptions(path string) (Options, error) {
	var o Options
	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("read options: %w", err)
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("parse options %s: %w", path, err)
	}
	return o, nil
}
