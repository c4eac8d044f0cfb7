package seed

import (
	"fmt"
	"sort"
	"time"
)

// Family is a named single-entity generator.
type Family struct {
	Name        string
	Description string
	// Generate produces one document (or one bundle) anchored on date.
	Generate func(g *Generator, date string) (any, error)
}

// Registry maps family names to their generators.
var Registry = map[string]Family{
	"workout": {
		Name:        "workout",
		Description: "one training day stored under powerUp:<date>",
		Generate: func(g *Generator, date string) (any, error) {
			return g.Workout(date), nil
		},
	},
	"receipt": {
		Name:        "receipt",
		Description: "a grocery or cafe receipt from a random store",
		Generate: func(g *Generator, date string) (any, error) {
			return g.Receipt(date, ""), nil
		},
	},
	"flashcards": {
		Name:        "flashcards",
		Description: "a flashcard bundle of the default size",
		Generate: func(g *Generator, _ string) (any, error) {
			return g.FlashcardSet(0), nil
		},
	},
	"meal": {
		Name:        "meal",
		Description: "a single lunch with 2-5 ingredients",
		Generate: func(g *Generator, date string) (any, error) {
			return g.Meal(date, "Lunch"), nil
		},
	},
	"nutrition-day": {
		Name:        "nutrition-day",
		Description: "3-4 meals sharing one date",
		Generate: func(g *Generator, date string) (any, error) {
			return g.NutritionDay(date), nil
		},
	},
	"trip": {
		Name:        "trip",
		Description: "a multi-destination trip after the reference date",
		Generate: func(g *Generator, _ string) (any, error) {
			return g.Trip(), nil
		},
	},
	"bowling-week": {
		Name:        "bowling-week",
		Description: "three games for the ISO week containing date",
		Generate: func(g *Generator, date string) (any, error) {
			t, err := time.Parse(isoDate, date)
			if err != nil {
				return nil, fmt.Errorf("parse date %q: %w", date, err)
			}
			year, week := t.ISOWeek()
			return g.BowlingWeek(WeekID(year, week))
		},
	},
	"event": {
		Name:        "event",
		Description: "a calendar event, with XP for workout and study",
		Generate: func(g *Generator, date string) (any, error) {
			return g.CalendarEvent(date), nil
		},
	},
	"plant": {
		Name:        "plant",
		Description: "a garden plant seeded on date at a random stage",
		Generate: func(g *Generator, date string) (any, error) {
			return g.Plant(date), nil
		},
	},
	"garden": {
		Name:        "garden",
		Description: "a garden bundle of plants, activities and total XP",
		Generate: func(g *Generator, date string) (any, error) {
			return g.GardenDataset(0, date), nil
		},
	},
}

// Get returns a family by name.
func Get(name string) (Family, error) {
	f, ok := Registry[name]
	if !ok {
		return Family{}, fmt.Errorf("%w: %s", ErrUnknownFamily, name)
	}
	return f, nil
}

// List returns all family names in sorted order.
func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GenerateN runs family n times against g on date. Dates are validated up
// front because several generators do date arithmetic on them.
func GenerateN(g *Generator, family string, date string, n int) ([]any, error) {
	f, err := Get(family)
	if err != nil {
		return nil, err
	}
	if !ValidDate(date) {
		return nil, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidOptions, date)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: count must not be negative, got %d", ErrInvalidOptions, n)
	}
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		doc, err := f.Generate(g, date)
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", family, err)
		}
		out = append(out, doc)
	}
	return out, nil
}
