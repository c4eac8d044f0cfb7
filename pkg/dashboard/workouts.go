package dashboard

import (
	"math"
	"sort"

	"pkg.jsn.cam/levelup/pkg/seed"
)

type Set struct {
	Weight float64 `json:"weight"`
	Reps   float64 `json:"reps"`
	Done   bool    `json:"done"`
}

type Exercise struct {
	Name     string `json:"name"`
	BodyPart string `json:"bodyPart"`
	Sets     []Set  `json:"sets"`
}

// Day is a workout document after normalization.
type Day struct {
	Date      string     `json:"date"`
	Exercises []Exercise `json:"exercises"`
}

// Totals are the per-day counters shown on the exercise card.
type Totals struct {
	Sets   int
	Volume float64
	Moves  int
}

// NormalizeDay reads a loosely shaped workout document. It accepts the
// alternate field names older entries used (exercise, muscle/group,
// completed) and reports false when there is no date.
func NormalizeDay(raw map[string]any) (Day, bool) {
	if raw == nil || !truthy(raw["date"]) {
		return Day{}, false
	}
	return Day{Date: text(raw["date"]), Exercises: normalizeExercises(raw)}, true
}

func normalizeExercises(raw map[string]any) []Exercise {
	out := []Exercise{}
	exercises, _ := array(raw["exercises"])
	for _, e := range exercises {
		ex, _ := e.(map[string]any)
		if ex == nil {
			ex = map[string]any{}
		}
		norm := Exercise{
			Name:     text(firstTruthy("Exercise", ex["name"], ex["exercise"])),
			BodyPart: text(firstTruthy("Other", ex["bodyPart"], ex["muscle"], ex["group"])),
			Sets:     []Set{},
		}
		sets, _ := array(ex["sets"])
		for _, s := range sets {
			set, _ := s.(map[string]any)
			if set == nil {
				set = map[string]any{}
			}
			norm.Sets = append(norm.Sets, Set{
				Weight: number(set["weight"]),
				Reps:   number(set["reps"]),
				Done:   truthy(set["done"]) || truthy(set["completed"]),
			})
		}
		out = append(out, norm)
	}
	return out
}

// FromWorkout converts a generated workout to its normalized form.
func FromWorkout(w seed.Workout) Day {
	day, _ := NormalizeDay(Object(w))
	return day
}

// DocumentVolume is the volume of a raw workout document whether or not it
// carries a date.
func DocumentVolume(raw map[string]any) float64 {
	return DayTotals(Day{Exercises: normalizeExercises(raw)}).Volume
}

// DayTotals counts exercises with at least one set (moves), sets with any
// weight or reps, and volume over sets where both are positive.
func DayTotals(day Day) Totals {
	var t Totals
	for _, ex := range day.Exercises {
		if len(ex.Sets) > 0 {
			t.Moves++
		}
		for _, s := range ex.Sets {
			if s.Weight > 0 || s.Reps > 0 {
				t.Sets++
			}
			if s.Weight > 0 && s.Reps > 0 {
				t.Volume += s.Weight * s.Reps
			}
		}
	}
	return t
}

// Logged reports whether a day counts as a workout on the dashboard.
func Logged(day Day) bool {
	t := DayTotals(day)
	return len(day.Exercises) > 0 || t.Sets > 0 || t.Volume > 0
}

// SortDays orders days by date, oldest first.
func SortDays(days []Day) {
	sort.SliceStable(days, func(i, j int) bool { return days[i].Date < days[j].Date })
}

// VolumeSince sums volume over days strictly after isoDate, rounded.
func VolumeSince(days []Day, isoDate string) int {
	total := 0.0
	for _, d := range days {
		if d.Date > isoDate {
			total += DayTotals(d).Volume
		}
	}
	return int(math.Floor(total + 0.5))
}
