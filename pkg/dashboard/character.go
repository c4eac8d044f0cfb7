package dashboard

import "math"

// DefaultResetAt is used when no valid exercise reset date is stored.
const DefaultResetAt = "1900-01-01"

// Level reads a stored character level: a positive number floored, else 1.
func Level(raw string, ok bool) int {
	if !ok {
		return 1
	}
	v, valid := parseNumber(raw)
	if !valid || v <= 0 || math.IsInf(v, 0) {
		return 1
	}
	return int(math.Floor(v))
}

// TransformCount reads a stored transform count: a non-negative number
// floored, else 0.
func TransformCount(raw string, ok bool) int {
	if !ok {
		return 0
	}
	v, valid := parseNumber(raw)
	if !valid || v < 0 || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Floor(v))
}

// ExerciseResetAt returns raw when it is a YYYY-MM-DD date, else
// DefaultResetAt.
func ExerciseResetAt(raw string, ok bool) string {
	if ok && ymdRe.MatchString(raw) {
		return raw
	}
	return DefaultResetAt
}
