package dashboard

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Documents in the store are written by several modules and by hand, so the
// read path decodes them loosely into map[string]any and coerces fields the
// way the dashboard always has: numbers from numeric strings, zero for
// anything unparsable, and the first non-empty value among alternate names.

// number coerces v to a finite float64, returning 0 for anything else.
func number(v any) float64 {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case int:
		f = float64(x)
	case json.Number:
		f, _ = x.Float64()
	case string:
		f, _ = parseNumber(x)
	case bool:
		if x {
			f = 1
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// parseNumber parses s leniently: surrounding space is ignored and an empty
// string is zero.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// text renders v as a string. nil renders as "".
func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// truthy mirrors boolean coercion of a decoded JSON value.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case string:
		return x != ""
	default:
		return true
	}
}

// firstTruthy returns the first truthy value among vs, or fallback.
func firstTruthy(fallback any, vs ...any) any {
	for _, v := range vs {
		if truthy(v) {
			return v
		}
	}
	return fallback
}

// firstPresent returns the first non-nil value among vs, or fallback.
func firstPresent(fallback any, vs ...any) any {
	for _, v := range vs {
		if v != nil {
			return v
		}
	}
	return fallback
}

// Objects converts typed documents to the loose form the read path works on.
func Objects(v any) []map[string]any {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out []map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

// Object converts a single typed document to its loose form.
func Object(v any) map[string]any {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

func array(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}
