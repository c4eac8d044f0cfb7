package check

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// Assertions panic with *AssertionError on failure. An optional msg
// replaces the assertion name in the error text.

func fail(assertion string, msg []string, expected, actual any, format string, args ...any) {
	panic(&AssertionError{
		Assertion: assertion,
		Message:   strings.Join(msg, " "),
		Expected:  expected,
		Actual:    actual,
		detail:    fmt.Sprintf(format, args...),
	})
}

func show(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// Equal checks strict equality. Numbers of different Go types compare by
// value; other values must have the same type and be ==.
func Equal(actual, expected any, msg ...string) {
	if !strictEqual(actual, expected) {
		fail("Equal", msg, expected, actual, "expected %s but got %s", show(expected), show(actual))
	}
}

// DeepEqual checks that both values serialize to the same JSON.
func DeepEqual(actual, expected any, msg ...string) {
	a, b := show(actual), show(expected)
	if a != b {
		fail("DeepEqual", msg, expected, actual, "objects not deep-equal.\nActual:   %s\nExpected: %s", truncate(a, 200), truncate(b, 200))
	}
}

// OK checks that val is truthy: not nil, false, zero, NaN or "".
func OK(val any, msg ...string) {
	if !truthy(val) {
		fail("OK", msg, true, val, "expected truthy but got %s", show(val))
	}
}

// Throws checks that fn panics.
func Throws(fn func(), msg ...string) {
	if call(fn) == nil {
		fail("Throws", msg, "panic", nil, "expected function to throw")
	}
}

// ArrayLength checks that arr is a slice or array of length n.
func ArrayLength(arr any, n int, msg ...string) {
	v := reflect.ValueOf(arr)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		fail("ArrayLength", msg, n, arr, "expected array but got %s", TypeName(arr))
	}
	if v.Len() != n {
		fail("ArrayLength", msg, n, v.Len(), "expected length %d but got %d", n, v.Len())
	}
}

// TypeOf checks TypeName(val) against typ.
func TypeOf(val any, typ string, msg ...string) {
	if got := TypeName(val); got != typ {
		fail("TypeOf", msg, typ, got, "expected typeof %s but got %s", typ, got)
	}
}

// HasKeys checks that obj encodes to a JSON object holding every key.
func HasKeys(obj any, keys []string, msg ...string) {
	var m map[string]json.RawMessage
	b, err := json.Marshal(obj)
	if obj == nil || err != nil || json.Unmarshal(b, &m) != nil || m == nil {
		fail("HasKeys", msg, keys, obj, "expected object but got %s", TypeName(obj))
	}
	var missing []string
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		fail("HasKeys", msg, keys, obj, "missing keys: %s", strings.Join(missing, ", "))
	}
}

// GreaterThan checks actual > expected for numbers or strings.
func GreaterThan(actual, expected any, msg ...string) {
	ok := false
	if a, aok := toFloat(actual); aok {
		if e, eok := toFloat(expected); eok {
			ok = a > e
		}
	} else if a, aok := actual.(string); aok {
		if e, eok := expected.(string); eok {
			ok = a > e
		}
	}
	if !ok {
		fail("GreaterThan", msg, expected, actual, "expected %v > %v", actual, expected)
	}
}

// Includes checks that arr is a slice or array holding an element strictly
// equal to val.
func Includes(arr, val any, msg ...string) {
	v := reflect.ValueOf(arr)
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		for i := 0; i < v.Len(); i++ {
			if strictEqual(v.Index(i).Interface(), val) {
				return
			}
		}
	}
	fail("Includes", msg, val, arr, "%s not found in array", show(val))
}

// CloseTo checks |actual-expected| <= delta.
func CloseTo(actual, expected, delta float64, msg ...string) {
	if math.Abs(actual-expected) > delta || math.IsNaN(actual) {
		fail("CloseTo", msg, expected, actual, "expected %v to be within %v of %v", actual, delta, expected)
	}
}

// TypeName names the kind of v the way a JSON-minded reader would: number,
// string, boolean, function or object.
func TypeName(v any) string {
	if v == nil {
		return "object"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Func:
		return "function"
	default:
		return "object"
	}
}

func toFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func strictEqual(a, b any) bool {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		return ok && af == bf
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.TypeOf(a).Comparable() {
		return false
	}
	return a == b
}

func truthy(v any) bool {
	if v == nil {
		return false
	}
	if f, ok := toFloat(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}
