package check

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCollectsResults(t *testing.T) {
	f := New()
	f.Describe("math", func() {
		f.It("adds", func() { Equal(1+1, 2) })
		f.It("fails", func() { Equal(1+1, 3, "sum") })
		f.It("panics", func() { panic("boom") })
	})
	f.Describe("strings", func() {
		f.It("concatenates", func() { Equal("a"+"b", "ab") })
	})

	sum := f.Run()
	assert.Equal(t, 2, sum.Passed)
	assert.Equal(t, 2, sum.Failed)
	assert.Equal(t, 4, sum.Total)
	assert.NotEmpty(t, sum.RunID)

	res := f.Results()
	require.Len(t, res, 4)
	assert.Equal(t, Result{Suite: "math", Test: "adds", Status: StatusPass}, res[0])
	assert.Equal(t, StatusFail, res[1].Status)
	assert.Equal(t, "sum: expected 3 but got 2", res[1].Error)
	assert.Equal(t, "boom", res[2].Error)
	assert.Equal(t, "strings", res[3].Suite)
}

func TestRunReregistersEachTime(t *testing.T) {
	f := New()
	calls := 0
	f.Describe("s", func() {
		calls++
		f.It("t", func() {})
	})

	first := f.Run()
	second := f.Run()
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, first.Total)
	assert.Equal(t, 1, second.Total)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRegistrationPanicDoesNotAbortRun(t *testing.T) {
	f := New()
	f.Describe("broken", func() {
		f.It("before the panic", func() {})
		panic("bad suite")
	})
	f.Describe("fine", func() {
		f.It("runs", func() {})
	})

	sum := f.Run()
	assert.Equal(t, 2, sum.Passed)
	assert.Zero(t, sum.Failed)
}

func TestItOutsideDescribeIsLogged(t *testing.T) {
	var buf bytes.Buffer
	f := New(WithLogger(zerolog.New(&buf)))
	f.It("stray", func() {})
	f.BeforeEach(func() {})
	f.AfterEach(func() {})

	assert.Zero(t, f.Run().Total)
	assert.Contains(t, buf.String(), ErrOutsideDescribe.Error())
	assert.Contains(t, buf.String(), `"component":"check"`)
}

func TestHooksWrapEveryTest(t *testing.T) {
	f := New()
	var log []string
	f.Describe("fixtures", func() {
		f.BeforeEach(func() { log = append(log, "before") })
		f.AfterEach(func() { log = append(log, "after") })
		f.It("one", func() { log = append(log, "one") })
		f.It("two", func() { log = append(log, "two"); OK(false) })
	})

	sum := f.Run()
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, []string{"before", "one", "after", "before", "two", "after"}, log)
}

func TestFailingHooks(t *testing.T) {
	f := New()
	ran := false
	f.Describe("before fails", func() {
		f.BeforeEach(func() { panic(errors.New("setup")) })
		f.It("skipped body", func() { ran = true })
	})
	f.Describe("after fails", func() {
		f.AfterEach(func() { panic("teardown") })
		f.It("body passes", func() {})
	})

	sum := f.Run()
	assert.False(t, ran)
	assert.Equal(t, 2, sum.Failed)
	res := f.Results()
	assert.Equal(t, "setup", res[0].Error)
	assert.Equal(t, "teardown", res[1].Error)
}

func failure(fn func()) *AssertionError {
	var ae *AssertionError
	err := call(fn)
	if err == nil || !errors.As(err, &ae) {
		return nil
	}
	return ae
}

func TestAssertionsPass(t *testing.T) {
	type doc struct {
		ID   string `json:"id"`
		Date string `json:"date"`
	}
	passing := []func(){
		func() { Equal(3, 3.0) },
		func() { Equal(int32(7), uint8(7)) },
		func() { Equal("x", "x") },
		func() { Equal(nil, nil) },
		func() { DeepEqual([]int{1, 2}, []float64{1, 2}) },
		func() { DeepEqual(map[string]int{"b": 2, "a": 1}, map[string]int{"a": 1, "b": 2}) },
		func() { OK(1) },
		func() { OK("s") },
		func() { OK([]int{}) },
		func() { OK(struct{}{}) },
		func() { Throws(func() { panic("x") }) },
		func() { ArrayLength([]string{"a", "b"}, 2) },
		func() { ArrayLength([3]int{}, 3) },
		func() { TypeOf(1.5, "number") },
		func() { TypeOf("s", "string") },
		func() { TypeOf(false, "boolean") },
		func() { TypeOf(map[string]any{}, "object") },
		func() { TypeOf(func() {}, "function") },
		func() { HasKeys(map[string]any{"a": 1, "b": nil}, []string{"a", "b"}) },
		func() { HasKeys(doc{}, []string{"id", "date"}) },
		func() { GreaterThan(2, 1.5) },
		func() { GreaterThan("b", "a") },
		func() { Includes([]string{"a", "b"}, "b") },
		func() { Includes([]any{1.0, "x"}, 1) },
		func() { CloseTo(0.1+0.2, 0.3, 1e-9) },
	}
	for i, fn := range passing {
		assert.NoError(t, call(fn), "case %d", i)
	}
}

func TestAssertionsFail(t *testing.T) {
	tests := []struct {
		fn   func()
		want string
	}{
		{func() { Equal(1, "1") }, `check.Equal: expected "1" but got 1`},
		{func() { Equal([]int{1}, []int{1}) }, `check.Equal: expected [1] but got [1]`},
		{func() { DeepEqual([]int{1}, []int{2}, "lists") }, "lists: objects not deep-equal.\nActual:   [1]\nExpected: [2]"},
		{func() { OK(0) }, "check.OK: expected truthy but got 0"},
		{func() { OK(math.NaN()) }, "check.OK: expected truthy but got NaN"},
		{func() { OK("") }, `check.OK: expected truthy but got ""`},
		{func() { OK(nil) }, "check.OK: expected truthy but got null"},
		{func() { Throws(func() {}) }, "check.Throws: expected function to throw"},
		{func() { ArrayLength("abc", 3) }, "check.ArrayLength: expected array but got string"},
		{func() { ArrayLength([]int{1}, 2) }, "check.ArrayLength: expected length 2 but got 1"},
		{func() { TypeOf(1, "string") }, "check.TypeOf: expected typeof string but got number"},
		{func() { HasKeys(5, []string{"a"}) }, "check.HasKeys: expected object but got number"},
		{func() { HasKeys(map[string]int{"a": 1}, []string{"a", "b", "c"}) }, "check.HasKeys: missing keys: b, c"},
		{func() { GreaterThan(1, 1) }, "check.GreaterThan: expected 1 > 1"},
		{func() { Includes([]int{1, 2}, 3) }, "check.Includes: 3 not found in array"},
		{func() { CloseTo(1, 2, 0.5) }, "check.CloseTo: expected 1 to be within 0.5 of 2"},
	}
	for _, tt := range tests {
		ae := failure(tt.fn)
		require.NotNil(t, ae, tt.want)
		assert.Equal(t, tt.want, ae.Error())
	}
}

func TestAssertionErrorCarriesValues(t *testing.T) {
	ae := failure(func() { Equal(2, 3) })
	require.NotNil(t, ae)
	assert.Equal(t, "Equal", ae.Assertion)
	assert.Equal(t, 3, ae.Expected)
	assert.Equal(t, 2, ae.Actual)
}

func TestReport(t *testing.T) {
	results := []Result{
		{Suite: "a", Test: "one", Status: StatusPass},
		{Suite: "a", Test: "two [x]", Status: StatusFail, Error: "nope"},
		{Suite: "b", Test: "three", Status: StatusPass},
	}
	sum := Summary{RunID: "r1", Passed: 2, Failed: 1, Total: 3}

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, results, sum, false))
	assert.Equal(t, "a\n  PASS one\n  FAIL two [x]\n      nope\nb\n  PASS three\nFAILED  2 passed, 1 failed, 3 total (run r1)\n", buf.String())

	buf.Reset()
	require.NoError(t, Report(&buf, results[:1], Summary{RunID: "r2", Passed: 1, Total: 1}, true))
	assert.Contains(t, buf.String(), "\033[32mPASS")
}
