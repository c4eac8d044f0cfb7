// Package check is a small describe/it test runner with panicking
// assertions. Suites register their tests lazily: each Describe callback
// runs once per Run, just before that suite's tests execute, and the
// collected tests are dropped afterwards so the next Run registers afresh.
//
// Tests run sequentially on the calling goroutine. A panic inside a test,
// whether an *AssertionError or anything else, fails that test only.
package check

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// Result is the outcome of one test.
type Result struct {
	Suite  string `json:"suite"`
	Test   string `json:"test"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Summary counts the outcomes of one Run.
type Summary struct {
	RunID  string `json:"runId"`
	Passed int    `json:"passed"`
	Failed int    `json:"failed"`
	Total  int    `json:"total"`
}

type test struct {
	name string
	fn   func()
}

type suite struct {
	name     string
	register func()
	tests    []test
	before   []func()
	after    []func()
}

// Framework holds registered suites and the results of the last Run.
type Framework struct {
	suites  []*suite
	current *suite
	results []Result
	log     zerolog.Logger
}

type Option func(*Framework)

func WithLogger(log zerolog.Logger) Option {
	return func(f *Framework) { f.log = log.With().Str("component", "check").Logger() }
}

func New(opts ...Option) *Framework {
	f := &Framework{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Describe declares a suite. register is called on every Run and should
// call It, BeforeEach and AfterEach.
func (f *Framework) Describe(name string, register func()) {
	f.suites = append(f.suites, &suite{name: name, register: register})
}

// It adds a test to the suite currently registering.
func (f *Framework) It(name string, fn func()) {
	if f.current == nil {
		f.log.Error().Err(ErrOutsideDescribe).Str("test", name).Msg("it() ignored")
		return
	}
	f.current.tests = append(f.current.tests, test{name: name, fn: fn})
}

// BeforeEach adds a fixture run before every test of the current suite.
func (f *Framework) BeforeEach(fn func()) {
	if f.current == nil {
		f.log.Error().Err(ErrOutsideDescribe).Msg("beforeEach() ignored")
		return
	}
	f.current.before = append(f.current.before, fn)
}

// AfterEach adds a teardown run after every test of the current suite, even
// when the test failed.
func (f *Framework) AfterEach(fn func()) {
	if f.current == nil {
		f.log.Error().Err(ErrOutsideDescribe).Msg("afterEach() ignored")
		return
	}
	f.current.after = append(f.current.after, fn)
}

// Run registers and executes every suite in declaration order.
func (f *Framework) Run() Summary {
	sum := Summary{RunID: uuid.NewString()}
	f.results = nil

	for _, s := range f.suites {
		f.registerSuite(s)
		for _, t := range s.tests {
			r := Result{Suite: s.name, Test: t.name, Status: StatusPass}
			if err := runTest(s, t); err != nil {
				r.Status = StatusFail
				r.Error = err.Error()
				sum.Failed++
				f.log.Error().Str("suite", s.name).Str("test", t.name).Msg(r.Error)
			} else {
				sum.Passed++
			}
			f.results = append(f.results, r)
		}
		s.tests, s.before, s.after = nil, nil, nil
	}

	sum.Total = sum.Passed + sum.Failed
	f.log.Info().
		Str("run_id", sum.RunID).
		Int("passed", sum.Passed).
		Int("failed", sum.Failed).
		Int("total", sum.Total).
		Msg("test run complete")
	return sum
}

// Results returns the per-test results of the last Run.
func (f *Framework) Results() []Result {
	return append([]Result(nil), f.results...)
}

func (f *Framework) registerSuite(s *suite) {
	f.current = s
	defer func() {
		f.current = nil
		if v := recover(); v != nil {
			f.log.Error().Str("suite", s.name).Err(asError(v)).Msg("error registering suite")
		}
	}()
	s.register()
}

func runTest(s *suite, t test) (err error) {
	defer func() {
		for _, fn := range s.after {
			if herr := call(fn); herr != nil && err == nil {
				err = herr
			}
		}
	}()
	for _, fn := range s.before {
		if err := call(fn); err != nil {
			return err
		}
	}
	return call(t.fn)
}

// call runs fn and converts a panic into an error.
func call(fn func()) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = asError(v)
		}
	}()
	fn()
	return nil
}

func asError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("%v", v)
}
