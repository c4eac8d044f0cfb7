package check

import (
	"errors"
	"fmt"
)

// ErrOutsideDescribe is logged when It or a hook is registered while no
// suite is registering.
var ErrOutsideDescribe = errors.New("registered outside describe")

// AssertionError is the panic value raised by a failed assertion.
type AssertionError struct {
	Assertion string
	Message   string
	Expected  any
	Actual    any
	detail    string
}

func (e *AssertionError) Error() string {
	label := e.Message
	if label == "" {
		label = "check." + e.Assertion
	}
	return fmt.Sprintf("%s: %s", label, e.detail)
}
