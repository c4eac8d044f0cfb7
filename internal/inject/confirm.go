package inject

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConfirmFunc gates a destructive operation. It returns true to proceed.
type ConfirmFunc func(prompt string) bool

// AlwaysConfirm proceeds without asking.
func AlwaysConfirm(string) bool { return true }

// NeverConfirm declines every prompt. It is the injector's default.
func NeverConfirm(string) bool { return false }

// PromptConfirm asks on out and reads a y/yes answer from in. Anything else,
// including EOF, declines.
func PromptConfirm(in io.Reader, out io.Writer) ConfirmFunc {
	sc := bufio.NewScanner(in)
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
		if !sc.Scan() {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(sc.Text())) {
		case "y", "yes":
			return true
		}
		return false
	}
}
