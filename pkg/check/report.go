package check

import (
	"fmt"
	"io"

	"github.com/mitchellh/colorstring"
)

// Report writes one line per result and a closing summary line. color
// disables ANSI colouring when false.
func Report(w io.Writer, results []Result, sum Summary, color bool) error {
	c := colorstring.Colorize{Colors: colorstring.DefaultColors, Disable: !color, Reset: true}

	suite := ""
	for _, r := range results {
		if r.Suite != suite {
			suite = r.Suite
			if _, err := fmt.Fprintln(w, suite); err != nil {
				return err
			}
		}
		var line string
		if r.Status == StatusPass {
			line = c.Color("  [green]PASS[reset] ") + r.Test
		} else {
			line = c.Color("  [red]FAIL[reset] ") + r.Test + "\n      " + r.Error
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	status := "[green]OK"
	if sum.Failed > 0 {
		status = "[red]FAILED"
	}
	_, err := fmt.Fprintf(w, "%s  %d passed, %d failed, %d total (run %s)\n",
		c.Color(status), sum.Passed, sum.Failed, sum.Total, sum.RunID)
	return err
}
