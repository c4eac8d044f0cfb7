// Command levelup generates deterministic sample data for the LevelUp
// dashboard, injects it into a local store and checks it with the built-in
// suites.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
