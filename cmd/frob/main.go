// Command frob runs the dispatch examples and lets you frob variants by name.
//
// Running frob with no arguments asserts every example and exits non-zero
// with the first mismatch on stderr if any check fails.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	exitSuccess     = 0
	exitFailure     = 1
	exitConfigError = 2
)

// run executes the command line and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, "frob:", err)

		var cfgErr configError
		if errors.As(err, &cfgErr) {
			return exitConfigError
		}
		return exitFailure
	}
	return exitSuccess
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
