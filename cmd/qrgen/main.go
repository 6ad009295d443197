package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

func main() {
	code := run(os.Args[1:], os.Stdout, os.Stderr, term.IsTerminal(int(os.Stdout.Fd())))
	os.Exit(code)
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, stdoutIsTerminal bool) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	if err := generate(opts, stdout, stdoutIsTerminal); err != nil {
		fmt.Fprintln(stderr, "qrgen:", err)
		return 1
	}
	return 0
}
