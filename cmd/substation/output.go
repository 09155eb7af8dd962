package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

func logOutput() io.Writer {
	return os.Stderr
}

// stdoutIsTerminal reports whether stdout is attached to a terminal.
// Table rendering is reserved for interactive use; pipes get plain
// tab-separated rows.
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
