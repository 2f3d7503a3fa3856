package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

var (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	strike = "\033[9m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

var (
	forceColor   bool
	disableColor bool
)

// Stdout and Stderr are where OK, Fail and Panel write. Tests swap them.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

func isTTY() bool {
	f, ok := Stdout.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// C wraps s in color when stdout is a terminal (or color is forced).
func C(color, s string) string {
	if disableColor || color == "" {
		return s
	}
	if forceColor || isTTY() {
		return color + s + reset
	}
	return s
}

func OK(msg string)   { fmt.Fprintln(Stdout, C(fgGreen, symCheck+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(Stderr, C(fgRed, symCross+" "+msg)) }

// Hint prints a muted follow-up line under a failure.
func Hint(msg string) { fmt.Fprintln(Stderr, C(fgGray, msg)) }
