// Package console handles user-facing output, separate from logging.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
)

// Console writes progress messages to w, with color when w is a terminal.
type Console struct {
	w     io.Writer
	color bool
}

// New returns a console writing to stdout. Color is enabled only when
// stdout is a real terminal, so piped output stays clean.
func New() *Console {
	return &Console{
		w:     os.Stdout,
		color: isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// NewWriter returns a console writing to w with color disabled. Intended
// for tests and non-terminal callers.
func NewWriter(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.w, format+"\n", args...)
}

func (c *Console) Successf(format string, args ...interface{}) {
	c.colored(aurora.Green, format, args...)
}

func (c *Console) Noticef(format string, args ...interface{}) {
	c.colored(aurora.Yellow, format, args...)
}

func (c *Console) Warnf(format string, args ...interface{}) {
	c.colored(aurora.Red, format, args...)
}

func (c *Console) colored(color func(interface{}) aurora.Value, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if c.color {
		msg = color(msg).String()
	}
	fmt.Fprintln(c.w, msg)
}
