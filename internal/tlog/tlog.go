package tlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"
)

const (
	bold  = "\033[1m"
	red   = "\033[1;31m"
	reset = "\033[0m"
)

// TestingPrinter is the subset of *testing.T errors are reported to.
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Logf(format string, a ...any)
	Error(a ...any)
	Errorf(format string, a ...any)
}

// Log logs error with its structured context.
func Log(t TestingPrinter, err error) {
	t.Helper()
	t.Log(render(err, bold))
}

// Error signals error with its structured context.
func Error(t TestingPrinter, err error) {
	t.Helper()
	t.Error(render(err, red))
}

// Check does nothing and returns false if error is nil.
// Signals error and returns true otherwise.
func Check(t TestingPrinter, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(render(err, red))
	return true
}

// Recover runs fn and returns what it panicked with as an error.
// Returns nil if fn returned normally.
func Recover(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if e, ok := r.(error); ok {
			err = e
			return
		}
		err = errors.Newf("panic: %v", r)
	}()

	fn()
	return nil
}

func render(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString(reset)
	b.WriteByte('\n')

	d := errors.GetContextDeliverer(err)
	if d == nil {
		return b.String()
	}

	var c errorContextConsumer
	d.Deliver(&c)

	var width int
	for _, v := range c.vars {
		if len(v.name) > width {
			width = len(v.name)
		}
	}

	for _, v := range c.vars {
		b.WriteString("    ")
		b.WriteString(bold)
		b.WriteString(v.name)
		b.WriteString(reset)
		b.WriteString(": ")
		b.WriteString(strings.Repeat(" ", width-len(v.name)))
		_, _ = fmt.Fprintln(&b, v.value)
	}

	return b.String()
}
