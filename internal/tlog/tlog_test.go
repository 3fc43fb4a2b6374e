package tlog_test

import (
	stderrs "errors"
	"strings"
	"testing"

	"github.com/sirkon/errors"
	"github.com/sirkon/rcdeque/internal/tlog"
)

type recorder struct {
	logs   []string
	errors []string
}

func (r *recorder) Helper() {}
func (r *recorder) Log(a ...any) { r.logs = append(r.logs, a[0].(string)) }
func (r *recorder) Logf(format string, a ...any) {}
func (r *recorder) Error(a ...any) { r.errors = append(r.errors, a[0].(string)) }
func (r *recorder) Errorf(format string, a ...any) {}

func TestRender(t *testing.T) {
	t.Run("std-error", func(t *testing.T) {
		var r recorder
		tlog.Log(&r, stderrs.New("plain"))
		if len(r.logs) != 1 || !strings.Contains(r.logs[0], "plain") {
			t.Errorf("unexpected log output %q", r.logs)
		}
	})

	t.Run("ctxed-error", func(t *testing.T) {
		var r recorder
		tlog.Error(&r, errors.New("ctx error").Int("readers", 2).Bool("exclusive", false))
		if len(r.errors) != 1 {
			t.Fatalf("one error expected, got %d", len(r.errors))
		}
		for _, part := range []string{"ctx error", "readers", "exclusive"} {
			if !strings.Contains(r.errors[0], part) {
				t.Errorf("%q is missing in %q", part, r.errors[0])
			}
		}
	})

	t.Run("check", func(t *testing.T) {
		var r recorder
		if tlog.Check(&r, nil) {
			t.Error("nil error must not be reported")
		}
		if !tlog.Check(&r, stderrs.New("fail")) {
			t.Error("non-nil error must be reported")
		}
	})
}

func TestRecover(t *testing.T) {
	if err := tlog.Recover(func() {}); err != nil {
		t.Errorf("no panic expected, got %v", err)
	}

	const sentinel errors.Const = "sentinel"
	if err := tlog.Recover(func() { panic(errors.Wrap(sentinel, "wrapped")) }); !errors.Is(err, sentinel) {
		t.Errorf("sentinel expected in %v", err)
	}

	if err := tlog.Recover(func() { panic("text") }); err == nil || !strings.Contains(err.Error(), "text") {
		t.Errorf("panic text expected in %v", err)
	}
}
