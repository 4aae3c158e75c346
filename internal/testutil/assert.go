// Package testutil holds the assertion helpers shared by the bitchess tests.
//
// Helpers take a testing.TB so they work in tests and benchmarks alike.
// Values are compared with go-cmp; a failure prints a -want +got diff.
package testutil

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual reports a -want +got diff when got and want differ. Extra
// cmp options may be given ahead of the message arguments.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	opts, msgAndArgs := splitOptions(msgAndArgs)
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		report(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		report(t, msgAndArgs, "unexpected error: %v", err)
	}
}

// AssertError fails if err is nil.
func AssertError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		report(t, msgAndArgs, "expected an error, got nil")
	}
}

// AssertErrorIs fails unless err wraps target, typically one of the
// sentinels in internal/errors.
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		report(t, msgAndArgs, "error %v does not wrap %v", err, target)
	}
}

func AssertContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		report(t, msgAndArgs, "%q does not contain %q", got, substr)
	}
}

func AssertNotContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if strings.Contains(got, substr) {
		report(t, msgAndArgs, "%q contains %q", got, substr)
	}
}

func AssertTrue(t testing.TB, cond bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !cond {
		report(t, msgAndArgs, "got false, want true")
	}
}

func AssertFalse(t testing.TB, cond bool, msgAndArgs ...interface{}) {
	t.Helper()
	if cond {
		report(t, msgAndArgs, "got true, want false")
	}
}

// AssertNil accepts typed nils such as a nil *engine.Game.
func AssertNil(t testing.TB, got interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if !isNil(got) {
		report(t, msgAndArgs, "got %v, want nil", got)
	}
}

func AssertNotNil(t testing.TB, got interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if isNil(got) {
		report(t, msgAndArgs, "got nil, want a value")
	}
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// report fails t with the failure text, prefixed by the caller's message
// when one was given.
func report(t testing.TB, msgAndArgs []interface{}, format string, args ...interface{}) {
	t.Helper()
	text := fmt.Sprintf(format, args...)
	if msg := formatMessage(msgAndArgs...); msg != "" {
		text = msg + ": " + text
	}
	t.Error(text)
}

// splitOptions separates leading cmp options from the message arguments.
func splitOptions(args []interface{}) (cmp.Options, []interface{}) {
	var opts cmp.Options
	for len(args) > 0 {
		opt, ok := args[0].(cmp.Option)
		if !ok {
			break
		}
		opts = append(opts, opt)
		args = args[1:]
	}
	return opts, args
}

// formatMessage renders optional message arguments: a lone value, or a
// format string followed by its arguments.
func formatMessage(msgAndArgs ...interface{}) string {
	switch {
	case len(msgAndArgs) == 0:
		return ""
	case len(msgAndArgs) == 1:
		return fmt.Sprint(msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs[0])
}
