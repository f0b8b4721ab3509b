// Package logstest provides loggers to use when testing traced combinators.
package logstest

import (
	"fmt"
	"log"
	"os"
	"sync"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/go-logr/logr/testr"
	"github.com/go-logr/stdr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap/zaptest"
)

// Verbosity is the verbosity level enabled on test loggers so that traces are emitted.
const Verbosity = 1

// NewNullTestLogger returns a logger to nothing
func NewNullTestLogger() logr.Logger {
	return logr.Discard()
}

// NewStdTestLogger returns a test logger to standard output.
func NewStdTestLogger() logr.Logger {
	return stdr.New(log.New(os.Stdout, "", log.Lshortfile))
}

// NewTestLogger returns a logger to use in tests
func NewTestLogger(t *testing.T) logr.Logger {
	t.Helper()
	return testr.NewWithOptions(t, testr.Options{Verbosity: Verbosity})
}

// NewZapTestLogger returns a zap backed logger writing to the test output.
func NewZapTestLogger(t *testing.T) logr.Logger {
	t.Helper()
	return zapr.NewLogger(zaptest.NewLogger(t))
}

// Recorder keeps every line logged by a recording logger.
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

// Lines returns the lines recorded so far.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

func (r *Recorder) record(prefix, args string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prefix != "" {
		r.lines = append(r.lines, fmt.Sprintf("%s: %s", prefix, args))
	} else {
		r.lines = append(r.lines, args)
	}
}

// NewRecordingLogger returns a logger recording its output in memory.
func NewRecordingLogger() (logr.Logger, *Recorder) {
	recorder := &Recorder{}
	return funcr.New(recorder.record, funcr.Options{Verbosity: Verbosity}), recorder
}
