// Package rig provides the console plumbing for interactive installers:
// shell execution with outcome classification, a per-run diagnostic log,
// validated prompts, and a single-cell busy indicator.
package rig

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dkoosis/rig/pkg/style"
)

// sectionWidth is the fixed width of section rules in the log and console.
const sectionWidth = 50

// Log is the per-run diagnostic transcript. It is created closed; Open
// allocates a fresh uniquely named temp file and announces its path on the
// console. Writes never fail the caller: before Open they are dropped, and
// a write error after that is reported on the console and swallowed.
//
// A Log is passed explicitly to every component that records diagnostics;
// there is no process-global instance.
type Log struct {
	console io.Writer

	mu     sync.Mutex
	file   *os.File
	path   string
	closed bool
}

// NewLog returns a closed Log whose fallback output goes to console.
// A nil console defaults to os.Stdout.
func NewLog(console io.Writer) *Log {
	if console == nil {
		console = os.Stdout
	}
	return &Log{console: console}
}

// Open creates the log destination and prints its path for the user. It may
// be called at most once per run. When Open fails the Log stays closed and
// the run continues console-only.
func (l *Log) Open() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.path != "" {
		return fmt.Errorf("log already opened at %s", l.path)
	}
	f, err := os.CreateTemp("", "rig_log_*.txt")
	if err != nil {
		return fmt.Errorf("create log file: %w", err)
	}
	l.file = f
	l.path = f.Name()
	fmt.Fprintf(l.console, "Logging to %s\n", l.path)
	return nil
}

// Write appends msg and a newline to the log. Before Open it is a silent
// no-op. A failed write, including one arriving after Close, surfaces the
// error and the lost message on the console instead of failing the run.
func (l *Log) Write(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return
	}
	if _, err := fmt.Fprintln(l.file, msg); err != nil {
		fmt.Fprintf(l.console, "Logging failed: %v\n", err)
		fmt.Fprintf(l.console, "Message: %s\n", msg)
	}
}

// PrintAndLog records msg in the log, then prints it on the console.
func (l *Log) PrintAndLog(msg string) {
	l.Write(msg)
	fmt.Fprintln(l.console, msg)
}

// Section marks the start of an installation phase in both sinks: a blank
// line, then title centered in a 50-cell rule of '='.
func (l *Log) Section(title string) {
	l.PrintAndLog("\n" + style.CenterRule(title, sectionWidth, '='))
}

// Close flushes and closes the log destination. It is idempotent and safe
// on a Log that was never opened. The file handle is kept so later writes
// take the console fallback path rather than disappearing.
func (l *Log) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil || l.closed {
		return
	}
	l.closed = true
	_ = l.file.Sync()
	_ = l.file.Close()
}

// Path returns the log destination's path, or "" when Open never succeeded.
// The file is left on disk for the user; rig never deletes it.
func (l *Log) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.path
}
