// SPDX-License-Identifier: MIT

package linkedlist

import (
	"io"
	"log"
	"os"
	"sync"
)

// Reporter is the diagnostic sink a List reports failed operations to.
// Messages are plain text and already carry the "linkedlist:" prefix.
type Reporter interface {
	Report(msg string)
}

// ReporterFunc adapts an ordinary function to the Reporter interface.
type ReporterFunc func(msg string)

// Report calls f(msg).
func (f ReporterFunc) Report(msg string) { f(msg) }

// Discard is a Reporter that drops every message.
var Discard Reporter = ReporterFunc(func(string) {})

// LogReporter writes each message as one line through a *log.Logger.
type LogReporter struct {
	logger *log.Logger
}

// NewLogReporter returns a LogReporter writing to w without timestamps.
func NewLogReporter(w io.Writer) *LogReporter {
	return &LogReporter{logger: log.New(w, "", 0)}
}

// NewLoggerReporter wraps an existing logger, keeping its prefix and flags.
func NewLoggerReporter(logger *log.Logger) *LogReporter {
	if logger == nil {
		logger = log.Default()
	}

	return &LogReporter{logger: logger}
}

// Report logs msg.
func (r *LogReporter) Report(msg string) {
	r.logger.Println(msg)
}

var (
	defaultReporterOnce sync.Once
	defaultReporter     *LogReporter
)

// DefaultReporter returns the shared stderr reporter used when no
// Reporter is configured.
func DefaultReporter() Reporter {
	defaultReporterOnce.Do(func() {
		defaultReporter = NewLogReporter(os.Stderr)
	})

	return defaultReporter
}

// Recorder keeps every reported message in memory, in arrival order.
// It is safe for concurrent use so it can be shared between lists.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

// Report appends msg.
func (r *Recorder) Report(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, msg)
}

// Messages returns a copy of the recorded messages.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.messages))
	copy(out, r.messages)

	return out
}

// Len returns the number of recorded messages.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.messages)
}

// Reset drops all recorded messages.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = nil
}

// Tee returns a Reporter forwarding every message to each non-nil reporter.
func Tee(reporters ...Reporter) Reporter {
	targets := make([]Reporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			targets = append(targets, r)
		}
	}

	return ReporterFunc(func(msg string) {
		for _, r := range targets {
			r.Report(msg)
		}
	})
}
