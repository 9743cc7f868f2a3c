// Package trace keeps a bounded in-memory log of tool and LLM
// invocations so the chat screen can show the agent's reasoning trail.
package trace

import (
	"sync"
	"time"
)

// Kind classifies a trace entry.
type Kind string

const (
	KindTool Kind = "tool"
	KindLLM  Kind = "llm"
)

// Entry is one recorded invocation. Input and Output are truncated at
// record time so the buffer stays cheap to render.
type Entry struct {
	Time     time.Time
	Kind     Kind
	Label    string // tool name or LLM purpose
	Input    string
	Output   string
	Err      string
	Duration time.Duration
}

// maxFieldLen bounds Input/Output length per entry.
const maxFieldLen = 200

// Recorder is a fixed-capacity ring of trace entries, oldest dropped
// first. Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
	cap     int
}

// NewRecorder creates a Recorder keeping at most capacity entries.
// A non-positive capacity defaults to 50.
func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = 50
	}
	return &Recorder{cap: capacity}
}

// Record appends an entry, evicting the oldest when full.
func (r *Recorder) Record(e Entry) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	e.Input = truncate(e.Input)
	e.Output = truncate(e.Output)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	if len(r.entries) > r.cap {
		r.entries = r.entries[len(r.entries)-r.cap:]
	}
}

// Entries returns a copy of all recorded entries, oldest first.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Last returns at most n most recent entries, oldest first.
func (r *Recorder) Last(n int) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n > len(r.entries) {
		n = len(r.entries)
	}
	out := make([]Entry, n)
	copy(out, r.entries[len(r.entries)-n:])
	return out
}

func truncate(s string) string {
	if len(s) <= maxFieldLen {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxFieldLen {
		return s
	}
	return string(runes[:maxFieldLen]) + "..."
}
