// Package audit keeps the in-session activity trail: who did what, when.
// The trail is memory-only; the durable chain of custody lives in the
// evidence store.
package audit

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Event is one recorded action.
type Event struct {
	Timestamp time.Time
	Actor     string
	Action    string
	Details   string
	Metadata  map[string]string
}

// String renders the event as a single audit-log line.
func (e Event) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%sZ] %s - %s", e.Timestamp.UTC().Format("2006-01-02T15:04:05"), e.Actor, e.Action)
	if e.Details != "" {
		fmt.Fprintf(&b, " :: %s", e.Details)
	}
	if len(e.Metadata) > 0 {
		keys := make([]string, 0, len(e.Metadata))
		for k := range e.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, k+"="+e.Metadata[k])
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(pairs, ", "))
	}
	return b.String()
}

// Trail accumulates events for the current session.
type Trail struct {
	mu     sync.Mutex
	events []Event
}

// NewTrail returns an empty trail.
func NewTrail() *Trail { return &Trail{} }

// Record appends one event stamped with the current time. Metadata may be
// nil; it is copied when present.
func (t *Trail) Record(actor, action, details string, metadata map[string]string) {
	var meta map[string]string
	if len(metadata) > 0 {
		meta = make(map[string]string, len(metadata))
		for k, v := range metadata {
			meta[k] = v
		}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, Event{
		Timestamp: time.Now().UTC(),
		Actor:     actor,
		Action:    action,
		Details:   details,
		Metadata:  meta,
	})
}

// Events returns a copy of all recorded events in order.
func (t *Trail) Events() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Event(nil), t.events...)
}
