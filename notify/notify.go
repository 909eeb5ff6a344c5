// Package notify collects transient toast events for the presentation layer.
// The core only emits (severity, message) pairs; rendering is someone else's
// job.
package notify

import "sync"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Event is one pending toast. Theme carries the dark-mode flag active at
// emission time so the toast container can style itself without a second
// round trip.
type Event struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Theme    string   `json:"theme"`
}

// Notifier queues events until the UI drains them. Emission never blocks.
type Notifier struct {
	mu      sync.Mutex
	pending []Event
	darkFn  func() bool
}

// NewNotifier creates a notifier. darkFn reports the current dark-mode
// preference; it may be nil, in which case the light theme is assumed.
func NewNotifier(darkFn func() bool) *Notifier {
	return &Notifier{darkFn: darkFn}
}

func (n *Notifier) theme() string {
	if n.darkFn != nil && n.darkFn() {
		return "dark"
	}
	return "light"
}

// Success queues a success toast
func (n *Notifier) Success(message string) {
	n.emit(SeveritySuccess, message)
}

// Error queues an error toast
func (n *Notifier) Error(message string) {
	n.emit(SeverityError, message)
}

func (n *Notifier) emit(sev Severity, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = append(n.pending, Event{Severity: sev, Message: message, Theme: n.theme()})
}

// Drain returns all pending events and clears the queue. Never returns nil.
func (n *Notifier) Drain() []Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.pending
	n.pending = nil
	if out == nil {
		out = []Event{}
	}
	return out
}
