// filepath: internal/notify/notify.go
// Package notify carries operation outcomes to the user-facing surface.
// Every admin mutation emits exactly one event: a success event after
// the store commits, or an error event when it refuses.
package notify

// Kind classifies an event.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Event is a single user-facing outcome message.
type Event struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Notifier receives operation outcomes.
type Notifier interface {
	Notify(event Event)
}

func Success(message string) Event {
	return Event{Kind: KindSuccess, Message: message}
}

func Error(message string) Event {
	return Event{Kind: KindError, Message: message}
}
