// filepath: internal/notify/logger_notifier.go
package notify

import (
	"github.com/sirupsen/logrus"

	"lumina/internal/logging"
)

// LoggerNotifier writes events to the application log. It is the default
// sink when no UI channel is attached.
type LoggerNotifier struct{}

func (LoggerNotifier) Notify(event Event) {
	entry := logging.Log.WithFields(logrus.Fields{"kind": event.Kind})
	if event.Kind == KindError {
		entry.Warn(event.Message)
		return
	}
	entry.Info(event.Message)
}

// Discard drops every event. Useful for callers that poll results
// directly and do not want log noise.
type Discard struct{}

func (Discard) Notify(Event) {}
