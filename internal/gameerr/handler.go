package gameerr

import (
	"log"

	"github.com/samdwyer/monsterslayer/internal/event"
)

// Handler is the central error sink: it logs every report and, for
// critical errors, publishes event.CriticalError so the session can
// route to the failure screen.
type Handler struct {
	logger *log.Logger
	bus    *event.Bus
}

// NewHandler creates a handler. A nil logger uses the standard logger.
func NewHandler(logger *log.Logger, bus *event.Bus) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		logger: logger,
		bus:    bus,
	}
}

// Handle logs the error and returns the recovery action for its
// category. Critical errors additionally go out over the bus.
func (h *Handler) Handle(e *Error) Action {
	message, action := RecoveryFor(e.Category)
	h.logger.Printf("[%s] %s: %v (recovery: %s)", e.Severity, e.Category, e.Err, action)

	if e.Severity == SeverityCritical && h.bus != nil {
		h.bus.Publish(event.Event{
			Type: event.CriticalError,
			Data: event.CriticalErrorPayload{
				Category: e.Category.String(),
				Message:  message,
				Action:   action.String(),
			},
		})
	}
	return action
}
