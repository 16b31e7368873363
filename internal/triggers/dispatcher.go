package triggers

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"solace/internal/logging"
	"solace/internal/models"
	"solace/internal/services"
)

// Op is the document operation that fired a change.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
)

// Change is a single document change delivered by the store.
type Change struct {
	Collection string
	Op         Op

	Event   *models.Event
	Journal *models.JournalEntry

	// PrevJournal is the journal revision before an update, when the store
	// makes it available.
	PrevJournal *models.JournalEntry
}

// Handler processes one change. A returned error is logged and swallowed at
// the dispatch boundary — it never reaches the originating write.
type Handler func(ctx context.Context, change Change) error

// Dispatcher routes store changes to registered handlers. Each invocation is
// independent; failures are logged, counted, and dropped so the triggering
// document write always succeeds regardless of pipeline outcome.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	metrics  *services.Metrics
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(metrics *services.Metrics) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string]Handler),
		metrics:  metrics,
	}
}

// Register binds a handler to a (collection, op) pair. Later registrations
// replace earlier ones.
func (d *Dispatcher) Register(collection string, op Op, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[routeKey(collection, op)] = handler
}

// Dispatch runs the handler registered for the change, if any. Errors and
// panics are contained here.
func (d *Dispatcher) Dispatch(ctx context.Context, change Change) {
	d.mu.RLock()
	handler, ok := d.handlers[routeKey(change.Collection, change.Op)]
	d.mu.RUnlock()
	if !ok {
		return
	}

	logger := logging.WithTrigger(uuid.NewString(), change.Collection, string(change.Op))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("trigger panicked", "panic", r)
			d.metrics.RecordTriggerFailure(change.Collection, string(change.Op))
		}
	}()

	if err := handler(ctx, change); err != nil {
		logger.Error("trigger failed", "error", err)
		d.metrics.RecordTriggerFailure(change.Collection, string(change.Op))
		return
	}

	logger.Debug("trigger completed")
}

func routeKey(collection string, op Op) string {
	return collection + ":" + string(op)
}
