package webhook

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mnemom/smoltbot/pkg/services"
)

// inlineBudget bounds the fire-and-forget first attempts for one event.
const inlineBudget = 15 * time.Second

// Emitter is the write side of webhook delivery: persist the event, fan out
// deliveries, and kick off inline first attempts. Emit never fails the
// caller; on any error the event is dropped or left to the retry worker.
type Emitter struct {
	svc        *services.WebhookService
	dispatcher *Dispatcher
	logger     *slog.Logger

	wg sync.WaitGroup
}

// NewEmitter creates an emitter that hands inline attempts to dispatcher.
func NewEmitter(svc *services.WebhookService, dispatcher *Dispatcher, logger *slog.Logger) *Emitter {
	if svc == nil {
		panic("NewEmitter: svc must not be nil")
	}
	if dispatcher == nil {
		panic("NewEmitter: dispatcher must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Emitter{
		svc:        svc,
		dispatcher: dispatcher,
		logger:     logger.With("component", "webhook_emitter"),
	}
}

// Emit persists the event, fans out one delivery per matching endpoint, and
// attempts each delivery inline in the background. Errors are logged and
// swallowed: webhook emission must never fail or block the caller's primary
// operation.
func (e *Emitter) Emit(ctx context.Context, accountID, eventType string, data map[string]any) {
	if accountID == "" {
		// Events are account-scoped; an agent with no account has no
		// subscribers to notify.
		return
	}

	event, deliveries, err := e.svc.RecordEvent(ctx, accountID, eventType, data)
	if err != nil {
		e.logger.Error("failed to record webhook event",
			"account_id", accountID,
			"event_type", eventType,
			"error", err)
		return
	}
	if len(deliveries) == 0 {
		return
	}

	e.logger.Debug("webhook event recorded",
		"event_id", event.ID,
		"event_type", eventType,
		"deliveries", len(deliveries))

	// Inline first attempts outlive the caller's request; they run on a
	// detached context with their own budget. A failure here is left for
	// the retry sweep.
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		inlineCtx, cancel := context.WithTimeout(context.Background(), inlineBudget)
		defer cancel()
		for _, delivery := range deliveries {
			if inlineCtx.Err() != nil {
				return
			}
			e.dispatcher.Attempt(inlineCtx, delivery)
		}
	}()
}

// Drain waits for in-flight inline attempts to finish. Called on shutdown
// after the HTTP server has stopped accepting requests.
func (e *Emitter) Drain() {
	e.wg.Wait()
}
