package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mnemom/smoltbot/ent"
	"github.com/mnemom/smoltbot/pkg/services"
)

// RetrySchedule is the bounded backoff between attempts. A delivery whose
// attempt count walks off the end of the schedule is terminal.
var RetrySchedule = []time.Duration{
	1 * time.Second,
	5 * time.Second,
	30 * time.Second,
	2 * time.Minute,
	10 * time.Minute,
}

// AttemptTimeout bounds one outbound POST.
const AttemptTimeout = 10 * time.Second

// pollInterval is how often the retry loop claims due deliveries.
const pollInterval = 15 * time.Second

// claimBatchSize caps deliveries claimed per poll.
const claimBatchSize = 50

// Dispatcher performs webhook HTTP attempts: inline ones handed over by the
// emitter and the periodic retry sweep over due deliveries.
type Dispatcher struct {
	svc        *services.WebhookService
	httpClient *http.Client
	logger     *slog.Logger
	version    string
	now        func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// NewDispatcher creates a dispatcher. version is sent as X-AIP-Version on
// every outbound request.
func NewDispatcher(svc *services.WebhookService, version string, logger *slog.Logger) *Dispatcher {
	if svc == nil {
		panic("NewDispatcher: svc must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		svc:        svc,
		httpClient: &http.Client{Timeout: AttemptTimeout},
		logger:     logger.With("component", "webhook_dispatcher"),
		version:    version,
		now:        time.Now,
	}
}

// Start launches the background retry loop.
func (d *Dispatcher) Start(ctx context.Context) {
	if d.cancel != nil {
		return
	}
	ctx, d.cancel = context.WithCancel(ctx)
	d.done = make(chan struct{})

	go d.run(ctx)

	d.logger.Info("webhook dispatcher started",
		"poll_interval", pollInterval,
		"claim_batch", claimBatchSize)
}

// Stop signals the retry loop to exit and waits for it to finish.
func (d *Dispatcher) Stop() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	<-d.done
	d.logger.Info("webhook dispatcher stopped")
}

func (d *Dispatcher) run(ctx context.Context) {
	defer close(d.done)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.sweep(ctx)
		}
	}
}

// sweep claims due deliveries and attempts each one.
func (d *Dispatcher) sweep(ctx context.Context) {
	deliveries, err := d.svc.ClaimDue(ctx, claimBatchSize)
	if err != nil {
		d.logger.Error("failed to claim due deliveries", "error", err)
		return
	}
	for _, delivery := range deliveries {
		if ctx.Err() != nil {
			return
		}
		d.Attempt(ctx, delivery)
	}
}

// Attempt performs one delivery attempt and records the outcome. The
// delivery must carry its event and endpoint edges. Errors are recorded on
// the delivery row, never returned: a failed webhook must not propagate into
// the caller's request path.
func (d *Dispatcher) Attempt(ctx context.Context, delivery *ent.WebhookDelivery) {
	event := delivery.Edges.Event
	endpoint := delivery.Edges.Endpoint
	if event == nil || endpoint == nil {
		d.logger.Error("delivery missing edges, skipping",
			"delivery_id", delivery.ID)
		return
	}

	start := time.Now()
	statusCode, respBody, err := d.post(ctx, endpoint, event)
	rec := services.AttemptRecord{
		StatusCode:   statusCode,
		ResponseBody: respBody,
		Latency:      time.Since(start),
	}

	if err == nil && statusCode >= 200 && statusCode < 300 {
		if err := d.svc.MarkDelivered(ctx, delivery.ID, rec); err != nil {
			d.logger.Error("failed to record delivered attempt",
				"delivery_id", delivery.ID, "error", err)
		}
		return
	}

	errMsg := fmt.Sprintf("status %d", statusCode)
	if err != nil {
		errMsg = err.Error()
	}
	next := d.nextAttempt(delivery.AttemptCount, delivery.MaxAttempts)
	if recErr := d.svc.MarkFailedAttempt(ctx, delivery.ID, rec, errMsg, next); recErr != nil {
		d.logger.Error("failed to record failed attempt",
			"delivery_id", delivery.ID, "error", recErr)
	}
	if next == nil {
		d.logger.Warn("delivery exhausted",
			"delivery_id", delivery.ID,
			"endpoint_id", endpoint.ID,
			"attempts", delivery.AttemptCount+1)
	}
}

// nextAttempt maps the pre-increment attempt count to the retry time, or nil
// when the delivery's attempt bound is reached. Deliveries whose bound
// exceeds the schedule reuse its last delay.
func (d *Dispatcher) nextAttempt(attemptCount, maxAttempts int) *time.Time {
	if attemptCount+1 >= maxAttempts {
		return nil
	}
	idx := attemptCount
	if idx >= len(RetrySchedule) {
		idx = len(RetrySchedule) - 1
	}
	t := d.now().Add(RetrySchedule[idx])
	return &t
}

// post signs and sends the event envelope to the endpoint, returning the
// status and a bounded read of the response body.
func (d *Dispatcher) post(ctx context.Context, endpoint *ent.WebhookEndpoint, event *ent.WebhookEvent) (int, string, error) {
	body, err := json.Marshal(envelope(event))
	if err != nil {
		return 0, "", fmt.Errorf("failed to encode envelope: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, AttemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.URL, bytes.NewReader(body))
	if err != nil {
		return 0, "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderVersion, d.version)
	req.Header.Set(HeaderSignature, SignatureHeader(Signature(endpoint.SigningSecret, d.now().Unix(), body)))

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return resp.StatusCode, string(respBody), nil
}

// envelope builds the wire payload from the persisted event.
func envelope(event *ent.WebhookEvent) map[string]any {
	return map[string]any{
		"id":         event.ID,
		"type":       event.EventType,
		"created_at": event.CreatedAt.UTC().Format(time.RFC3339),
		"account_id": event.AccountID,
		"data":       event.Data,
	}
}
