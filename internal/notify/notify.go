package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/affipay/affipay/internal/logger"
	"go.uber.org/zap"
)

const (
	EventCommissionRecorded      = "commission.recorded"
	EventBalanceChanged          = "balance.changed"
	EventWithdrawalStatusChanged = "withdrawal.status.changed"
	EventBatchStatusChanged      = "batch.status.changed"
)

// Event is a change notification published to collaborators so they do not
// have to poll engine state.
type Event struct {
	Name    string      `json:"event"`
	Payload interface{} `json:"data"`
}

type Emitter interface {
	Emit(event Event)
}

// Noop discards events; used where no sink is configured and in tests.
type Noop struct{}

func (Noop) Emit(Event) {}

// Dispatcher buffers events and delivers them to a webhook sink from a
// background goroutine, so emitting never blocks a financial mutation.
type Dispatcher struct {
	sinkURL    string
	httpClient *http.Client
	events     chan Event
}

func NewDispatcher(sinkURL string, buffer int) *Dispatcher {
	return &Dispatcher{
		sinkURL:    sinkURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		events:     make(chan Event, buffer),
	}
}

func (d *Dispatcher) Emit(event Event) {
	select {
	case d.events <- event:
	default:
		logger.Log.Warn("notification buffer full, dropping event", zap.String("event", event.Name))
	}
}

func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-d.events:
			d.deliver(ctx, event)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, event Event) {
	body, err := json.Marshal(event)
	if err != nil {
		logger.Log.Error("failed to marshal event", zap.String("event", event.Name), zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.sinkURL, bytes.NewReader(body))
	if err != nil {
		logger.Log.Error("failed to build webhook request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		logger.Log.Warn("webhook delivery failed", zap.String("event", event.Name), zap.Error(err))
		return
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logger.Log.Error("failed to close webhook response body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		logger.Log.Warn("webhook sink rejected event",
			zap.String("event", event.Name), zap.Int("status", resp.StatusCode))
	}
}
