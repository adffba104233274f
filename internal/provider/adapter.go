package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/affipay/affipay/internal/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Instruction is one transfer order. Reference is the withdrawal's unique
// idempotency key: a retried submission with the same reference must not
// create a duplicate transfer on the provider side.
type Instruction struct {
	Reference      string          `json:"reference"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	AccountDetails string          `json:"account_details"`
}

type Result struct {
	Success           bool   `json:"success"`
	ProviderReference string `json:"provider_reference"`
	FailureReason     string `json:"failure_reason,omitempty"`
}

// Adapter executes a single transfer on an external payout rail.
type Adapter interface {
	SubmitTransfer(ctx context.Context, instruction Instruction) (*Result, error)
}

// HTTPAdapter submits transfers as JSON to a provider gateway endpoint.
// The engine stays protocol-agnostic; mapping to the rail's real wire
// format is the gateway's problem.
type HTTPAdapter struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPAdapter(baseURL string, timeout time.Duration) *HTTPAdapter {
	return &HTTPAdapter{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (a *HTTPAdapter) SubmitTransfer(ctx context.Context, instruction Instruction) (*Result, error) {
	payload, err := json.Marshal(instruction)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/api/transfers", a.baseURL), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			logger.Log.Error("failed to close provider response body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected provider status: %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Registry resolves a configured Adapter by provider name.
type Registry struct {
	adapters map[string]Adapter
}

func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

func (r *Registry) Register(name string, adapter Adapter) {
	r.adapters[strings.ToLower(name)] = adapter
}

func (r *Registry) Get(name string) (Adapter, error) {
	adapter, ok := r.adapters[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("no adapter registered for provider %q", name)
	}
	return adapter, nil
}
