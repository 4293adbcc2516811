package validation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/KaushalJainAI/workflow-assistant-sub000/internal/core/graph"
)

// defaultBackendTimeout bounds the single backend round-trip. The local
// pass never waits on it beyond aggregation.
const defaultBackendTimeout = 10 * time.Second

// backendValidatePath is the validation endpoint on the execution
// back end.
const backendValidatePath = "/v1/pipelines/validate"

// The wire contract is snake_case; mapping to the internal camel-case
// model happens here and nowhere else.

type backendRequest struct {
	Nodes                  []*graph.Node `json:"nodes"`
	Edges                  []*graph.Edge `json:"edges"`
	CheckCredentials       bool          `json:"check_credentials"`
	CheckTypes             bool          `json:"check_types"`
	CheckSubworkflowCycles bool          `json:"check_subworkflow_cycles"`
}

type backendWireFinding struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
	NodeID  string `json:"node_id,omitempty"`
	Field   string `json:"field,omitempty"`
}

type backendResponse struct {
	IsValid  bool                 `json:"is_valid"`
	Errors   []backendWireFinding `json:"errors"`
	Warnings []backendWireFinding `json:"warnings"`
	Info     []backendWireFinding `json:"info"`
}

// backendStatus enumerates the three bridge outcomes. All of them
// converge into findings, so the aggregator never special-cases
// failure modes.
type backendStatus int

const (
	backendSuccess backendStatus = iota
	backendTimeout
	backendTransportError
)

// backendOutcome is the result of one bridge round-trip.
type backendOutcome struct {
	status backendStatus
	resp   *backendResponse
	err    error
}

// findings converts the outcome into the finding stream merged by the
// aggregator. Transport failures and timeouts degrade to a single
// warning; they never invalidate a locally valid pipeline.
func (o backendOutcome) findings() []Finding {
	if o.status != backendSuccess {
		return []Finding{warnf(CodeBackendUnavailable, "", "",
			"backend validation unavailable, using local checks only: %v", o.err)}
	}
	var out []Finding
	for _, w := range o.resp.Errors {
		out = append(out, w.toFinding(SeverityError))
	}
	for _, w := range o.resp.Warnings {
		out = append(out, w.toFinding(SeverityWarning))
	}
	for _, w := range o.resp.Info {
		out = append(out, w.toFinding(SeverityInfo))
	}
	return out
}

// toFinding maps a wire finding, trusting the bucket it arrived in over
// its self-declared type when they disagree.
func (w backendWireFinding) toFinding(bucket Severity) Finding {
	return Finding{Type: bucket, Code: Code(w.Code), Message: w.Message, NodeID: w.NodeID, Field: w.Field}
}

// BackendClient talks to the execution back end for checks that need
// global state the client snapshot does not hold (cross-pipeline
// cycles, credential ownership, type compatibility).
type BackendClient struct {
	baseURL string
	httpc   *http.Client
	log     *slog.Logger
}

// BackendOption customizes a BackendClient.
type BackendOption func(*BackendClient)

// WithHTTPClient overrides the transport, mainly for tests.
func WithHTTPClient(c *http.Client) BackendOption {
	return func(b *BackendClient) { b.httpc = c }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) BackendOption {
	return func(b *BackendClient) { b.log = l }
}

// NewBackendClient creates a bridge to the authority at baseURL.
func NewBackendClient(baseURL string, opts ...BackendOption) *BackendClient {
	b := &BackendClient{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: defaultBackendTimeout},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// validate issues the single authority round-trip. It never returns an
// error: every failure mode is folded into the outcome.
func (b *BackendClient) validate(ctx context.Context, req backendRequest) backendOutcome {
	body, err := json.Marshal(req)
	if err != nil {
		return backendOutcome{status: backendTransportError, err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+backendValidatePath, bytes.NewReader(body))
	if err != nil {
		return backendOutcome{status: backendTransportError, err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := b.httpc.Do(httpReq)
	if err != nil {
		status := backendTransportError
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			status = backendTimeout
		}
		b.log.Warn("backend validation request failed", "error", err)
		return backendOutcome{status: status, err: err}
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		err := fmt.Errorf("backend returned status %d", httpResp.StatusCode)
		b.log.Warn("backend validation rejected", "status", httpResp.StatusCode)
		return backendOutcome{status: backendTransportError, err: err}
	}

	var resp backendResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return backendOutcome{status: backendTransportError, err: fmt.Errorf("decoding backend response: %w", err)}
	}
	return backendOutcome{status: backendSuccess, resp: &resp}
}
