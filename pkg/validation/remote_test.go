package validation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaushalJainAI/workflow-assistant-sub000/internal/core/graph"
)

func backendGraph() ([]*graph.Node, []*graph.Edge) {
	nodes := []*graph.Node{
		node("t", graph.KindManualTrigger, nil),
		node("a", kindIntegration, nil),
	}
	edges := []*graph.Edge{edge("e1", "t", "a")}
	return nodes, edges
}

func TestRunner_BackendFindingsMerged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, backendValidatePath, r.URL.Path)

		var req backendRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.CheckCredentials)
		assert.Len(t, req.Nodes, 2)

		_ = json.NewEncoder(w).Encode(backendResponse{
			IsValid: false,
			Errors: []backendWireFinding{
				{Type: "error", Code: "CREDENTIAL_NOT_OWNED", Message: "credential cred-1 belongs to another user", NodeID: "a"},
			},
			Warnings: []backendWireFinding{
				{Type: "warning", Code: "SUBWORKFLOW_CYCLE", Message: "pipeline is invoked by one of its sub-pipelines"},
			},
		})
	}))
	defer srv.Close()

	runner := NewRunner(NewBackendClient(srv.URL))
	nodes, edges := backendGraph()
	result := runner.Validate(context.Background(), nodes, edges, Options{
		ValidateWithBackend: true,
		CheckCredentials:    true,
	})

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, Code("CREDENTIAL_NOT_OWNED"), result.Errors[0].Code)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, Code("SUBWORKFLOW_CYCLE"), result.Warnings[0].Code)
}

func TestRunner_BackendErrorDegradesToWarning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	runner := NewRunner(NewBackendClient(srv.URL))
	nodes, edges := backendGraph()
	result := runner.Validate(context.Background(), nodes, edges, Options{ValidateWithBackend: true})

	assert.True(t, result.IsValid, "a backend failure must never invalidate a locally valid pipeline")
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, CodeBackendUnavailable, result.Warnings[0].Code)
}

func TestRunner_BackendUnreachable(t *testing.T) {
	// Closed server: immediate transport error.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	runner := NewRunner(NewBackendClient(srv.URL))
	nodes, edges := backendGraph()
	result := runner.Validate(context.Background(), nodes, edges, Options{ValidateWithBackend: true})

	assert.True(t, result.IsValid)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, CodeBackendUnavailable, result.Warnings[0].Code)
}

func TestRunner_NoBackendConfigured(t *testing.T) {
	runner := NewRunner(nil)
	nodes, edges := backendGraph()
	result := runner.Validate(context.Background(), nodes, edges, Options{ValidateWithBackend: true})

	assert.True(t, result.IsValid)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, CodeBackendUnavailable, result.Warnings[0].Code)
}

func TestRunner_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		srv.Close()
	}()

	runner := NewRunner(NewBackendClient(srv.URL))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	nodes, edges := backendGraph()
	result := runner.Validate(ctx, nodes, edges, Options{ValidateWithBackend: true})

	assert.True(t, result.IsValid)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, CodeBackendUnavailable, result.Warnings[0].Code)
}

func TestRunner_StaleBackendResultDiscarded(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_ = json.NewEncoder(w).Encode(backendResponse{
			IsValid: false,
			Errors:  []backendWireFinding{{Type: "error", Code: "STALE", Message: "from the superseded run"}},
		})
	}))
	defer srv.Close()

	runner := NewRunner(NewBackendClient(srv.URL))
	nodes, edges := backendGraph()

	done := make(chan *Result, 1)
	go func() {
		done <- runner.Validate(context.Background(), nodes, edges, Options{ValidateWithBackend: true})
	}()

	// A newer run supersedes the in-flight one before its backend call
	// completes.
	time.Sleep(20 * time.Millisecond)
	runner.token.Add(1)
	close(release)

	result := <-done
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors, "stale backend findings must never be merged")
	assert.Empty(t, result.Warnings)
}

func TestBackendOutcome_Findings(t *testing.T) {
	t.Run("bucket wins over self-declared type", func(t *testing.T) {
		o := backendOutcome{status: backendSuccess, resp: &backendResponse{
			Warnings: []backendWireFinding{{Type: "error", Code: "X", Message: "m"}},
		}}
		findings := o.findings()
		require.Len(t, findings, 1)
		assert.Equal(t, SeverityWarning, findings[0].Type)
	})

	t.Run("transport error yields one warning", func(t *testing.T) {
		o := backendOutcome{status: backendTransportError, err: errNoBackend}
		findings := o.findings()
		require.Len(t, findings, 1)
		assert.Equal(t, CodeBackendUnavailable, findings[0].Code)
		assert.Equal(t, SeverityWarning, findings[0].Type)
	})
}
