package validation

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/KaushalJainAI/workflow-assistant-sub000/internal/core/graph"
	"github.com/KaushalJainAI/workflow-assistant-sub000/internal/core/schema"
	"github.com/KaushalJainAI/workflow-assistant-sub000/internal/infrastructure/metrics"
)

// Options controls one validation run.
type Options struct {
	// SchemaLookup overrides the node-kind schema resolution. Defaults
	// to the built-in registry.
	SchemaLookup schema.LookupFunc
	// CheckCredentials asks the backend to verify credential ownership.
	CheckCredentials bool
	// CheckTypeCompatibility asks the backend to verify handle type
	// compatibility across edges.
	CheckTypeCompatibility bool
	// CheckSubworkflowCycles asks the backend to verify cycles across
	// pipeline boundaries.
	CheckSubworkflowCycles bool
	// ValidateWithBackend enables the remote authority round-trip.
	ValidateWithBackend bool
	// IgnoreErrorHandles excludes exception-routing edges from cycle
	// detection.
	IgnoreErrorHandles bool
	// MaxNestingDepth bounds visual-group nesting; zero means the
	// built-in default.
	MaxNestingDepth int
}

func (o Options) lookup() schema.LookupFunc {
	if o.SchemaLookup != nil {
		return o.SchemaLookup
	}
	return defaultRegistry.Lookup
}

var defaultRegistry = schema.Default()

// Validate runs every local analyzer against the snapshot and merges
// their findings into one severity-partitioned report. It is a pure
// function of (snapshot, options): it never mutates its input, never
// panics on malformed input, and always returns a report.
func Validate(nodes []*graph.Node, edges []*graph.Edge, opts Options) *Result {
	result := &Result{IsValid: true}

	s := adapt(nodes, edges)
	result.add(s.findings...)

	if len(s.order) == 0 {
		result.add(infof(CodeEmptyPipeline, "", "", "pipeline has no nodes"))
		return result
	}
	if len(s.triggerIDs()) == 0 {
		result.add(errorf(CodeNoTrigger, "", "",
			"pipeline has no trigger node; nothing can start it"))
	}

	// Producer order is the documented finding order within each
	// severity bucket.
	lookup := opts.lookup()
	result.add(checkCycles(s, opts.IgnoreErrorHandles)...)
	result.add(checkReachability(s)...)
	result.add(checkOrphans(s)...)
	result.add(checkFields(s, lookup)...)
	result.add(checkBranches(s)...)
	result.add(checkAdvisories(s, opts.MaxNestingDepth)...)
	result.add(checkHandles(s, lookup)...)

	return result
}

// Runner coordinates validation runs that may involve the backend
// bridge. It carries the monotonically increasing run token that
// implements last-request-wins: when the editor fires a new run while
// an older backend call is still in flight, the older call's findings
// are discarded instead of being merged into the newer report.
type Runner struct {
	backend *BackendClient
	token   atomic.Int64
}

// NewRunner creates a Runner. backend may be nil when no authority is
// configured; backend-enabled runs then degrade the same way a
// transport failure does.
func NewRunner(backend *BackendClient) *Runner {
	return &Runner{backend: backend}
}

// Validate runs the local pass and, when requested, the backend bridge
// concurrently with it, joining at aggregation time. The returned
// report always includes the local findings; backend findings are
// appended only when the round-trip succeeded and this run is still the
// latest.
func (r *Runner) Validate(ctx context.Context, nodes []*graph.Node, edges []*graph.Edge, opts Options) *Result {
	start := time.Now()
	tok := r.token.Add(1)

	var outcomeCh chan backendOutcome
	if opts.ValidateWithBackend {
		outcomeCh = make(chan backendOutcome, 1)
		go func() {
			if r.backend == nil {
				outcomeCh <- backendOutcome{status: backendTransportError, err: errNoBackend}
				return
			}
			outcomeCh <- r.backend.validate(ctx, backendRequest{
				Nodes:                  nodes,
				Edges:                  edges,
				CheckCredentials:       opts.CheckCredentials,
				CheckTypes:             opts.CheckTypeCompatibility,
				CheckSubworkflowCycles: opts.CheckSubworkflowCycles,
			})
		}()
	}

	result := Validate(nodes, edges, opts)

	if outcomeCh != nil {
		select {
		case outcome := <-outcomeCh:
			if outcome.status != backendSuccess {
				metrics.IncBackendFailure()
			}
			if r.token.Load() == tok {
				result.add(outcome.findings()...)
			} else {
				metrics.IncStaleRun()
			}
		case <-ctx.Done():
			metrics.IncBackendFailure()
			if r.token.Load() == tok {
				result.add(backendOutcome{status: backendTimeout, err: ctx.Err()}.findings()...)
			}
		}
	}

	metrics.ObserveRun(time.Since(start), len(result.Errors), len(result.Warnings), len(result.Info))
	return result
}
