// Package dto carries the wire shapes of the validation service. The
// wire contract is snake_case; the internal model is camel-case, and
// mapping between the two lives here.
package dto

import (
	"github.com/KaushalJainAI/workflow-assistant-sub000/internal/core/graph"
	"github.com/KaushalJainAI/workflow-assistant-sub000/pkg/validation"
)

// ValidateRequest is the body of POST /v1/pipelines/validate.
type ValidateRequest struct {
	// An empty (or absent) node list is a valid pipeline; the engine
	// reports it as an info finding.
	Nodes []*graph.Node `json:"nodes"`
	Edges []*graph.Edge `json:"edges"`

	CheckCredentials       bool `json:"check_credentials"`
	CheckTypes             bool `json:"check_types"`
	CheckSubworkflowCycles bool `json:"check_subworkflow_cycles"`
	IgnoreErrorHandles     bool `json:"ignore_error_handles"`
	MaxNestingDepth        int  `json:"max_nesting_depth" validate:"min=0,max=32"`
}

// Options maps the request flags onto engine options.
func (r *ValidateRequest) Options() validation.Options {
	return validation.Options{
		CheckCredentials:       r.CheckCredentials,
		CheckTypeCompatibility: r.CheckTypes,
		CheckSubworkflowCycles: r.CheckSubworkflowCycles,
		IgnoreErrorHandles:     r.IgnoreErrorHandles,
		MaxNestingDepth:        r.MaxNestingDepth,
	}
}

// Finding is the wire form of one reported issue.
type Finding struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
	NodeID  string `json:"node_id,omitempty"`
	Field   string `json:"field,omitempty"`
}

// ValidateResponse is the service reply, shaped identically to the
// execution back end's own response so this service can stand in as a
// remote authority.
type ValidateResponse struct {
	IsValid  bool      `json:"is_valid"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
	Info     []Finding `json:"info"`
	Summary  string    `json:"summary"`
}

// FromResult maps an engine report onto the wire shape. Buckets are
// always non-nil so clients see [] instead of null.
func FromResult(res *validation.Result) *ValidateResponse {
	return &ValidateResponse{
		IsValid:  res.IsValid,
		Errors:   toWire(res.Errors),
		Warnings: toWire(res.Warnings),
		Info:     toWire(res.Info),
		Summary:  res.Summary(),
	}
}

func toWire(findings []validation.Finding) []Finding {
	out := make([]Finding, 0, len(findings))
	for _, f := range findings {
		out = append(out, Finding{
			Type:    string(f.Type),
			Code:    string(f.Code),
			Message: f.Message,
			NodeID:  f.NodeID,
			Field:   f.Field,
		})
	}
	return out
}
