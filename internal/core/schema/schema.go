// Package schema describes the per-kind configuration contract consumed
// by the validation engine. The engine looks schemas up and never
// mutates them; ownership stays with the editor's node catalog.
package schema

import (
	"sync"

	"github.com/KaushalJainAI/workflow-assistant-sub000/internal/core/graph"
)

// ValueKind describes the expected shape of a field value.
type ValueKind string

const (
	ValueString ValueKind = "string"
	ValueNumber ValueKind = "number"
	ValueBool   ValueKind = "boolean"
	// ValueObject is a serialized structured value (JSON text)
	ValueObject ValueKind = "object"
	// ValueCode is a user-authored script body
	ValueCode ValueKind = "code"
	// ValueCron is a schedule expression
	ValueCron ValueKind = "cron"
	// ValueURL must parse as a well-formed URL
	ValueURL ValueKind = "url"
)

// FieldDef declares one configuration field of a node kind.
type FieldDef struct {
	ID         string    `json:"id"`
	Required   bool      `json:"required"`
	Kind       ValueKind `json:"kind"`
	Credential bool      `json:"credential"`
}

// NodeKindSchema declares the ordered field definitions and the handle
// ids a node kind exposes on the canvas.
type NodeKindSchema struct {
	Kind    graph.NodeKind `json:"kind"`
	Fields  []FieldDef     `json:"fields"`
	Inputs  []string       `json:"inputs"`
	Outputs []string       `json:"outputs"`
}

// HasInput reports whether the handle id is a declared input.
func (s *NodeKindSchema) HasInput(handle string) bool {
	return contains(s.Inputs, handle)
}

// HasOutput reports whether the handle id is a declared output.
func (s *NodeKindSchema) HasOutput(handle string) bool {
	return contains(s.Outputs, handle)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// LookupFunc resolves a kind to its schema. The second result is false
// when the kind is unknown.
type LookupFunc func(kind graph.NodeKind) (*NodeKindSchema, bool)

// Registry maps node kinds to their schemas. Safe for concurrent use;
// registration normally happens at startup, lookups on every run.
type Registry struct {
	mu      sync.RWMutex
	schemas map[graph.NodeKind]*NodeKindSchema
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[graph.NodeKind]*NodeKindSchema)}
}

// Register adds or replaces the schema for its kind.
func (r *Registry) Register(s *NodeKindSchema) {
	if s == nil || s.Kind == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[s.Kind] = s
}

// Lookup resolves the schema for a kind.
func (r *Registry) Lookup(kind graph.NodeKind) (*NodeKindSchema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[kind]
	return s, ok
}

// Kinds returns all registered kinds. Order is unspecified.
func (r *Registry) Kinds() []graph.NodeKind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]graph.NodeKind, 0, len(r.schemas))
	for k := range r.schemas {
		out = append(out, k)
	}
	return out
}
