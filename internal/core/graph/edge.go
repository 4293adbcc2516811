// Package graph provides edge definitions
package graph

// Well-known handle identifiers used by the shipped node kinds.
const (
	// HandleMain is the default data-flow handle
	HandleMain = "main"
	// HandleTrue is the taken branch of an if node
	HandleTrue = "true"
	// HandleFalse is the not-taken branch of an if node
	HandleFalse = "false"
	// HandleDefault is the fallthrough branch of a switch node
	HandleDefault = "default"
	// HandleError carries exception routing, not regular control flow
	HandleError = "error"
)

// Edge represents a directed connection between two nodes
// PRINCIPLES:
// - KISS: Simple edge representation
// - SRP: Only responsible for edge data
type Edge struct {
	ID           string `json:"id"`
	Source       string `json:"source"` // Source node ID
	Target       string `json:"target"` // Target node ID
	SourceHandle string `json:"sourceHandle,omitempty"`
	TargetHandle string `json:"targetHandle,omitempty"`
}

// IsErrorRoute reports whether the edge leaves through the error
// handle. Such edges model exception routing and may be excluded from
// cycle detection.
func (e *Edge) IsErrorRoute() bool {
	return e.SourceHandle == HandleError
}

// Validate ensures edge integrity. Edge IDs key cycle reporting, so an
// empty ID is rejected the same way an empty node ID is.
func (e *Edge) Validate() error {
	if e == nil {
		return ErrNilEdge
	}
	if e.ID == "" {
		return ErrInvalidEdgeID
	}
	if e.Source == "" {
		return ErrInvalidSource
	}
	if e.Target == "" {
		return ErrInvalidTarget
	}
	return nil
}
