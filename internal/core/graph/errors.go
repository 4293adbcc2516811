// Package graph defines domain-specific errors
package graph

import "errors"

// Domain errors - DRY principle: defined once, used everywhere
var (
	// Node errors
	ErrNilNode         = errors.New("node cannot be nil")
	ErrInvalidNodeID   = errors.New("invalid node ID")
	ErrInvalidNodeKind = errors.New("invalid node kind")
	ErrDuplicateNode   = errors.New("duplicate node ID")

	// Edge errors
	ErrNilEdge       = errors.New("edge cannot be nil")
	ErrInvalidEdgeID = errors.New("invalid edge ID")
	ErrInvalidSource = errors.New("invalid source node")
	ErrInvalidTarget = errors.New("invalid target node")
)
