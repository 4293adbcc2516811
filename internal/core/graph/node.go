// Package graph provides the canvas graph domain entities
// following Clean Architecture principles with zero external dependencies.
package graph

// NodeKind tags a node with its operation family. The enumeration is
// open: the editor may introduce new kinds, and an unknown kind simply
// resolves no schema.
type NodeKind string

const (
	// KindManualTrigger represents a manually fired entry point
	KindManualTrigger NodeKind = "manualTrigger"
	// KindWebhookTrigger represents an inbound-HTTP entry point
	KindWebhookTrigger NodeKind = "webhookTrigger"
	// KindScheduleTrigger represents a cron-driven entry point
	KindScheduleTrigger NodeKind = "scheduleTrigger"
	// KindHTTPRequest represents an outbound HTTP call
	KindHTTPRequest NodeKind = "httpRequest"
	// KindAIModel represents an LLM completion node
	KindAIModel NodeKind = "aiModel"
	// KindIf represents a binary conditional branch
	KindIf NodeKind = "if"
	// KindSwitch represents a multi-case conditional branch
	KindSwitch NodeKind = "switch"
	// KindCode represents a user-script node
	KindCode NodeKind = "code"
	// KindTransform represents a declarative field-mapping node
	KindTransform NodeKind = "transform"
	// KindSubPipeline represents an embedded pipeline invocation
	KindSubPipeline NodeKind = "subPipeline"
	// KindGroup represents a collapsed visual grouping on the canvas
	KindGroup NodeKind = "group"
)

// IsTrigger reports whether the kind is a pipeline entry point.
func (k NodeKind) IsTrigger() bool {
	switch k {
	case KindManualTrigger, KindWebhookTrigger, KindScheduleTrigger:
		return true
	}
	return false
}

// IsBranching reports whether the kind routes control flow across
// mutually exclusive output handles.
func (k NodeKind) IsBranching() bool {
	return k == KindIf || k == KindSwitch
}

// IsExpensive reports whether the kind is costly to execute. Consumed
// by the complexity advisory only.
func (k NodeKind) IsExpensive() bool {
	return k == KindAIModel
}

// Node represents a vertex in the canvas graph
// PRINCIPLES:
// - KISS: Simple node representation
// - SRP: Only responsible for node data, not validation policy
type Node struct {
	ID     string         `json:"id"`
	Kind   NodeKind       `json:"kind"`
	Name   string         `json:"name,omitempty"`
	Config map[string]any `json:"config,omitempty"`
}

// ConfigString returns the named config value as a string. Missing keys
// and non-string values yield the empty string.
func (n *Node) ConfigString(key string) string {
	if n == nil || n.Config == nil {
		return ""
	}
	s, _ := n.Config[key].(string)
	return s
}

// ConfigNumber returns the named config value as a float64 together
// with a flag indicating whether a numeric value was present. JSON
// decoding yields float64 for all numbers; int is accepted for graphs
// built in code.
func (n *Node) ConfigNumber(key string) (float64, bool) {
	if n == nil || n.Config == nil {
		return 0, false
	}
	switch v := n.Config[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// GroupID returns the id of the visual group this node belongs to, or
// the empty string when ungrouped.
func (n *Node) GroupID() string {
	return n.ConfigString("group")
}

// Validate ensures node integrity.
func (n *Node) Validate() error {
	if n == nil {
		return ErrNilNode
	}
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if n.Kind == "" {
		return ErrInvalidNodeKind
	}
	return nil
}
