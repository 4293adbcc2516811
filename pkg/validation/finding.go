// Package validation implements the static soundness check run against
// a canvas graph snapshot before it may be saved or executed. All local
// analyzers are pure functions over an immutable snapshot; the only
// suspending component is the optional backend bridge.
package validation

import "fmt"

// Severity partitions findings by how they affect the save/execute gate.
type Severity string

const (
	// SeverityError blocks saving and execution
	SeverityError Severity = "error"
	// SeverityWarning is reported but does not block
	SeverityWarning Severity = "warning"
	// SeverityInfo is a neutral fact
	SeverityInfo Severity = "info"
)

// Code identifies a finding within the closed, versioned taxonomy.
// Codes are stable across releases; new checks add codes, existing
// codes never change meaning.
type Code string

const (
	// Structural
	CodeMalformedInput  Code = "MALFORMED_INPUT"
	CodeUnknownEdgeNode Code = "UNKNOWN_EDGE_NODE"
	CodeEmptyPipeline   Code = "EMPTY_PIPELINE"
	CodeCycleDetected   Code = "CYCLE_DETECTED"
	CodeNodeInCycle     Code = "NODE_IN_CYCLE"
	CodeNoTrigger       Code = "NO_TRIGGER"
	CodeUnreachableNode Code = "UNREACHABLE_NODE"
	CodeConditionalNode Code = "CONDITIONALLY_REACHABLE"
	CodeOrphanNode      Code = "ORPHAN_NODE"

	// Fields and credentials
	CodeMissingRequiredField Code = "MISSING_REQUIRED_FIELD"
	CodeMissingCredential    Code = "MISSING_CREDENTIAL"
	CodeInvalidTemperature   Code = "INVALID_TEMPERATURE"
	CodeInvalidURL           Code = "INVALID_URL"
	CodeMissingBody          Code = "MISSING_BODY"
	CodeInvalidJSON          Code = "INVALID_JSON"
	CodeMissingCode          Code = "MISSING_CODE"
	CodeMissingCron          Code = "MISSING_CRON"

	// Conditional branches
	CodeMissingCondition     Code = "MISSING_CONDITION"
	CodeNoConditionalOutputs Code = "NO_CONDITIONAL_OUTPUTS"
	CodeNoElsePath           Code = "NO_ELSE_PATH"
	CodeInsufficientCases    Code = "INSUFFICIENT_CASES"
	CodeNoDefaultCase        Code = "NO_DEFAULT_CASE"

	// Advisory
	CodeExcessiveNodes        Code = "EXCESSIVE_NODES"
	CodeExcessiveAINodes      Code = "EXCESSIVE_AI_NODES"
	CodeExcessiveSubPipelines Code = "EXCESSIVE_SUB_PIPELINES"
	CodeLongEstimatedRuntime  Code = "LONG_ESTIMATED_RUNTIME"
	CodeExcessiveNesting      Code = "EXCESSIVE_NESTING"

	// Handles
	CodeInvalidSourceHandle Code = "INVALID_SOURCE_HANDLE"
	CodeInvalidTargetHandle Code = "INVALID_TARGET_HANDLE"

	// Backend bridge
	CodeBackendUnavailable Code = "BACKEND_VALIDATION_UNAVAILABLE"
)

// Finding is one reported issue. Findings are immutable value records;
// analyzers produce them, the aggregator only groups them.
type Finding struct {
	Type    Severity `json:"type"`
	Code    Code     `json:"code"`
	Message string   `json:"message"`
	NodeID  string   `json:"nodeId,omitempty"`
	Field   string   `json:"field,omitempty"`
}

// Result is the severity-partitioned validation report.
type Result struct {
	IsValid  bool      `json:"isValid"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
	Info     []Finding `json:"info"`
}

// add appends findings to their severity bucket and maintains IsValid.
func (r *Result) add(findings ...Finding) {
	for _, f := range findings {
		switch f.Type {
		case SeverityError:
			r.Errors = append(r.Errors, f)
			r.IsValid = false
		case SeverityWarning:
			r.Warnings = append(r.Warnings, f)
		default:
			r.Info = append(r.Info, f)
		}
	}
}

// Summary renders a short status line for display. Not part of the
// validity contract.
func (r *Result) Summary() string {
	switch {
	case len(r.Errors) > 0:
		return fmt.Sprintf("❌ %s • %s", plural(len(r.Errors), "error"), plural(len(r.Warnings), "warning"))
	case len(r.Warnings) > 0:
		return fmt.Sprintf("✅ No errors • ⚠️ %s", plural(len(r.Warnings), "warning"))
	default:
		return "✅ No errors"
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func errorf(code Code, nodeID, field, format string, args ...any) Finding {
	return Finding{Type: SeverityError, Code: code, Message: fmt.Sprintf(format, args...), NodeID: nodeID, Field: field}
}

func warnf(code Code, nodeID, field, format string, args ...any) Finding {
	return Finding{Type: SeverityWarning, Code: code, Message: fmt.Sprintf(format, args...), NodeID: nodeID, Field: field}
}

func infof(code Code, nodeID, field, format string, args ...any) Finding {
	return Finding{Type: SeverityInfo, Code: code, Message: fmt.Sprintf(format, args...), NodeID: nodeID, Field: field}
}
