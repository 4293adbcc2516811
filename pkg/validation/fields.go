package validation

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/KaushalJainAI/workflow-assistant-sub000/internal/core/graph"
	"github.com/KaushalJainAI/workflow-assistant-sub000/internal/core/schema"
)

// vd performs single-value shape checks (URL syntax and the like).
var vd = validator.New()

// RefineFunc is a kind-specific refinement evaluated after the generic
// schema pass. New node kinds register their own refinement instead of
// patching the engine.
type RefineFunc func(n *graph.Node, sc *schema.NodeKindSchema) []Finding

var (
	refineMu    sync.RWMutex
	refinements = map[graph.NodeKind]RefineFunc{
		graph.KindAIModel:     refineAIModel,
		graph.KindHTTPRequest: refineHTTPRequest,
	}
)

// RegisterRefinement installs (or replaces) the refinement for a kind.
func RegisterRefinement(kind graph.NodeKind, fn RefineFunc) {
	refineMu.Lock()
	defer refineMu.Unlock()
	refinements[kind] = fn
}

func refinementFor(kind graph.NodeKind) (RefineFunc, bool) {
	refineMu.RLock()
	defer refineMu.RUnlock()
	fn, ok := refinements[kind]
	return fn, ok
}

// checkFields evaluates every node's configuration against its kind
// schema: required fields, credential presence, value-shape checks,
// then the kind's registered refinement. Nodes of unknown kinds are
// skipped; their schemas live outside this engine.
func checkFields(s *snapshot, lookup schema.LookupFunc) []Finding {
	var findings []Finding
	for _, id := range s.order {
		n := s.nodes[id]
		sc, ok := lookup(n.Kind)
		if !ok {
			continue
		}
		findings = append(findings, checkNodeFields(n, sc)...)
		if refine, ok := refinementFor(n.Kind); ok {
			findings = append(findings, refine(n, sc)...)
		}
	}
	return findings
}

func checkNodeFields(n *graph.Node, sc *schema.NodeKindSchema) []Finding {
	var findings []Finding
	for _, f := range sc.Fields {
		val, defined := fieldValue(n, f.ID)
		present := defined && val != ""

		if f.Credential {
			if !present {
				findings = append(findings, errorf(CodeMissingCredential, n.ID, f.ID,
					"node %q requires a credential for %q", displayName(n), f.ID))
			}
			continue
		}

		if f.Required && !present {
			findings = append(findings, missingValueFinding(n, f))
			continue
		}
		if !present {
			continue
		}

		switch f.Kind {
		case schema.ValueObject:
			if !json.Valid([]byte(val)) {
				findings = append(findings, errorf(CodeInvalidJSON, n.ID, f.ID,
					"field %q of node %q is not valid JSON", f.ID, displayName(n)))
			}
		case schema.ValueURL:
			if err := vd.Var(val, "url"); err != nil {
				findings = append(findings, errorf(CodeInvalidURL, n.ID, f.ID,
					"field %q of node %q is not a well-formed URL: %s", f.ID, displayName(n), val))
			}
		}
	}
	return findings
}

// missingValueFinding picks the taxonomy code for an absent required
// value: script and schedule fields carry dedicated codes so the editor
// can deep-link the right configuration panel.
func missingValueFinding(n *graph.Node, f schema.FieldDef) Finding {
	switch f.Kind {
	case schema.ValueCode:
		return errorf(CodeMissingCode, n.ID, f.ID,
			"node %q has an empty script body", displayName(n))
	case schema.ValueCron:
		return errorf(CodeMissingCron, n.ID, f.ID,
			"node %q has an empty schedule expression", displayName(n))
	default:
		return errorf(CodeMissingRequiredField, n.ID, f.ID,
			"node %q is missing required field %q", displayName(n), f.ID)
	}
}

// fieldValue resolves a config value to its string form. Non-string
// scalars count as defined; the empty-string rule applies to strings
// only.
func fieldValue(n *graph.Node, key string) (string, bool) {
	if n.Config == nil {
		return "", false
	}
	v, ok := n.Config[key]
	if !ok || v == nil {
		return "", false
	}
	if s, isStr := v.(string); isStr {
		return s, true
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", true
	}
	return string(b), true
}

// Temperature bounds for LLM nodes.
const (
	minTemperature = 0.0
	maxTemperature = 2.0
)

func refineAIModel(n *graph.Node, _ *schema.NodeKindSchema) []Finding {
	t, ok := n.ConfigNumber("temperature")
	if !ok {
		return nil
	}
	if t < minTemperature || t > maxTemperature {
		return []Finding{errorf(CodeInvalidTemperature, n.ID, "temperature",
			"temperature %.2f of node %q is outside [%.0f, %.0f]", t, displayName(n), minTemperature, maxTemperature)}
	}
	return nil
}

// mutatingMethods are HTTP methods that normally carry a request body.
var mutatingMethods = map[string]bool{"POST": true, "PUT": true, "PATCH": true}

func refineHTTPRequest(n *graph.Node, _ *schema.NodeKindSchema) []Finding {
	method := strings.ToUpper(n.ConfigString("method"))
	body, _ := fieldValue(n, "body")
	if mutatingMethods[method] && body == "" {
		return []Finding{warnf(CodeMissingBody, n.ID, "body",
			"%s request %q has no body", method, displayName(n))}
	}
	return nil
}
