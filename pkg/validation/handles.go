package validation

import (
	"strings"

	"github.com/KaushalJainAI/workflow-assistant-sub000/internal/core/graph"
	"github.com/KaushalJainAI/workflow-assistant-sub000/internal/core/schema"
)

// switchCasePrefix marks per-node dynamic output handles of switch
// nodes ("case:0", "case:1", ...). They are declared by the node, not
// the kind schema.
const switchCasePrefix = "case:"

// checkHandles cross-checks explicit edge handle ids against the handle
// sets the node kind schema declares. A stale handle reference is a
// warning, not an error: it should not block saving on its own.
func checkHandles(s *snapshot, lookup schema.LookupFunc) []Finding {
	var findings []Finding
	for _, e := range s.edges {
		if e.SourceHandle != "" {
			src := s.nodes[e.Source]
			if sc, ok := lookup(src.Kind); ok && !validOutput(src.Kind, sc, e.SourceHandle) {
				findings = append(findings, warnf(CodeInvalidSourceHandle, e.Source, "",
					"edge %s leaves node %q through unknown handle %q", e.ID, displayName(src), e.SourceHandle))
			}
		}
		if e.TargetHandle != "" {
			dst := s.nodes[e.Target]
			if sc, ok := lookup(dst.Kind); ok && !sc.HasInput(e.TargetHandle) {
				findings = append(findings, warnf(CodeInvalidTargetHandle, e.Target, "",
					"edge %s enters node %q through unknown handle %q", e.ID, displayName(dst), e.TargetHandle))
			}
		}
	}
	return findings
}

func validOutput(kind graph.NodeKind, sc *schema.NodeKindSchema, handle string) bool {
	if sc.HasOutput(handle) {
		return true
	}
	return kind == graph.KindSwitch && strings.HasPrefix(handle, switchCasePrefix)
}
