package validation

import (
	"github.com/KaushalJainAI/workflow-assistant-sub000/internal/core/graph"
)

// checkBranches runs the structural checks specific to branching node
// kinds: a binary branch needs a condition and ideally both paths, a
// multi-case branch needs enough cases and a default path.
func checkBranches(s *snapshot) []Finding {
	var findings []Finding
	for _, id := range s.order {
		n := s.nodes[id]
		switch n.Kind {
		case graph.KindIf:
			findings = append(findings, checkIfNode(s, n)...)
		case graph.KindSwitch:
			findings = append(findings, checkSwitchNode(s, n)...)
		}
	}
	return findings
}

func checkIfNode(s *snapshot, n *graph.Node) []Finding {
	var findings []Finding
	if n.ConfigString("condition") == "" {
		findings = append(findings, errorf(CodeMissingCondition, n.ID, "condition",
			"branch node %q has no condition expression", displayName(n)))
	}

	var hasTrue, hasFalse bool
	for _, adj := range s.forward[n.ID] {
		switch adj.edge.SourceHandle {
		case graph.HandleTrue:
			hasTrue = true
		case graph.HandleFalse:
			hasFalse = true
		}
	}
	switch {
	case !hasTrue && !hasFalse:
		findings = append(findings, warnf(CodeNoConditionalOutputs, n.ID, "",
			"branch node %q has neither output connected", displayName(n)))
	case hasTrue && !hasFalse:
		findings = append(findings, warnf(CodeNoElsePath, n.ID, "",
			"branch node %q has no else path connected", displayName(n)))
	}
	return findings
}

// minSwitchCases is the number of cases below which a switch node adds
// nothing over an if node.
const minSwitchCases = 2

func checkSwitchNode(s *snapshot, n *graph.Node) []Finding {
	var findings []Finding

	cases, _ := n.Config["cases"].([]any)
	if len(cases) < minSwitchCases {
		findings = append(findings, warnf(CodeInsufficientCases, n.ID, "cases",
			"switch node %q declares %d case(s); at least %d expected", displayName(n), len(cases), minSwitchCases))
	}

	hasDefault := false
	for _, adj := range s.forward[n.ID] {
		if adj.edge.SourceHandle == graph.HandleDefault {
			hasDefault = true
			break
		}
	}
	if !hasDefault {
		findings = append(findings, warnf(CodeNoDefaultCase, n.ID, "",
			"switch node %q has no default path connected", displayName(n)))
	}
	return findings
}
