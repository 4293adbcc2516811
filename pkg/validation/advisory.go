package validation

import (
	"time"

	"github.com/KaushalJainAI/workflow-assistant-sub000/internal/core/graph"
)

// Advisory thresholds. These are heuristics, never hard limits; every
// advisory finding is a warning.
const (
	advisoryMaxNodes        = 50
	advisoryMaxAINodes      = 5
	advisoryMaxSubPipelines = 3

	// defaultNodeTimeout is assumed when a node declares none.
	defaultNodeTimeout = 30 * time.Second
	// advisoryRuntimeBudget is the cumulative timeout budget above
	// which the estimated runtime is surfaced.
	advisoryRuntimeBudget = 5 * time.Minute

	defaultMaxNestingDepth = 3
)

// checkAdvisories emits the non-blocking complexity and cost heuristics:
// raw node count, expensive-node count, sub-pipeline count, cumulative
// timeout budget and visual-group nesting depth.
func checkAdvisories(s *snapshot, maxNestingDepth int) []Finding {
	var findings []Finding

	if n := len(s.order); n > advisoryMaxNodes {
		findings = append(findings, warnf(CodeExcessiveNodes, "", "",
			"pipeline has %d nodes (advisory limit %d); consider splitting it", n, advisoryMaxNodes))
	}

	var aiNodes, subPipelines int
	var budget time.Duration
	for _, id := range s.order {
		n := s.nodes[id]
		if n.Kind.IsExpensive() {
			aiNodes++
		}
		if n.Kind == graph.KindSubPipeline {
			subPipelines++
		}
		if secs, ok := n.ConfigNumber("timeoutSeconds"); ok && secs > 0 {
			budget += time.Duration(secs * float64(time.Second))
		} else {
			budget += defaultNodeTimeout
		}
	}

	if aiNodes > advisoryMaxAINodes {
		findings = append(findings, warnf(CodeExcessiveAINodes, "", "",
			"pipeline has %d AI nodes (advisory limit %d); runs may be slow and costly", aiNodes, advisoryMaxAINodes))
	}
	if subPipelines > advisoryMaxSubPipelines {
		findings = append(findings, warnf(CodeExcessiveSubPipelines, "", "",
			"pipeline embeds %d sub-pipelines (advisory limit %d)", subPipelines, advisoryMaxSubPipelines))
	}
	if budget > advisoryRuntimeBudget {
		findings = append(findings, warnf(CodeLongEstimatedRuntime, "", "",
			"estimated worst-case runtime %s exceeds the %s budget", budget, advisoryRuntimeBudget))
	}

	findings = append(findings, checkNesting(s, maxNestingDepth)...)
	return findings
}

// checkNesting bounds how deeply visual groups nest. Group parentage is
// declared on the group node itself via the parentGroup config key.
func checkNesting(s *snapshot, maxDepth int) []Finding {
	if maxDepth <= 0 {
		maxDepth = defaultMaxNestingDepth
	}
	groups := s.groupIDs()

	depth := func(id string) int {
		d := 1
		seen := map[string]bool{id: true}
		for {
			parent := s.nodes[id].ConfigString("parentGroup")
			if parent == "" || !groups[parent] || seen[parent] {
				return d
			}
			seen[parent] = true
			id = parent
			d++
		}
	}

	var findings []Finding
	for _, id := range s.order {
		if !groups[id] {
			continue
		}
		if d := depth(id); d > maxDepth {
			findings = append(findings, warnf(CodeExcessiveNesting, id, "",
				"group %q is nested %d levels deep (limit %d)", displayName(s.nodes[id]), d, maxDepth))
		}
	}
	return findings
}
