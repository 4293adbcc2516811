package validation

// reachabilityResult classifies non-trigger nodes relative to the
// trigger set. The two sets are disjoint by construction.
type reachabilityResult struct {
	unreachable []string // input order
	conditional []string // input order
}

// analyzeReachability runs a multi-source BFS seeded by every
// trigger-kind node over the forward adjacency map. The traversal
// treats all edges as equally available, so nodes behind a branch are
// still visited; a visited node whose incoming edges all originate from
// branching nodes is classified conditionally reachable, because at run
// time only one branch is taken.
//
// Nodes with no incident edges at all are skipped here: the orphan
// detector owns that report, and double-flagging the same node as both
// orphaned and unreachable only produces noise.
func analyzeReachability(s *snapshot) reachabilityResult {
	var res reachabilityResult

	triggers := s.triggerIDs()
	if len(triggers) == 0 {
		// Everything is unreachable by definition; the aggregator
		// reports a single NO_TRIGGER error instead of one warning per
		// node.
		return res
	}

	visited := make(map[string]bool, len(s.order))
	queue := append([]string(nil), triggers...)
	for _, id := range triggers {
		visited[id] = true
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, adj := range s.forward[u] {
			if !visited[adj.target] {
				visited[adj.target] = true
				queue = append(queue, adj.target)
			}
		}
	}

	for _, id := range s.order {
		n := s.nodes[id]
		if n.Kind.IsTrigger() || s.degree[id] == 0 {
			continue
		}
		if !visited[id] {
			res.unreachable = append(res.unreachable, id)
			continue
		}
		if in := s.incoming[id]; len(in) > 0 && allBranchOrigins(s, in) {
			res.conditional = append(res.conditional, id)
		}
	}
	return res
}

func allBranchOrigins(s *snapshot, in []adjEdge) bool {
	for _, adj := range in {
		// adj.target holds the source node for incoming entries.
		if !s.nodes[adj.target].Kind.IsBranching() {
			return false
		}
	}
	return true
}

// checkReachability converts the analysis into findings: warnings for
// unreachable nodes, neutral info for conditionally reachable ones.
func checkReachability(s *snapshot) []Finding {
	res := analyzeReachability(s)
	var findings []Finding
	for _, id := range res.unreachable {
		findings = append(findings, warnf(CodeUnreachableNode, id, "",
			"node %q can never be reached from a trigger", displayName(s.nodes[id])))
	}
	for _, id := range res.conditional {
		findings = append(findings, infof(CodeConditionalNode, id, "",
			"node %q is only reached when a specific branch is taken", displayName(s.nodes[id])))
	}
	return findings
}

// checkOrphans flags nodes with no incident edges. Entry points stand
// alone legitimately, and nodes owned by a collapsed visual group may
// be wired only inside the group, which this engine does not unpack.
func checkOrphans(s *snapshot) []Finding {
	groups := s.groupIDs()
	var findings []Finding
	for _, id := range s.order {
		n := s.nodes[id]
		if s.degree[id] != 0 || n.Kind.IsTrigger() || groups[id] {
			continue
		}
		if gid := n.GroupID(); gid != "" && groups[gid] {
			continue
		}
		findings = append(findings, warnf(CodeOrphanNode, id, "",
			"node %q is not connected to anything", displayName(n)))
	}
	return findings
}
