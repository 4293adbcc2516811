package validation

// cycleResult reports the DAG invariant check. When a cycle exists the
// sets carry the nodes and edges on the DFS path at the moment of
// detection.
type cycleResult struct {
	isAcyclic    bool
	cycleNodeIDs map[string]bool
	cycleEdgeIDs map[string]bool
}

// Three-coloring DFS states.
const (
	colorWhite = iota // unvisited
	colorGray         // on the current DFS path
	colorBlack        // done
)

// detectCycles verifies the DAG invariant with a three-color DFS.
// Roots are taken in input order, so when several cycles exist the one
// reported first is deterministic but depends on node ordering; that is
// intentional and documented behavior, not an accident.
// When ignoreErrorHandles is set, edges leaving through the error
// handle are excluded: exception routing is not a control-flow
// back-edge.
func detectCycles(s *snapshot, ignoreErrorHandles bool) cycleResult {
	res := cycleResult{
		isAcyclic:    true,
		cycleNodeIDs: make(map[string]bool),
		cycleEdgeIDs: make(map[string]bool),
	}

	color := make(map[string]int, len(s.order))

	type pathEntry struct {
		nodeID string
		edgeID string // edge taken to reach nodeID, "" for the root
	}
	var path []pathEntry

	// capture records the cycle closed by edge (u -> v, edgeID) where v
	// is gray: the path segment from v onward plus the closing edge.
	capture := func(v, edgeID string) {
		start := 0
		for i := range path {
			if path[i].nodeID == v {
				start = i
				break
			}
		}
		for _, p := range path[start:] {
			res.cycleNodeIDs[p.nodeID] = true
			if p.edgeID != "" {
				res.cycleEdgeIDs[p.edgeID] = true
			}
		}
		res.cycleEdgeIDs[edgeID] = true
		// The root of the segment was reached by the closing edge, so
		// drop any edge recorded before the segment start.
		delete(res.cycleEdgeIDs, path[start].edgeID)
	}

	var dfs func(u string) bool
	dfs = func(u string) bool {
		color[u] = colorGray
		for _, adj := range s.forward[u] {
			if ignoreErrorHandles && adj.edge.IsErrorRoute() {
				continue
			}
			switch color[adj.target] {
			case colorGray:
				capture(adj.target, adj.edgeID)
				return true
			case colorWhite:
				path = append(path, pathEntry{nodeID: adj.target, edgeID: adj.edgeID})
				if dfs(adj.target) {
					return true
				}
				path = path[:len(path)-1]
			}
		}
		color[u] = colorBlack
		return false
	}

	for _, id := range s.order {
		if color[id] != colorWhite {
			continue
		}
		path = path[:0]
		path = append(path, pathEntry{nodeID: id})
		if dfs(id) {
			res.isAcyclic = false
			return res
		}
	}
	return res
}

// checkCycles turns the cycle result into findings: one error for the
// cycle itself plus one warning per participating node to help the user
// locate it on the canvas.
func checkCycles(s *snapshot, ignoreErrorHandles bool) []Finding {
	res := detectCycles(s, ignoreErrorHandles)
	if res.isAcyclic {
		return nil
	}
	findings := []Finding{errorf(CodeCycleDetected, "", "",
		"pipeline contains a cycle through %d nodes; execution would never terminate", len(res.cycleNodeIDs))}
	for _, id := range s.order {
		if res.cycleNodeIDs[id] {
			findings = append(findings, warnf(CodeNodeInCycle, id, "",
				"node %q participates in a cycle", displayName(s.nodes[id])))
		}
	}
	return findings
}
