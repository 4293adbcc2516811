package validation

import (
	"github.com/KaushalJainAI/workflow-assistant-sub000/internal/core/graph"
)

// adjEdge is one forward-adjacency entry: a target node plus the edge
// that reaches it.
type adjEdge struct {
	target string
	edgeID string
	edge   *graph.Edge
}

// snapshot is the adapted, read-only view of the input graph every
// analyzer consumes. It tolerates partially malformed input: edges
// whose endpoints resolve to no node are dropped from the adjacency
// structures and reported as warnings instead of aborting the run.
type snapshot struct {
	order    []string // node ids in input order
	nodes    map[string]*graph.Node
	edges    []*graph.Edge
	forward  map[string][]adjEdge
	incoming map[string][]adjEdge
	degree   map[string]int // incident edge count, either direction
	findings []Finding
}

// adapt normalizes raw node and edge lists into canonical adjacency
// structures. This is the only component allowed to tolerate malformed
// input without failing the run.
func adapt(nodes []*graph.Node, edges []*graph.Edge) *snapshot {
	s := &snapshot{
		nodes:    make(map[string]*graph.Node, len(nodes)),
		forward:  make(map[string][]adjEdge),
		incoming: make(map[string][]adjEdge),
		degree:   make(map[string]int),
	}

	for _, n := range nodes {
		if err := n.Validate(); err != nil {
			s.findings = append(s.findings, warnf(CodeMalformedInput, "", "",
				"skipping malformed node: %v", err))
			continue
		}
		if _, dup := s.nodes[n.ID]; dup {
			s.findings = append(s.findings, warnf(CodeMalformedInput, n.ID, "",
				"duplicate node id %q, keeping the first occurrence", n.ID))
			continue
		}
		s.nodes[n.ID] = n
		s.order = append(s.order, n.ID)
	}

	for _, e := range edges {
		if err := e.Validate(); err != nil {
			s.findings = append(s.findings, warnf(CodeMalformedInput, "", "",
				"skipping malformed edge: %v", err))
			continue
		}
		if _, ok := s.nodes[e.Source]; !ok {
			s.findings = append(s.findings, warnf(CodeUnknownEdgeNode, e.Source, "",
				"edge %s references unknown source node %q", e.ID, e.Source))
			continue
		}
		if _, ok := s.nodes[e.Target]; !ok {
			s.findings = append(s.findings, warnf(CodeUnknownEdgeNode, e.Target, "",
				"edge %s references unknown target node %q", e.ID, e.Target))
			continue
		}
		s.edges = append(s.edges, e)
		entry := adjEdge{target: e.Target, edgeID: e.ID, edge: e}
		s.forward[e.Source] = append(s.forward[e.Source], entry)
		s.incoming[e.Target] = append(s.incoming[e.Target], adjEdge{target: e.Source, edgeID: e.ID, edge: e})
		s.degree[e.Source]++
		s.degree[e.Target]++
	}

	return s
}

// displayName prefers the user-visible node name over the opaque id.
func displayName(n *graph.Node) string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID
}

// triggerIDs returns the trigger-kind node ids in input order.
func (s *snapshot) triggerIDs() []string {
	var out []string
	for _, id := range s.order {
		if s.nodes[id].Kind.IsTrigger() {
			out = append(out, id)
		}
	}
	return out
}

// groupIDs returns the set of node ids that are group nodes.
func (s *snapshot) groupIDs() map[string]bool {
	out := make(map[string]bool)
	for _, id := range s.order {
		if s.nodes[id].Kind == graph.KindGroup {
			out[id] = true
		}
	}
	return out
}
