package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaushalJainAI/workflow-assistant-sub000/internal/core/graph"
)

func TestDetectCycles_Acyclic(t *testing.T) {
	s := adapt(
		[]*graph.Node{
			node("t", graph.KindManualTrigger, nil),
			node("a", kindIntegration, nil),
			node("b", kindIntegration, nil),
			node("c", kindIntegration, nil),
		},
		[]*graph.Edge{
			edge("e1", "t", "a"),
			edge("e2", "t", "b"),
			edge("e3", "a", "c"),
			edge("e4", "b", "c"),
		},
	)

	res := detectCycles(s, false)
	assert.True(t, res.isAcyclic)
	assert.Empty(t, res.cycleNodeIDs)
	assert.Empty(t, res.cycleEdgeIDs)
}

func TestDetectCycles_BackEdge(t *testing.T) {
	s := adapt(
		[]*graph.Node{
			node("a", kindIntegration, nil),
			node("b", kindIntegration, nil),
			node("c", kindIntegration, nil),
		},
		[]*graph.Edge{
			edge("e1", "a", "b"),
			edge("e2", "b", "c"),
			edge("e3", "c", "a"), // back-edge
		},
	)

	res := detectCycles(s, false)
	assert.False(t, res.isAcyclic)
	// Both endpoints of the closing edge are in the reported set.
	assert.True(t, res.cycleNodeIDs["c"])
	assert.True(t, res.cycleNodeIDs["a"])
	assert.True(t, res.cycleEdgeIDs["e3"])
}

func TestDetectCycles_SelfLoop(t *testing.T) {
	s := adapt(
		[]*graph.Node{node("a", kindIntegration, nil)},
		[]*graph.Edge{edge("e1", "a", "a")},
	)

	res := detectCycles(s, false)
	assert.False(t, res.isAcyclic)
	assert.True(t, res.cycleNodeIDs["a"])
	assert.True(t, res.cycleEdgeIDs["e1"])
}

func TestDetectCycles_FirstCycleInInputOrder(t *testing.T) {
	// Two disjoint cycles; the one rooted at the earlier input node is
	// the one reported.
	s := adapt(
		[]*graph.Node{
			node("a", kindIntegration, nil),
			node("b", kindIntegration, nil),
			node("c", kindIntegration, nil),
			node("d", kindIntegration, nil),
		},
		[]*graph.Edge{
			edge("e1", "a", "b"),
			edge("e2", "b", "a"),
			edge("e3", "c", "d"),
			edge("e4", "d", "c"),
		},
	)

	res := detectCycles(s, false)
	require.False(t, res.isAcyclic)
	assert.True(t, res.cycleNodeIDs["a"])
	assert.True(t, res.cycleNodeIDs["b"])
	assert.False(t, res.cycleNodeIDs["c"])
	assert.False(t, res.cycleNodeIDs["d"])
}

func TestDetectCycles_IgnoreErrorHandles(t *testing.T) {
	nodes := []*graph.Node{
		node("a", kindIntegration, nil),
		node("b", kindIntegration, nil),
	}
	edges := []*graph.Edge{
		edge("e1", "a", "b"),
		edgeH("e2", "b", "a", graph.HandleError), // exception routing
	}
	s := adapt(nodes, edges)

	assert.False(t, detectCycles(s, false).isAcyclic)
	assert.True(t, detectCycles(s, true).isAcyclic,
		"error-routing edges are not control-flow back-edges when the caller opts in")
}

func TestCheckCycles_Findings(t *testing.T) {
	s := adapt(
		[]*graph.Node{
			node("b", kindIntegration, nil),
			node("a", kindIntegration, nil),
		},
		[]*graph.Edge{
			edge("e1", "a", "b"),
			edge("e2", "b", "a"),
		},
	)

	findings := checkCycles(s, false)
	require.Len(t, findings, 3)
	assert.Equal(t, CodeCycleDetected, findings[0].Code)
	assert.Equal(t, SeverityError, findings[0].Type)
	// Per-node warnings follow input order.
	assert.Equal(t, "b", findings[1].NodeID)
	assert.Equal(t, "a", findings[2].NodeID)
}
