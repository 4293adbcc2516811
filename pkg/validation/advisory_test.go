package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaushalJainAI/workflow-assistant-sub000/internal/core/graph"
)

func TestCheckAdvisories_NodeCount(t *testing.T) {
	var nodes []*graph.Node
	for i := 0; i < advisoryMaxNodes+1; i++ {
		nodes = append(nodes, node(fmt.Sprintf("n%d", i), kindIntegration, nil))
	}
	s := adapt(nodes, nil)

	got := codes(checkAdvisories(s, 0))
	assert.Contains(t, got, CodeExcessiveNodes)
}

func TestCheckAdvisories_AINodeCount(t *testing.T) {
	var nodes []*graph.Node
	for i := 0; i < advisoryMaxAINodes+1; i++ {
		nodes = append(nodes, node(fmt.Sprintf("ai%d", i), graph.KindAIModel, nil))
	}
	s := adapt(nodes, nil)

	got := codes(checkAdvisories(s, 0))
	assert.Contains(t, got, CodeExcessiveAINodes)
}

func TestCheckAdvisories_SubPipelineCount(t *testing.T) {
	var nodes []*graph.Node
	for i := 0; i < advisoryMaxSubPipelines+1; i++ {
		nodes = append(nodes, node(fmt.Sprintf("sp%d", i), graph.KindSubPipeline, nil))
	}
	s := adapt(nodes, nil)

	got := codes(checkAdvisories(s, 0))
	assert.Contains(t, got, CodeExcessiveSubPipelines)
}

func TestCheckAdvisories_RuntimeBudget(t *testing.T) {
	t.Run("declared timeouts add up", func(t *testing.T) {
		s := adapt([]*graph.Node{
			node("a", kindIntegration, map[string]any{"timeoutSeconds": 200}),
			node("b", kindIntegration, map[string]any{"timeoutSeconds": 200}),
		}, nil)

		got := codes(checkAdvisories(s, 0))
		assert.Contains(t, got, CodeLongEstimatedRuntime)
	})

	t.Run("default per-node timeout applies", func(t *testing.T) {
		// 11 nodes at the 30s default exceed the 5m budget.
		var nodes []*graph.Node
		for i := 0; i < 11; i++ {
			nodes = append(nodes, node(fmt.Sprintf("n%d", i), kindIntegration, nil))
		}
		s := adapt(nodes, nil)

		got := codes(checkAdvisories(s, 0))
		assert.Contains(t, got, CodeLongEstimatedRuntime)
	})

	t.Run("small pipeline stays quiet", func(t *testing.T) {
		s := adapt([]*graph.Node{
			node("a", kindIntegration, nil),
			node("b", kindIntegration, nil),
		}, nil)

		assert.Empty(t, checkAdvisories(s, 0))
	})
}

func TestCheckNesting(t *testing.T) {
	group := func(id, parent string) *graph.Node {
		cfg := map[string]any{}
		if parent != "" {
			cfg["parentGroup"] = parent
		}
		return node(id, graph.KindGroup, cfg)
	}

	t.Run("within limit", func(t *testing.T) {
		s := adapt([]*graph.Node{group("g1", ""), group("g2", "g1")}, nil)
		assert.Empty(t, checkNesting(s, 2))
	})

	t.Run("too deep", func(t *testing.T) {
		s := adapt([]*graph.Node{
			group("g1", ""),
			group("g2", "g1"),
			group("g3", "g2"),
		}, nil)

		findings := checkNesting(s, 2)
		require.Len(t, findings, 1)
		assert.Equal(t, CodeExcessiveNesting, findings[0].Code)
		assert.Equal(t, "g3", findings[0].NodeID)
	})

	t.Run("parent cycle terminates", func(t *testing.T) {
		s := adapt([]*graph.Node{group("g1", "g2"), group("g2", "g1")}, nil)
		// Must not loop forever; depth caps at the cycle boundary.
		assert.Empty(t, checkNesting(s, 3))
	})
}
