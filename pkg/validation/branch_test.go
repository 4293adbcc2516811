package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaushalJainAI/workflow-assistant-sub000/internal/core/graph"
)

func TestCheckBranches_If(t *testing.T) {
	t.Run("missing condition", func(t *testing.T) {
		s := adapt(
			[]*graph.Node{
				node("if", graph.KindIf, nil),
				node("a", kindIntegration, nil),
				node("b", kindIntegration, nil),
			},
			[]*graph.Edge{
				edgeH("e1", "if", "a", graph.HandleTrue),
				edgeH("e2", "if", "b", graph.HandleFalse),
			},
		)

		findings := checkBranches(s)
		require.Len(t, findings, 1)
		assert.Equal(t, CodeMissingCondition, findings[0].Code)
		assert.Equal(t, SeverityError, findings[0].Type)
	})

	t.Run("no outputs connected", func(t *testing.T) {
		s := adapt([]*graph.Node{node("if", graph.KindIf, map[string]any{"condition": "x"})}, nil)

		findings := checkBranches(s)
		require.Len(t, findings, 1)
		assert.Equal(t, CodeNoConditionalOutputs, findings[0].Code)
		assert.Equal(t, SeverityWarning, findings[0].Type)
	})

	t.Run("only true branch connected", func(t *testing.T) {
		s := adapt(
			[]*graph.Node{
				node("if", graph.KindIf, map[string]any{"condition": "x"}),
				node("a", kindIntegration, nil),
			},
			[]*graph.Edge{edgeH("e1", "if", "a", graph.HandleTrue)},
		)

		findings := checkBranches(s)
		require.Len(t, findings, 1)
		assert.Equal(t, CodeNoElsePath, findings[0].Code)
	})

	t.Run("both branches connected", func(t *testing.T) {
		s := adapt(
			[]*graph.Node{
				node("if", graph.KindIf, map[string]any{"condition": "x"}),
				node("a", kindIntegration, nil),
				node("b", kindIntegration, nil),
			},
			[]*graph.Edge{
				edgeH("e1", "if", "a", graph.HandleTrue),
				edgeH("e2", "if", "b", graph.HandleFalse),
			},
		)

		assert.Empty(t, checkBranches(s))
	})
}

func TestCheckBranches_Switch(t *testing.T) {
	t.Run("too few cases and no default", func(t *testing.T) {
		s := adapt(
			[]*graph.Node{node("sw", graph.KindSwitch, map[string]any{
				"expression": "$.status",
				"cases":      []any{"active"},
			})},
			nil,
		)

		got := codes(checkBranches(s))
		assert.Equal(t, []Code{CodeInsufficientCases, CodeNoDefaultCase}, got)
	})

	t.Run("well-formed switch", func(t *testing.T) {
		s := adapt(
			[]*graph.Node{
				node("sw", graph.KindSwitch, map[string]any{
					"expression": "$.status",
					"cases":      []any{"active", "archived"},
				}),
				node("a", kindIntegration, nil),
				node("b", kindIntegration, nil),
				node("c", kindIntegration, nil),
			},
			[]*graph.Edge{
				edgeH("e1", "sw", "a", "case:0"),
				edgeH("e2", "sw", "b", "case:1"),
				edgeH("e3", "sw", "c", graph.HandleDefault),
			},
		)

		assert.Empty(t, checkBranches(s))
	})
}
