package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaushalJainAI/workflow-assistant-sub000/pkg/validation"
)

func TestFromResult(t *testing.T) {
	res := &validation.Result{IsValid: true}
	res.Warnings = []validation.Finding{{
		Type:    validation.SeverityWarning,
		Code:    validation.CodeOrphanNode,
		Message: "node is not connected",
		NodeID:  "n1",
	}}

	resp := FromResult(res)

	assert.True(t, resp.IsValid)
	assert.NotNil(t, resp.Errors, "buckets must serialize as [] rather than null")
	assert.NotNil(t, resp.Info)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, "ORPHAN_NODE", resp.Warnings[0].Code)
	assert.Equal(t, "n1", resp.Warnings[0].NodeID)
	assert.Equal(t, "✅ No errors • ⚠️ 1 warning", resp.Summary)
}

func TestValidateResponse_WireShape(t *testing.T) {
	resp := FromResult(&validation.Result{IsValid: true})

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	// The wire contract is snake_case.
	assert.Contains(t, string(data), `"is_valid":true`)
	assert.Contains(t, string(data), `"errors":[]`)
}

func TestValidateRequest_Options(t *testing.T) {
	req := ValidateRequest{
		CheckCredentials:       true,
		CheckTypes:             true,
		CheckSubworkflowCycles: true,
		IgnoreErrorHandles:     true,
		MaxNestingDepth:        5,
	}

	opts := req.Options()
	assert.True(t, opts.CheckCredentials)
	assert.True(t, opts.CheckTypeCompatibility)
	assert.True(t, opts.CheckSubworkflowCycles)
	assert.True(t, opts.IgnoreErrorHandles)
	assert.Equal(t, 5, opts.MaxNestingDepth)
	assert.False(t, opts.ValidateWithBackend, "the service is the authority; it never recurses into a backend")
}
