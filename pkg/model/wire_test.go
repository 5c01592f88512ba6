package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validLinearWorkflow = `{
  "id": "wf-1",
  "nodes": [
    {"id": "in", "type": "input", "label": "in"},
    {"id": "out", "type": "output", "label": "out"}
  ],
  "edges": [
    {"id": "e1", "source": "in", "target": "out"}
  ]
}`

func TestDecodeWorkflowJSON_Valid(t *testing.T) {
	wf, err := DecodeWorkflowJSON([]byte(validLinearWorkflow))
	require.NoError(t, err)
	assert.Equal(t, WorkflowId("wf-1"), wf.Id)
	assert.Equal(t, WorkflowStatusDraft, wf.Status)
	assert.Len(t, wf.Nodes, 2)
	assert.Equal(t, []NodeId{"in", "out"}, wf.NodeOrder)
}

func TestDecodeWorkflowJSON_MalformedJSON(t *testing.T) {
	_, err := DecodeWorkflowJSON([]byte(`{"id": "wf-1", "nodes": [`))
	require.Error(t, err)

	afErr, ok := err.(*AgentForgeError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeMalformed, afErr.Code)
}

func TestDecodeWorkflowJSON_SchemaViolation_UnknownProperty(t *testing.T) {
	_, err := DecodeWorkflowJSON([]byte(`{"id": "wf-1", "nodes": [], "edges": [], "notAField": true}`))
	require.Error(t, err)

	afErr, ok := err.(*AgentForgeError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeMalformed, afErr.Code)
}

func TestDecodeWorkflowJSON_SchemaViolation_MultipleCauses(t *testing.T) {
	// Missing "id" on the workflow and an invalid node "type" enum value:
	// two independent schema violations, exercising collectViolations'
	// multi-cause path and wireValidationError's "multiple errors" branch.
	payload := `{
	  "nodes": [
	    {"id": "n1", "type": "not-a-real-type", "label": "n1"}
	  ],
	  "edges": []
	}`
	_, err := DecodeWorkflowJSON([]byte(payload))
	require.Error(t, err)

	afErr, ok := err.(*AgentForgeError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeMalformed, afErr.Code)
	violations, ok := afErr.Details["violations"].([]string)
	require.True(t, ok)
	assert.GreaterOrEqual(t, len(violations), 2)
}

func TestDecodeWorkflowJSON_AgentNodeRequiresConfig(t *testing.T) {
	payload := `{
	  "id": "wf-2",
	  "nodes": [
	    {"id": "a", "type": "agent", "label": "a"}
	  ],
	  "edges": []
	}`
	_, err := DecodeWorkflowJSON([]byte(payload))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a config")
}

func TestDecodeWorkflowJSON_AgentNodeWithConfigIsAccepted(t *testing.T) {
	payload := `{
	  "id": "wf-3",
	  "nodes": [
	    {"id": "a", "type": "agent", "label": "a", "config": {"agentId": "summarizer"}}
	  ],
	  "edges": []
	}`
	wf, err := DecodeWorkflowJSON([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, AgentId("summarizer"), wf.Nodes["a"].Config.AgentId)
}

func TestDecodeWorkflowJSON_InputNodeWithoutConfigIsAccepted(t *testing.T) {
	// input/output nodes have no required config fields, unlike agent/tool.
	wf, err := DecodeWorkflowJSON([]byte(validLinearWorkflow))
	require.NoError(t, err)
	assert.True(t, wf.Nodes["in"].Config.IsZero())
}

func TestNodeConfig_IsZero(t *testing.T) {
	assert.True(t, NodeConfig{}.IsZero())
	assert.False(t, NodeConfig{AgentId: "x"}.IsZero())
	assert.False(t, NodeConfig{ToolId: "x"}.IsZero())
	assert.False(t, NodeConfig{Parameters: map[string]any{"k": "v"}}.IsZero())
	assert.False(t, NodeConfig{DataType: DataTypeString}.IsZero())
}
