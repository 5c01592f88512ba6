package registry

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"

	"github.com/agentforge/core/pkg/model"
)

func TestToolToAgentDefinition_MapsPropertiesAndRequired(t *testing.T) {
	tool := mcp.Tool{
		Name: "summarize",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"text":  map[string]any{"type": "string"},
				"limit": map[string]any{"type": "integer"},
			},
			Required: []string{"text"},
		},
	}

	def := toolToAgentDefinition(tool)

	assert.Equal(t, model.AgentId("summarize"), def.Id)
	assert.Equal(t, "summarize", def.Name)
	assert.Equal(t, model.AgentCategoryIntegration, def.Category)
	assert.Len(t, def.InputSchema, 2)
	assert.Equal(t, []model.PortSchema{{Name: "result", Type: model.DataTypeObject}}, def.OutputSchema)

	var text, limit model.PortSchema
	for _, p := range def.InputSchema {
		switch p.Name {
		case "text":
			text = p
		case "limit":
			limit = p
		}
	}
	assert.Equal(t, model.DataTypeString, text.Type)
	assert.True(t, text.Required)
	assert.Equal(t, model.DataTypeNumber, limit.Type)
	assert.False(t, limit.Required)
}

func TestToolToAgentDefinition_NoProperties(t *testing.T) {
	tool := mcp.Tool{Name: "ping"}

	def := toolToAgentDefinition(tool)
	assert.Equal(t, model.AgentId("ping"), def.Id)
	assert.Empty(t, def.InputSchema)
}

func TestJSONSchemaTypeToDataType(t *testing.T) {
	cases := []struct {
		name string
		prop any
		want model.DataType
	}{
		{"string", map[string]any{"type": "string"}, model.DataTypeString},
		{"number", map[string]any{"type": "number"}, model.DataTypeNumber},
		{"integer", map[string]any{"type": "integer"}, model.DataTypeNumber},
		{"boolean", map[string]any{"type": "boolean"}, model.DataTypeBoolean},
		{"array", map[string]any{"type": "array"}, model.DataTypeArray},
		{"object", map[string]any{"type": "object"}, model.DataTypeObject},
		{"missing type", map[string]any{}, model.DataTypeObject},
		{"not a map", "not-a-schema", model.DataTypeObject},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, jsonSchemaTypeToDataType(tc.prop))
		})
	}
}
