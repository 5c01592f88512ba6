package registry

import (
	"context"
	"fmt"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/agentforge/core/pkg/model"
)

// MCPRegistry discovers agent definitions by listing tools from a live MCP
// server and converting each tool's JSON-Schema input shape into a
// PortSchema set. It is a read-only snapshot: Refresh must be called again
// to pick up tools registered after construction.
type MCPRegistry struct {
	client *mcpclient.Client
	agents map[model.AgentId]model.AgentDefinition
}

// NewMCPRegistry connects client (already constructed and initialized by
// the caller — stdio, SSE, or streamable-HTTP transport, chosen outside
// this package) and performs an initial Refresh.
func NewMCPRegistry(ctx context.Context, client *mcpclient.Client) (*MCPRegistry, error) {
	r := &MCPRegistry{client: client, agents: make(map[model.AgentId]model.AgentDefinition)}
	if err := r.Refresh(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// Refresh re-lists tools from the server and rebuilds the in-memory agent
// map. Cheap enough to call before a validation pass that needs an
// up-to-date registry.
func (r *MCPRegistry) Refresh(ctx context.Context) error {
	resp, err := r.client.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return fmt.Errorf("list tools: %w", err)
	}

	agents := make(map[model.AgentId]model.AgentDefinition, len(resp.Tools))
	for _, tool := range resp.Tools {
		def := toolToAgentDefinition(tool)
		agents[def.Id] = def
	}
	r.agents = agents
	return nil
}

// Lookup satisfies validation.AgentRegistry.
func (r *MCPRegistry) Lookup(id model.AgentId) (model.AgentDefinition, bool) {
	d, ok := r.agents[id]
	return d, ok
}

// toolToAgentDefinition derives an AgentDefinition from an MCP tool's
// declared JSON-Schema input shape. MCP tools have no typed output schema
// in the protocol, so every agent gets a single object-typed "result"
// output port; callers that need finer-grained output types should register a
// richer AgentDefinition directly via MapRegistry instead.
func toolToAgentDefinition(tool mcp.Tool) model.AgentDefinition {
	required := make(map[string]bool, len(tool.InputSchema.Required))
	for _, name := range tool.InputSchema.Required {
		required[name] = true
	}

	inputs := make([]model.PortSchema, 0, len(tool.InputSchema.Properties))
	for name, raw := range tool.InputSchema.Properties {
		inputs = append(inputs, model.PortSchema{
			Name:     name,
			Type:     jsonSchemaTypeToDataType(raw),
			Required: required[name],
		})
	}

	return model.AgentDefinition{
		Id:           model.AgentId(tool.Name),
		Name:         tool.Name,
		Category:     model.AgentCategoryIntegration,
		InputSchema:  inputs,
		OutputSchema: []model.PortSchema{{Name: "result", Type: model.DataTypeObject}},
	}
}

// jsonSchemaTypeToDataType maps a JSON Schema property's "type" keyword to
// the closest DataType. Schemas without a recognizable "type" default to
// object, matching the domain's treatment of opaque values.
func jsonSchemaTypeToDataType(property any) model.DataType {
	props, ok := property.(map[string]any)
	if !ok {
		return model.DataTypeObject
	}
	t, _ := props["type"].(string)
	switch t {
	case "string":
		return model.DataTypeString
	case "number", "integer":
		return model.DataTypeNumber
	case "boolean":
		return model.DataTypeBoolean
	case "array":
		return model.DataTypeArray
	default:
		return model.DataTypeObject
	}
}
