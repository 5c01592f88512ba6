package model

// NodeType is the category of a node, determining which shape its Config
// takes and how the semantic validator treats its edges.
type NodeType string

const (
	NodeTypeAgent  NodeType = "agent"
	NodeTypeTool   NodeType = "tool"
	NodeTypeInput  NodeType = "input"
	NodeTypeOutput NodeType = "output"
)

// NodePosition is the node's canvas coordinates. Visual only; ignored by
// every validator and planner rule.
type NodePosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeConfig is a tagged record keyed on the owning Node's Type. Only the
// fields relevant to that type are populated; the zero value of an
// irrelevant field is never inspected by the validator.
type NodeConfig struct {
	// AgentId identifies the agent definition an "agent" node invokes.
	AgentId AgentId `json:"agentId,omitempty"`
	// ToolId identifies the tool a "tool" node invokes.
	ToolId string `json:"toolId,omitempty"`
	// Parameters carries agent/tool invocation arguments, keyed by name.
	// Values may be literals or parameter templates (see internal/templates).
	Parameters map[string]any `json:"parameters,omitempty"`
	// DataType declares the type an "input" or "output" node's single port
	// carries. Meaningless for agent/tool nodes.
	DataType DataType `json:"dataType,omitempty"`
}

// IsZero reports whether c is the empty config (no agent, tool, params, or
// declared data type).
func (c NodeConfig) IsZero() bool {
	return c.AgentId == "" && c.ToolId == "" && len(c.Parameters) == 0 && c.DataType == ""
}

// Node is a single vertex in a workflow's DAG.
type Node struct {
	Id       NodeId       `json:"id"`
	Type     NodeType     `json:"type"`
	Label    string       `json:"label"`
	Position NodePosition `json:"position"`
	Config   NodeConfig   `json:"config"`
}
