package model

// DataType enumerates the primitive types a port can carry. Comparison
// between a source and target port's DataType is strict equality — no
// coercion.
type DataType string

const (
	DataTypeString  DataType = "string"
	DataTypeNumber  DataType = "number"
	DataTypeBoolean DataType = "boolean"
	DataTypeObject  DataType = "object"
	DataTypeArray   DataType = "array"
)

// AgentCategory groups agent definitions for organization and filtering.
type AgentCategory string

const (
	AgentCategoryLLM         AgentCategory = "llm"
	AgentCategoryRetrieval   AgentCategory = "retrieval"
	AgentCategoryTransform   AgentCategory = "transform"
	AgentCategoryIntegration AgentCategory = "integration"
	AgentCategoryLogic       AgentCategory = "logic"
)

// PortSchema describes a single named, typed port on an agent's input or
// output schema.
type PortSchema struct {
	Name        string   `json:"name"`
	Type        DataType `json:"type"`
	Required    bool     `json:"required"`
	Description string   `json:"description,omitempty"`
}

// RetryPolicy configures how many times and with what backoff an agent's
// execution (out of scope here) should be retried on failure.
type RetryPolicy struct {
	MaxRetries        int     `json:"maxRetries"`
	BackoffMs         int     `json:"backoffMs"`
	BackoffMultiplier float64 `json:"backoffMultiplier"`
}

// AgentDefinition is the template/blueprint an "agent" node references by
// AgentId. It is not itself part of a Workflow snapshot — it's looked up
// from an AgentRegistry (internal/validation) during semantic validation.
type AgentDefinition struct {
	Id            AgentId        `json:"id"`
	Name          string         `json:"name"`
	Category      AgentCategory  `json:"category"`
	InputSchema   []PortSchema   `json:"inputSchema"`
	OutputSchema  []PortSchema   `json:"outputSchema"`
	DefaultConfig map[string]any `json:"defaultConfig,omitempty"`
	Cacheable     bool           `json:"cacheable"`
	RetryPolicy   RetryPolicy    `json:"retryPolicy"`
}

// InputPort returns the input port schema named name, or false if absent.
func (a AgentDefinition) InputPort(name PortId) (PortSchema, bool) {
	for _, p := range a.InputSchema {
		if p.Name == string(name) {
			return p, true
		}
	}
	return PortSchema{}, false
}

// OutputPort returns the output port schema named name, or false if absent.
func (a AgentDefinition) OutputPort(name PortId) (PortSchema, bool) {
	for _, p := range a.OutputSchema {
		if p.Name == string(name) {
			return p, true
		}
	}
	return PortSchema{}, false
}
