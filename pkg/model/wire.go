package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// workflowSchemaJSON is the JSON Schema (Draft 2020-12) for the wire form of
// a Workflow. It catches shape errors — unknown properties, wrong enum
// values, missing required fields — before the payload is even unmarshalled
// into a Workflow snapshot, so the DAG validator only ever has to reason
// about an in-memory snapshot, never raw I/O.
const workflowSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://agentforge.dev/schemas/workflow.json",
  "type": "object",
  "required": ["id", "nodes", "edges"],
  "properties": {
    "id": { "type": "string", "minLength": 1 },
    "status": {
      "type": "string",
      "enum": ["draft", "valid", "invalid", "archived"]
    },
    "meta": { "type": "object" },
    "nodes": {
      "type": "array",
      "items": { "$ref": "#/$defs/node" }
    },
    "edges": {
      "type": "array",
      "items": { "$ref": "#/$defs/edge" }
    }
  },
  "additionalProperties": false,
  "$defs": {
    "node": {
      "type": "object",
      "required": ["id", "type", "label"],
      "properties": {
        "id": { "type": "string", "minLength": 1 },
        "type": {
          "type": "string",
          "enum": ["agent", "tool", "input", "output"]
        },
        "label": { "type": "string" },
        "position": {
          "type": "object",
          "properties": {
            "x": { "type": "number" },
            "y": { "type": "number" }
          }
        },
        "config": { "type": "object" }
      },
      "additionalProperties": false
    },
    "edge": {
      "type": "object",
      "required": ["id", "source", "target"],
      "properties": {
        "id": { "type": "string", "minLength": 1 },
        "source": { "type": "string", "minLength": 1 },
        "sourcePort": { "type": "string" },
        "target": { "type": "string", "minLength": 1 },
        "targetPort": { "type": "string" }
      },
      "additionalProperties": false
    }
  }
}`

var (
	wireSchemaOnce     sync.Once
	wireSchemaCompiled *jsonschema.Schema
	wireSchemaErr      error
)

func compiledWireSchema() (*jsonschema.Schema, error) {
	wireSchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.AssertFormat()
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(workflowSchemaJSON))
		if err != nil {
			wireSchemaErr = fmt.Errorf("unmarshal workflow wire schema: %w", err)
			return
		}
		if err := c.AddResource("https://agentforge.dev/schemas/workflow.json", doc); err != nil {
			wireSchemaErr = fmt.Errorf("add workflow wire schema resource: %w", err)
			return
		}
		wireSchemaCompiled, wireSchemaErr = c.Compile("https://agentforge.dev/schemas/workflow.json")
	})
	return wireSchemaCompiled, wireSchemaErr
}

// wireNode and wireEdge mirror Node/Edge but as plain JSON DTOs — the wire
// format is an array (order-preserving), while Workflow.Nodes/Edges are
// maps with no inherent order. Array position is what supplies the
// deterministic order the validator and planner need.
type wireNode struct {
	Id       string          `json:"id"`
	Type     string          `json:"type"`
	Label    string          `json:"label"`
	Position NodePosition    `json:"position"`
	Config   json.RawMessage `json:"config,omitempty"`
}

type wireEdge struct {
	Id         string `json:"id"`
	Source     string `json:"source"`
	SourcePort string `json:"sourcePort,omitempty"`
	Target     string `json:"target"`
	TargetPort string `json:"targetPort,omitempty"`
}

type wireWorkflow struct {
	Id     string       `json:"id"`
	Status string       `json:"status,omitempty"`
	Meta   WorkflowMeta `json:"meta,omitempty"`
	Nodes  []wireNode   `json:"nodes"`
	Edges  []wireEdge   `json:"edges"`
}

// DecodeWorkflowJSON validates data against the Workflow wire schema, then
// builds an immutable Workflow snapshot preserving the array order as
// NodeOrder/EdgeOrder.
func DecodeWorkflowJSON(data []byte) (*Workflow, error) {
	schema, err := compiledWireSchema()
	if err != nil {
		return nil, NewError(ErrCodeMalformed, "workflow wire schema unavailable").WithCause(err)
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(data)))
	if err != nil {
		return nil, NewError(ErrCodeMalformed, "payload is not valid JSON").WithCause(err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, wireValidationError(err)
	}

	var w wireWorkflow
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, NewError(ErrCodeMalformed, "failed to decode workflow payload").WithCause(err)
	}

	status := WorkflowStatus(w.Status)
	if status == "" {
		status = WorkflowStatusDraft
	}

	wf := NewWorkflow(WorkflowId(w.Id), w.Meta)
	wf.Status = status

	for _, n := range w.Nodes {
		cfg, err := decodeNodeConfig(NodeType(n.Type), n.Config)
		if err != nil {
			return nil, NewErrorf(ErrCodeMalformed, "node %q has invalid config: %s", n.Id, err.Error())
		}
		wf.AddNode(Node{
			Id:       NodeId(n.Id),
			Type:     NodeType(n.Type),
			Label:    n.Label,
			Position: n.Position,
			Config:   cfg,
		})
	}

	for _, e := range w.Edges {
		sourcePort := e.SourcePort
		if sourcePort == "" {
			sourcePort = "output"
		}
		targetPort := e.TargetPort
		if targetPort == "" {
			targetPort = "input"
		}
		wf.AddEdge(Edge{
			Id:         EdgeId(e.Id),
			Source:     NodeId(e.Source),
			SourcePort: PortId(sourcePort),
			Target:     NodeId(e.Target),
			TargetPort: PortId(targetPort),
		})
	}

	return wf, nil
}

// decodeNodeConfig unmarshals a node's config and checks it against what
// nodeType requires: an "agent" or "tool" node with no agentId/toolId/
// parameters/dataType set at all has nothing for the orchestrator to act
// on, which is never valid regardless of what the DAG validator later
// decides about its edges.
func decodeNodeConfig(nodeType NodeType, raw json.RawMessage) (NodeConfig, error) {
	var cfg NodeConfig
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return NodeConfig{}, err
		}
	}

	if (nodeType == NodeTypeAgent || nodeType == NodeTypeTool) && cfg.IsZero() {
		return NodeConfig{}, NewErrorf(ErrCodeMalformed, "%q node requires a config", nodeType)
	}

	return cfg, nil
}

// wireValidationError converts a jsonschema.ValidationError into an
// AgentForgeError with actionable, per-violation messages.
func wireValidationError(err error) *AgentForgeError {
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return NewError(ErrCodeMalformed, err.Error())
	}

	violations := collectViolations(verr)
	if len(violations) == 0 {
		return NewError(ErrCodeMalformed, verr.Error())
	}
	if len(violations) == 1 {
		return NewError(ErrCodeMalformed, violations[0]).WithDetails(map[string]any{"violations": violations})
	}
	return NewErrorf(ErrCodeMalformed, "workflow payload failed schema validation with %d errors", len(violations)).
		WithDetails(map[string]any{"violations": violations})
}

func collectViolations(verr *jsonschema.ValidationError) []string {
	if len(verr.Causes) == 0 {
		loc := "/"
		if len(verr.InstanceLocation) > 0 {
			loc = "/" + strings.Join(verr.InstanceLocation, "/")
		}
		return []string{fmt.Sprintf("%s: %s", loc, verr.Error())}
	}
	var violations []string
	for _, cause := range verr.Causes {
		violations = append(violations, collectViolations(cause)...)
	}
	return violations
}
