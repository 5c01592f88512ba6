// Package model defines the AgentForge workflow graph core: nodes, edges,
// workflows, agent definitions, and executions. Types here are value-typed
// and carry no behavior beyond construction and light accessors; the DAG
// validator in internal/validation and the planner in internal/planner
// operate on immutable snapshots of these types.
package model

import "github.com/google/uuid"

// NodeId, EdgeId, PortId, WorkflowId, ExecutionId, and AgentId are opaque,
// globally-unique-within-scope identifiers. They are distinct string types
// (not a bare `string`) so a NodeId can't be passed where an AgentId is
// expected and vice versa — the compiler catches cross-kind ID mix-ups
// that a bare string would let through silently.
type (
	NodeId      string
	EdgeId      string
	PortId      string
	WorkflowId  string
	ExecutionId string
	AgentId     string
)

// NewNodeId generates a random NodeId. Callers that already have a stable
// identifier (e.g. restoring from storage) should not use this.
func NewNodeId() NodeId { return NodeId(uuid.New().String()) }

// NewEdgeId generates a random EdgeId.
func NewEdgeId() EdgeId { return EdgeId(uuid.New().String()) }

// NewWorkflowId generates a random WorkflowId.
func NewWorkflowId() WorkflowId { return WorkflowId(uuid.New().String()) }

// NewExecutionId generates a random ExecutionId.
func NewExecutionId() ExecutionId { return ExecutionId(uuid.New().String()) }
