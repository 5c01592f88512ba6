package model

import "time"

// ExecutionStatus is the lifecycle state of an Execution.
type ExecutionStatus string

const (
	ExecutionStatusPending   ExecutionStatus = "pending"
	ExecutionStatusRunning   ExecutionStatus = "running"
	ExecutionStatusCompleted ExecutionStatus = "completed"
	ExecutionStatusFailed    ExecutionStatus = "failed"
	ExecutionStatusCancelled ExecutionStatus = "cancelled"
)

// NodeExecutionStatus is the lifecycle state of a single node within an
// Execution: pending -> queued -> running -> {completed | failed}, or
// -> skipped when an upstream dependency fails.
type NodeExecutionStatus string

const (
	NodeExecutionPending   NodeExecutionStatus = "pending"
	NodeExecutionQueued    NodeExecutionStatus = "queued"
	NodeExecutionRunning   NodeExecutionStatus = "running"
	NodeExecutionCompleted NodeExecutionStatus = "completed"
	NodeExecutionFailed    NodeExecutionStatus = "failed"
	NodeExecutionSkipped   NodeExecutionStatus = "skipped"
)

// NodeExecutionState is the per-node execution record owned by an
// Execution.
type NodeExecutionState struct {
	NodeId      NodeId              `json:"nodeId"`
	Status      NodeExecutionStatus `json:"status"`
	StartedAt   *time.Time          `json:"startedAt,omitempty"`
	CompletedAt *time.Time          `json:"completedAt,omitempty"`
	RetryCount  int                 `json:"retryCount"`
	Error       string              `json:"error,omitempty"`
	Output      any                 `json:"output,omitempty"`
}

// Execution is created from a valid Workflow snapshot. It is immutable once
// its Status reaches a terminal value (completed, failed, cancelled).
type Execution struct {
	Id              ExecutionId                   `json:"id"`
	WorkflowId      WorkflowId                    `json:"workflowId"`
	WorkflowVersion int                           `json:"workflowVersion"`
	Status          ExecutionStatus               `json:"status"`
	TriggeredBy     string                        `json:"triggeredBy"`
	CreatedAt       time.Time                     `json:"createdAt"`
	StartedAt       *time.Time                    `json:"startedAt,omitempty"`
	CompletedAt     *time.Time                    `json:"completedAt,omitempty"`
	Inputs          map[string]any                `json:"inputs"`
	Outputs         map[string]any                `json:"outputs,omitempty"`
	NodeStates      map[NodeId]NodeExecutionState `json:"nodeStates"`
}

// IsTerminal reports whether s is one of the three terminal execution
// statuses after which the Execution is immutable.
func (s ExecutionStatus) IsTerminal() bool {
	switch s {
	case ExecutionStatusCompleted, ExecutionStatusFailed, ExecutionStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether s is one of the terminal per-node statuses:
// completed, failed, or skipped. Terminal node states are final for the
// life of an execution (a resume creates a new execution id instead of
// mutating this one).
func (s NodeExecutionStatus) IsTerminal() bool {
	switch s {
	case NodeExecutionCompleted, NodeExecutionFailed, NodeExecutionSkipped:
		return true
	default:
		return false
	}
}
