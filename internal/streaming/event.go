// Package streaming implements the execution event contract: the
// server-side hub that fans events out to per-execution subscribers, and
// the client-side reducer that folds a received event stream into a live
// view of node and execution status.
package streaming

import (
	"time"

	"github.com/agentforge/core/pkg/model"
)

// Event is a single server-to-client record. Payload's concrete type
// depends on Kind; see the payload structs below.
type Event struct {
	Kind        model.EventKind   `json:"event"`
	ExecutionId model.ExecutionId `json:"executionId"`
	Timestamp   time.Time         `json:"timestamp"`
	Payload     any               `json:"payload,omitempty"`
}

// ConnectedPayload accompanies CONNECTED.
type ConnectedPayload struct {
	ConnectionId string `json:"connectionId"`
	UserId       string `json:"userId"`
	TenantId     string `json:"tenantId"`
	Role         string `json:"role"`
}

// NodePayload accompanies NODE_QUEUED and NODE_COMPLETED and NODE_CACHE_HIT.
type NodePayload struct {
	NodeId model.NodeId `json:"nodeId"`
}

// NodeRunningPayload accompanies NODE_RUNNING.
type NodeRunningPayload struct {
	NodeId     model.NodeId `json:"nodeId"`
	RetryCount int          `json:"retryCount"`
}

// NodeFailedPayload accompanies NODE_FAILED.
type NodeFailedPayload struct {
	NodeId model.NodeId `json:"nodeId"`
	Error  string       `json:"error"`
}

// NodeSkippedPayload accompanies NODE_SKIPPED.
type NodeSkippedPayload struct {
	NodeId model.NodeId `json:"nodeId"`
	Reason string       `json:"reason"`
}

// LogPayload accompanies LOG_EMITTED.
type LogPayload struct {
	NodeId  model.NodeId   `json:"nodeId"`
	Level   model.LogLevel `json:"level"`
	Message string         `json:"message"`
}

// ResumeStartPayload accompanies RESUME_START.
type ResumeStartPayload struct {
	ParentExecutionId model.ExecutionId `json:"parentExecutionId"`
	ResumedFromNodeId model.NodeId      `json:"resumedFromNodeId"`
	SkippedCount      int               `json:"skippedCount"`
	RerunCount        int               `json:"rerunCount"`
}

// NodeOutputReusedPayload accompanies NODE_OUTPUT_REUSED.
type NodeOutputReusedPayload struct {
	NodeId            model.NodeId      `json:"nodeId"`
	SourceExecutionId model.ExecutionId `json:"sourceExecutionId"`
}

// ResumeCompletePayload accompanies RESUME_COMPLETE.
type ResumeCompletePayload struct {
	Status model.ExecutionStatus `json:"status"`
}

// ErrorPayload accompanies ERROR.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ClientMessage is a client-to-server subscribe/unsubscribe request.
type ClientMessage struct {
	Action      model.ClientAction `json:"action"`
	ExecutionId model.ExecutionId  `json:"executionId"`
}
