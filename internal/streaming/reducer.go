package streaming

import (
	"time"

	"github.com/agentforge/core/pkg/model"
)

// LogEntry is one ring-buffer log line retained by a View.
type LogEntry struct {
	NodeId    model.NodeId
	Level     model.LogLevel
	Message   string
	Timestamp time.Time
}

// View is the client-side folded state for a single execution-id: the
// running total of every node's state, the execution's own status, and a
// bounded ring buffer of the most recent log lines.
type View struct {
	ExecutionStatus model.ExecutionStatus
	NodeStates      map[model.NodeId]model.NodeExecutionState
	Logs            []LogEntry

	maxLogs int
}

// NewView creates an empty View. maxLogs bounds the log ring buffer; a
// non-positive value defaults to 100.
func NewView(maxLogs int) *View {
	if maxLogs <= 0 {
		maxLogs = 100
	}
	return &View{
		ExecutionStatus: model.ExecutionStatusPending,
		NodeStates:      make(map[model.NodeId]model.NodeExecutionState),
		maxLogs:         maxLogs,
	}
}

// Reduce applies event to the view in place. The reducer is total: unknown
// event kinds leave the view unchanged and are not stored anywhere in it,
// and duplicate terminal events (a
// second NODE_COMPLETED for an already-completed node, or a second
// EXECUTION_COMPLETED) leave the view unchanged.
func (v *View) Reduce(event Event) {
	switch event.Kind {
	case model.EventExecutionStarted:
		v.ExecutionStatus = model.ExecutionStatusRunning

	case model.EventExecutionCompleted:
		v.ExecutionStatus = model.ExecutionStatusCompleted

	case model.EventExecutionFailed:
		v.ExecutionStatus = model.ExecutionStatusFailed

	case model.EventExecutionCancelled:
		v.ExecutionStatus = model.ExecutionStatusCancelled

	case model.EventNodeQueued:
		p, ok := event.Payload.(NodePayload)
		if !ok {
			return
		}
		state := v.NodeStates[p.NodeId]
		if state.Status.IsTerminal() {
			return
		}
		state.NodeId = p.NodeId
		state.Status = model.NodeExecutionQueued
		v.NodeStates[p.NodeId] = state

	case model.EventNodeRunning:
		p, ok := event.Payload.(NodeRunningPayload)
		if !ok {
			return
		}
		state := v.NodeStates[p.NodeId]
		if state.Status.IsTerminal() {
			return
		}
		state.NodeId = p.NodeId
		state.Status = model.NodeExecutionRunning
		state.RetryCount = p.RetryCount
		if state.StartedAt == nil {
			started := event.Timestamp
			state.StartedAt = &started
		}
		v.NodeStates[p.NodeId] = state

	case model.EventNodeCompleted:
		p, ok := event.Payload.(NodePayload)
		if !ok {
			return
		}
		v.completeNode(p.NodeId, model.NodeExecutionCompleted, event.Timestamp, "")

	case model.EventNodeCacheHit:
		p, ok := event.Payload.(NodePayload)
		if !ok {
			return
		}
		v.completeNode(p.NodeId, model.NodeExecutionCompleted, event.Timestamp, "")

	case model.EventNodeFailed:
		p, ok := event.Payload.(NodeFailedPayload)
		if !ok {
			return
		}
		v.completeNode(p.NodeId, model.NodeExecutionFailed, event.Timestamp, p.Error)

	case model.EventNodeSkipped:
		p, ok := event.Payload.(NodeSkippedPayload)
		if !ok {
			return
		}
		state := v.NodeStates[p.NodeId]
		if state.Status.IsTerminal() {
			return
		}
		state.NodeId = p.NodeId
		state.Status = model.NodeExecutionSkipped
		completed := event.Timestamp
		state.CompletedAt = &completed
		v.NodeStates[p.NodeId] = state

	case model.EventLogEmitted:
		p, ok := event.Payload.(LogPayload)
		if !ok {
			return
		}
		v.appendLog(LogEntry{NodeId: p.NodeId, Level: p.Level, Message: p.Message, Timestamp: event.Timestamp})
	}
}

// completeNode transitions a node to a terminal status, setting
// CompletedAt from the causing event. A node already in a terminal status
// is left untouched, making repeated terminal events idempotent.
func (v *View) completeNode(id model.NodeId, status model.NodeExecutionStatus, at time.Time, errMsg string) {
	state := v.NodeStates[id]
	if state.Status.IsTerminal() {
		return
	}
	state.NodeId = id
	state.Status = status
	completed := at
	state.CompletedAt = &completed
	if errMsg != "" {
		state.Error = errMsg
	}
	v.NodeStates[id] = state
}

func (v *View) appendLog(entry LogEntry) {
	v.Logs = append(v.Logs, entry)
	if len(v.Logs) > v.maxLogs {
		v.Logs = v.Logs[len(v.Logs)-v.maxLogs:]
	}
}
