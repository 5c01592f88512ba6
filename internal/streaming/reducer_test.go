package streaming

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentforge/core/pkg/model"
)

// Scenario G — Event reduction.
func TestView_ScenarioG(t *testing.T) {
	v := NewView(10)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	v.Reduce(Event{Kind: model.EventNodeQueued, Timestamp: start, Payload: NodePayload{NodeId: "n"}})
	v.Reduce(Event{Kind: model.EventNodeRunning, Timestamp: start.Add(time.Second), Payload: NodeRunningPayload{NodeId: "n", RetryCount: 0}})
	v.Reduce(Event{Kind: model.EventLogEmitted, Timestamp: start.Add(2 * time.Second), Payload: LogPayload{NodeId: "n", Level: model.LogLevelInfo, Message: "hi"}})
	v.Reduce(Event{Kind: model.EventNodeCompleted, Timestamp: start.Add(3 * time.Second), Payload: NodePayload{NodeId: "n"}})
	v.Reduce(Event{Kind: model.EventExecutionCompleted, Timestamp: start.Add(4 * time.Second)})

	state := v.NodeStates["n"]
	require.Equal(t, model.NodeExecutionCompleted, state.Status)
	require.NotNil(t, state.StartedAt)
	require.NotNil(t, state.CompletedAt)
	assert.True(t, state.StartedAt.Before(*state.CompletedAt))

	require.Len(t, v.Logs, 1)
	assert.Equal(t, "hi", v.Logs[0].Message)

	assert.Equal(t, model.ExecutionStatusCompleted, v.ExecutionStatus)
}

func TestView_DuplicateTerminalEventIsIdempotent(t *testing.T) {
	v := NewView(10)
	now := time.Now()

	v.Reduce(Event{Kind: model.EventNodeQueued, Timestamp: now, Payload: NodePayload{NodeId: "n"}})
	v.Reduce(Event{Kind: model.EventNodeRunning, Timestamp: now, Payload: NodeRunningPayload{NodeId: "n"}})
	v.Reduce(Event{Kind: model.EventNodeCompleted, Timestamp: now, Payload: NodePayload{NodeId: "n"}})
	first := v.NodeStates["n"]

	// Apply the same terminal event again.
	v.Reduce(Event{Kind: model.EventNodeCompleted, Timestamp: now.Add(time.Minute), Payload: NodePayload{NodeId: "n"}})
	second := v.NodeStates["n"]

	assert.Equal(t, first, second, "a duplicate terminal event must not change the state")
}

func TestView_UnknownEventKindIsNoOp(t *testing.T) {
	v := NewView(10)
	v.Reduce(Event{Kind: model.EventKind("SOMETHING_NEW"), Timestamp: time.Now()})
	assert.Empty(t, v.NodeStates)
	assert.Equal(t, model.ExecutionStatusPending, v.ExecutionStatus)
}

func TestView_CacheHitGoesStraightToCompleted(t *testing.T) {
	v := NewView(10)
	now := time.Now()

	v.Reduce(Event{Kind: model.EventNodeQueued, Timestamp: now, Payload: NodePayload{NodeId: "n"}})
	v.Reduce(Event{Kind: model.EventNodeCacheHit, Timestamp: now, Payload: NodePayload{NodeId: "n"}})

	state := v.NodeStates["n"]
	assert.Equal(t, model.NodeExecutionCompleted, state.Status)
	assert.Nil(t, state.StartedAt, "cache hit never passes through running, so startedAt is never set")
}

func TestView_SkippedFromPending(t *testing.T) {
	v := NewView(10)
	v.Reduce(Event{Kind: model.EventNodeSkipped, Timestamp: time.Now(), Payload: NodeSkippedPayload{NodeId: "n", Reason: "upstream failed"}})

	state := v.NodeStates["n"]
	assert.Equal(t, model.NodeExecutionSkipped, state.Status)
}

func TestView_LogRingBufferBounded(t *testing.T) {
	v := NewView(2)
	now := time.Now()
	for i := 0; i < 5; i++ {
		v.Reduce(Event{Kind: model.EventLogEmitted, Timestamp: now, Payload: LogPayload{NodeId: "n", Level: model.LogLevelInfo, Message: "line"}})
	}
	assert.Len(t, v.Logs, 2)
}
