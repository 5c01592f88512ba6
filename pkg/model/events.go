package model

// EventKind enumerates the server-to-client event vocabulary of the
// execution event contract. Producer and consumer implementations only
// need to agree on this set and the payload shapes in
// internal/streaming/event.go to interoperate.
type EventKind string

const (
	EventConnected          EventKind = "CONNECTED"
	EventExecutionStarted   EventKind = "EXECUTION_STARTED"
	EventExecutionCompleted EventKind = "EXECUTION_COMPLETED"
	EventExecutionFailed    EventKind = "EXECUTION_FAILED"
	EventExecutionCancelled EventKind = "EXECUTION_CANCELLED"
	EventNodeQueued         EventKind = "NODE_QUEUED"
	EventNodeRunning        EventKind = "NODE_RUNNING"
	EventNodeCompleted      EventKind = "NODE_COMPLETED"
	EventNodeFailed         EventKind = "NODE_FAILED"
	EventNodeSkipped        EventKind = "NODE_SKIPPED"
	EventNodeCacheHit       EventKind = "NODE_CACHE_HIT"
	EventLogEmitted         EventKind = "LOG_EMITTED"
	EventResumeStart        EventKind = "RESUME_START"
	EventNodeOutputReused   EventKind = "NODE_OUTPUT_REUSED"
	EventResumeComplete     EventKind = "RESUME_COMPLETE"
	EventAck                EventKind = "ACK"
	EventError              EventKind = "ERROR"
)

// LogLevel is the severity of a LOG_EMITTED event's payload.
type LogLevel string

const (
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// ClientAction is the action field of a client-to-server subscription
// message.
type ClientAction string

const (
	ClientActionSubscribe   ClientAction = "subscribe"
	ClientActionUnsubscribe ClientAction = "unsubscribe"
)
