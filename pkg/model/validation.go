package model

// ValidationIssue is a single validation problem with node/edge context so a
// client can highlight the exact offending nodes and edges.
type ValidationIssue struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	NodeIds []NodeId `json:"nodeIds,omitempty"`
	EdgeIds []EdgeId `json:"edgeIds,omitempty"`
}

// ValidationResult is the outcome of a validator rule, or of the full
// orchestrator pipeline. A rule may produce zero or more issues; the
// orchestrator merges rules' results in a fixed, documented order so
// clients can rely on which error surfaces first.
type ValidationResult struct {
	Errors         []ValidationIssue `json:"errors,omitempty"`
	ExecutionOrder []NodeId          `json:"executionOrder,omitempty"`
}

// Valid reports whether r has no errors. A zero-value ValidationResult is
// valid.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// AddError appends an error with the given code, message, and optional
// node/edge context.
func (r *ValidationResult) AddError(code, message string, nodeIds []NodeId, edgeIds []EdgeId) {
	r.Errors = append(r.Errors, ValidationIssue{
		Code: code, Message: message, NodeIds: nodeIds, EdgeIds: edgeIds,
	})
}

// Merge appends other's errors onto r. ExecutionOrder is never merged — it
// is only ever set once, by the orchestrator, on a fully valid result.
func (r *ValidationResult) Merge(other *ValidationResult) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
}
