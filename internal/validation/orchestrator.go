package validation

import (
	"github.com/agentforge/core/internal/graph"
	"github.com/agentforge/core/internal/planner"
	"github.com/agentforge/core/pkg/model"
)

// Orchestrator composes the structural and semantic rules with the graph
// index and planner into one pass/fail validation call.
type Orchestrator struct {
	// Registry supplies agent definitions for the semantic stage (M1, M2).
	// A nil Registry skips the semantic stage entirely.
	Registry AgentRegistry
	// FailFast stops after the first failing rule's errors instead of
	// accumulating every rule that can safely run.
	FailFast bool
}

// NewOrchestrator builds an Orchestrator. registry may be nil to validate
// structure only.
func NewOrchestrator(registry AgentRegistry) *Orchestrator {
	return &Orchestrator{Registry: registry}
}

// Validate runs the full rule pipeline against w and returns the aggregated
// result. Errors carry nodeId/edgeId context wherever the rule has offending
// elements to name (S4's NO_ENTRY_NODE errors carry none); a zero-error result is
// valid and carries the execution order computed by the planner over the
// same snapshot.
//
// Rule order: S2, S3, S4, S1, S5, then (with a registry) M1, M2. S2 and S1
// can each halt the pipeline early because later rules dereference edge
// endpoints (S2) or assume termination of a BFS over an acyclic graph (S1);
// every other rule accumulates and continues.
func (o *Orchestrator) Validate(w *model.Workflow) *model.ValidationResult {
	result := &model.ValidationResult{}

	invalidRefs := checkInvalidEdgeReference(w)
	result.Merge(invalidRefs)
	if !invalidRefs.Valid() {
		return result
	}
	if o.FailFast && !result.Valid() {
		return result
	}

	idx := graph.Build(w)

	result.Merge(checkDuplicateEdge(w))
	if o.FailFast && !result.Valid() {
		return result
	}

	result.Merge(checkNoEntryNode(w, idx))
	if o.FailFast && !result.Valid() {
		return result
	}

	cycles := checkCycleDetected(w, idx)
	result.Merge(cycles)
	if !cycles.Valid() {
		return result
	}
	if o.FailFast && !result.Valid() {
		return result
	}

	result.Merge(checkOrphanNode(w, idx))
	if o.FailFast && !result.Valid() {
		return result
	}

	if !result.Valid() && o.Registry == nil {
		return result
	}

	if o.Registry != nil {
		result.Merge(checkTypeMismatch(w, idx, o.Registry))
		if o.FailFast && !result.Valid() {
			return result
		}
		result.Merge(checkMissingRequiredInput(w, idx, o.Registry))
	}

	if !result.Valid() {
		return result
	}

	plan := planner.Plan(w, idx)
	if plan.CycleDetected {
		// Safety net: S1 should already have rejected this snapshot.
		result.AddError(model.ErrCodeCycleDetected, "planner detected a cycle the structural validator missed", nil, nil)
		return result
	}
	result.ExecutionOrder = plan.Order

	return result
}
