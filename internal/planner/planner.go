// Package planner implements the topological execution planner: Kahn's
// algorithm over a graph.Index, producing a deterministic execution order
// plus a parallel-level assignment.
package planner

import (
	"sort"

	"github.com/agentforge/core/internal/graph"
	"github.com/agentforge/core/pkg/model"
)

// Result is the outcome of Plan: either a full execution order or a cycle
// failure. This is a safety net — the structural validator's cycle check
// should already have rejected the workflow by the time Plan runs.
type Result struct {
	Order         []model.NodeId
	CycleDetected bool
	// Levels assigns each node a parallel execution level: entry nodes are
	// level 0; every other node is 1 + max(level of its predecessors).
	// Nodes sharing a level have no dependency relationship and may run
	// concurrently.
	Levels map[model.NodeId]int
}

// Plan runs Kahn's algorithm starting from w's entry nodes in
// workflow-insertion order, breaking ties FIFO so the sort is stable and
// deterministic. Nodes freed by the same predecessor are enqueued in
// workflow-insertion order, so edge insertion order never affects the
// result. idx must have been built from the same Workflow snapshot.
func Plan(w *model.Workflow, idx *graph.Index) Result {
	inDegree := make(map[model.NodeId]int, len(w.Nodes))
	position := make(map[model.NodeId]int, len(w.Nodes))
	for i, id := range w.NodeOrder {
		inDegree[id] = idx.InDegree(id)
		position[id] = i
	}

	queue := append([]model.NodeId(nil), idx.EntryNodes()...)

	order := make([]model.NodeId, 0, len(w.Nodes))
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		var ready []model.NodeId
		for _, edgeId := range idx.OutgoingEdges(node) {
			edge, ok := idx.Edge(edgeId)
			if !ok {
				continue
			}
			inDegree[edge.Target]--
			if inDegree[edge.Target] == 0 {
				ready = append(ready, edge.Target)
			}
		}
		sort.Slice(ready, func(i, j int) bool { return position[ready[i]] < position[ready[j]] })
		queue = append(queue, ready...)
	}

	if len(order) != len(w.Nodes) {
		return Result{CycleDetected: true}
	}

	return Result{Order: order, Levels: computeLevels(order, idx)}
}

// computeLevels assigns each node in order (already topologically sorted) a
// level equal to 1 + the max level among its direct predecessors, with
// entry nodes (no predecessors) at level 0.
func computeLevels(order []model.NodeId, idx *graph.Index) map[model.NodeId]int {
	levels := make(map[model.NodeId]int, len(order))
	for _, node := range order {
		maxPred := -1
		for _, edgeId := range idx.IncomingEdges(node) {
			edge, ok := idx.Edge(edgeId)
			if !ok {
				continue
			}
			if l, ok := levels[edge.Source]; ok && l > maxPred {
				maxPred = l
			}
		}
		levels[node] = maxPred + 1
	}
	return levels
}
