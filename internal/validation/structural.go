// Package validation implements the structural (S1-S5) and semantic
// (M1-M2) validation rules and the orchestrator that composes them with
// the graph index and planner into a single pass/fail result.
package validation

import (
	"fmt"

	"github.com/agentforge/core/internal/graph"
	"github.com/agentforge/core/pkg/model"
)

// checkInvalidEdgeReference is S2: every edge's source and target must
// resolve to a node in the same workflow. Both endpoints of one edge may
// fail independently.
func checkInvalidEdgeReference(w *model.Workflow) *model.ValidationResult {
	result := &model.ValidationResult{}
	for _, e := range w.OrderedEdges() {
		if _, ok := w.Nodes[e.Source]; !ok {
			result.AddError(model.ErrCodeInvalidEdgeReference,
				fmt.Sprintf("edge %q references unknown source node %q", e.Id, e.Source),
				nil, []model.EdgeId{e.Id})
		}
		if _, ok := w.Nodes[e.Target]; !ok {
			result.AddError(model.ErrCodeInvalidEdgeReference,
				fmt.Sprintf("edge %q references unknown target node %q", e.Id, e.Target),
				nil, []model.EdgeId{e.Id})
		}
	}
	return result
}

// checkDuplicateEdge is S3: no two edges may share
// (source, sourcePort, target, targetPort). On collision, the colliding
// EdgeIds are named together in insertion order.
func checkDuplicateEdge(w *model.Workflow) *model.ValidationResult {
	result := &model.ValidationResult{}

	type key struct {
		source, target         model.NodeId
		sourcePort, targetPort model.PortId
	}
	seen := make(map[key][]model.EdgeId)
	var keyOrder []key
	for _, e := range w.OrderedEdges() {
		k := key{e.Source, e.Target, e.SourcePort, e.TargetPort}
		if _, ok := seen[k]; !ok {
			keyOrder = append(keyOrder, k)
		}
		seen[k] = append(seen[k], e.Id)
	}

	for _, k := range keyOrder {
		ids := seen[k]
		if len(ids) < 2 {
			continue
		}
		result.AddError(model.ErrCodeDuplicateEdge,
			fmt.Sprintf("edges %v duplicate connection %s:%s -> %s:%s", ids, k.source, k.sourcePort, k.target, k.targetPort),
			nil, ids)
	}
	return result
}

// checkNoEntryNode is S4: the workflow must have at least one node, and at
// least one of them must have in-degree zero.
func checkNoEntryNode(w *model.Workflow, idx *graph.Index) *model.ValidationResult {
	result := &model.ValidationResult{}
	if len(w.Nodes) == 0 {
		result.AddError(model.ErrCodeNoEntryNode, "workflow has no nodes", nil, nil)
		return result
	}
	if len(idx.EntryNodes()) == 0 {
		result.AddError(model.ErrCodeNoEntryNode, "workflow has no entry nodes: every node has at least one incoming edge", nil, nil)
	}
	return result
}

// checkCycleDetected is S1: the graph must be acyclic. Uses a three-colour
// DFS (unvisited/visiting/visited) over workflow-insertion-ordered starting
// nodes so reports are deterministic; one error is emitted per independent
// cycle found, naming the participating nodes.
func checkCycleDetected(w *model.Workflow, idx *graph.Index) *model.ValidationResult {
	result := &model.ValidationResult{}

	const (
		white = 0 // unvisited
		gray  = 1 // visiting (on the current recursion stack)
		black = 2 // visited (fully explored)
	)
	color := make(map[model.NodeId]int, len(w.Nodes))
	var stack []model.NodeId

	var visit func(node model.NodeId)
	visit = func(node model.NodeId) {
		color[node] = gray
		stack = append(stack, node)

		for _, edgeId := range idx.OutgoingEdges(node) {
			edge, ok := idx.Edge(edgeId)
			if !ok {
				continue
			}
			next := edge.Target
			switch color[next] {
			case white:
				visit(next)
			case gray:
				cycle := cycleFromStack(stack, next)
				result.AddError(model.ErrCodeCycleDetected,
					fmt.Sprintf("cycle detected through nodes %v", cycle), cycle, nil)
			}
		}

		stack = stack[:len(stack)-1]
		color[node] = black
	}

	for _, id := range w.NodeOrder {
		if color[id] == white {
			visit(id)
		}
	}

	return result
}

// cycleFromStack returns the slice of stack from the back-edge target to
// the top, the node IDs participating in one discovered cycle.
func cycleFromStack(stack []model.NodeId, target model.NodeId) []model.NodeId {
	for i, id := range stack {
		if id == target {
			cycle := make([]model.NodeId, len(stack)-i)
			copy(cycle, stack[i:])
			return cycle
		}
	}
	return []model.NodeId{target}
}

// checkOrphanNode is S5: every node must lie on some path from an entry
// node to an exit node. Assumes the graph is acyclic (run after S1 passes)
// so the two BFS passes terminate.
//
// A node with in-degree 0 seeds the forward search only if it also has an
// outgoing edge; otherwise it is disconnected from everything and seeding
// from it would trivially mark it "reachable from entry" by virtue of
// being its own starting point, masking exactly the case this rule exists
// to catch. Exit nodes are filtered the same way for the backward search.
func checkOrphanNode(w *model.Workflow, idx *graph.Index) *model.ValidationResult {
	result := &model.ValidationResult{}

	var forwardSeeds []model.NodeId
	for _, id := range idx.EntryNodes() {
		if idx.OutDegree(id) > 0 {
			forwardSeeds = append(forwardSeeds, id)
		}
	}
	var backwardSeeds []model.NodeId
	for _, id := range idx.ExitNodes() {
		if idx.InDegree(id) > 0 {
			backwardSeeds = append(backwardSeeds, id)
		}
	}

	reachableFromEntry := bfs(forwardSeeds, idx.OutgoingEdges, func(e model.Edge) model.NodeId { return e.Target }, idx)
	reachesExit := bfs(backwardSeeds, idx.IncomingEdges, func(e model.Edge) model.NodeId { return e.Source }, idx)

	var orphans []model.NodeId
	for _, id := range w.NodeOrder {
		if !reachableFromEntry[id] && !reachesExit[id] {
			orphans = append(orphans, id)
		}
	}

	if len(orphans) > 0 {
		result.AddError(model.ErrCodeOrphanNode,
			fmt.Sprintf("nodes %v are unreachable from any entry node and cannot reach any exit node", orphans),
			orphans, nil)
	}
	return result
}

// bfs walks idx starting from roots, following edges via next (source or
// target depending on direction), and returns the set of visited node IDs.
func bfs(roots []model.NodeId, edgesOf func(model.NodeId) []model.EdgeId, next func(model.Edge) model.NodeId, idx *graph.Index) map[model.NodeId]bool {
	visited := make(map[model.NodeId]bool, len(roots))
	queue := append([]model.NodeId(nil), roots...)
	for _, r := range roots {
		visited[r] = true
	}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, edgeId := range edgesOf(node) {
			edge, ok := idx.Edge(edgeId)
			if !ok {
				continue
			}
			n := next(edge)
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return visited
}
