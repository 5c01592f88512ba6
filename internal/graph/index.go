// Package graph builds the adjacency structures the structural validator
// (internal/validation) and planner (internal/planner) share, so neither
// has to walk a Workflow's edge map on its own. Every function here is pure
// and O(V+E).
package graph

import "github.com/agentforge/core/pkg/model"

// Index is the set of adjacency structures derived from a single Workflow
// snapshot. Build it once per validation/planning pass and share it across
// rules.
type Index struct {
	workflow *model.Workflow

	// adjacency maps a node to its outgoing edge IDs, in edge-insertion
	// order.
	adjacency map[model.NodeId][]model.EdgeId
	// reverse maps a node to its incoming edge IDs, in edge-insertion
	// order.
	reverse map[model.NodeId][]model.EdgeId
	// inDegree counts edges whose target resolves to the node and whose
	// source also resolves (an edge with a missing endpoint is present in
	// the workflow but ignored for in-degree; the missing-endpoint
	// condition itself is surfaced by the structural validator).
	inDegree map[model.NodeId]int
}

// Build derives adjacency, reverse-adjacency, and in-degree maps from w.
// Edges referencing a node ID not present in w.Nodes are recorded in
// neither adjacency list and do not affect in-degree; S2 is the rule
// responsible for reporting them.
func Build(w *model.Workflow) *Index {
	idx := &Index{
		workflow:  w,
		adjacency: make(map[model.NodeId][]model.EdgeId, len(w.Nodes)),
		reverse:   make(map[model.NodeId][]model.EdgeId, len(w.Nodes)),
		inDegree:  make(map[model.NodeId]int, len(w.Nodes)),
	}

	for _, id := range w.NodeOrder {
		idx.adjacency[id] = nil
		idx.reverse[id] = nil
		idx.inDegree[id] = 0
	}

	for _, e := range w.OrderedEdges() {
		_, sourceExists := w.Nodes[e.Source]
		_, targetExists := w.Nodes[e.Target]
		if !sourceExists || !targetExists {
			continue
		}
		idx.adjacency[e.Source] = append(idx.adjacency[e.Source], e.Id)
		idx.reverse[e.Target] = append(idx.reverse[e.Target], e.Id)
		idx.inDegree[e.Target]++
	}

	return idx
}

// OutgoingEdges returns the ordered sequence of edge IDs leaving node.
func (idx *Index) OutgoingEdges(node model.NodeId) []model.EdgeId {
	return idx.adjacency[node]
}

// IncomingEdges returns the ordered sequence of edge IDs entering node.
func (idx *Index) IncomingEdges(node model.NodeId) []model.EdgeId {
	return idx.reverse[node]
}

// InDegree returns the number of edges (with resolvable endpoints) whose
// target is node.
func (idx *Index) InDegree(node model.NodeId) int {
	return idx.inDegree[node]
}

// OutDegree returns the number of edges (with resolvable endpoints) whose
// source is node.
func (idx *Index) OutDegree(node model.NodeId) int {
	return len(idx.adjacency[node])
}

// EntryNodes returns every node with in-degree 0, in workflow-insertion
// order.
func (idx *Index) EntryNodes() []model.NodeId {
	var entries []model.NodeId
	for _, id := range idx.workflow.NodeOrder {
		if idx.inDegree[id] == 0 {
			entries = append(entries, id)
		}
	}
	return entries
}

// ExitNodes returns every node with out-degree 0, in workflow-insertion
// order.
func (idx *Index) ExitNodes() []model.NodeId {
	var exits []model.NodeId
	for _, id := range idx.workflow.NodeOrder {
		if len(idx.adjacency[id]) == 0 {
			exits = append(exits, id)
		}
	}
	return exits
}

// Edge resolves an EdgeId back to its Edge.
func (idx *Index) Edge(id model.EdgeId) (model.Edge, bool) {
	e, ok := idx.workflow.Edges[id]
	return e, ok
}
