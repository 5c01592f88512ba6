package model

import "time"

// WorkflowStatus is the lifecycle state of a Workflow.
type WorkflowStatus string

const (
	WorkflowStatusDraft    WorkflowStatus = "draft"
	WorkflowStatusValid    WorkflowStatus = "valid"
	WorkflowStatusInvalid  WorkflowStatus = "invalid"
	WorkflowStatusArchived WorkflowStatus = "archived"
)

// WorkflowMeta carries descriptive and concurrency-control fields.
type WorkflowMeta struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	OwnerId     string    `json:"ownerId"`
	// Version is a monotonically increasing integer bumped on every edit,
	// used for optimistic concurrency.
	Version int `json:"version"`
	// Schedule is an optional cron expression marking this workflow as
	// recurring. Validated by internal/trigger, independent of the DAG
	// validator (a workflow can be graph-valid with a malformed schedule).
	Schedule string `json:"schedule,omitempty"`
}

// Workflow is an immutable snapshot of a node/edge graph as presented to the
// validator. Nodes and Edges are keyed by ID for O(1) lookup; NodeOrder and
// EdgeOrder record insertion order separately since Go maps don't preserve
// it, and every validator output (entry/exit node listing, topological
// tie-breaking, error reporting) must be order-deterministic.
type Workflow struct {
	Id        WorkflowId      `json:"id"`
	Status    WorkflowStatus  `json:"status"`
	Meta      WorkflowMeta    `json:"meta"`
	Nodes     map[NodeId]Node `json:"nodes"`
	Edges     map[EdgeId]Edge `json:"edges"`
	NodeOrder []NodeId        `json:"-"`
	EdgeOrder []EdgeId        `json:"-"`
}

// NewWorkflow creates an empty, draft Workflow ready for AddNode/AddEdge.
func NewWorkflow(id WorkflowId, meta WorkflowMeta) *Workflow {
	return &Workflow{
		Id:     id,
		Status: WorkflowStatusDraft,
		Meta:   meta,
		Nodes:  make(map[NodeId]Node),
		Edges:  make(map[EdgeId]Edge),
	}
}

// AddNode inserts or replaces a node, recording first-seen insertion order.
func (w *Workflow) AddNode(n Node) {
	if _, exists := w.Nodes[n.Id]; !exists {
		w.NodeOrder = append(w.NodeOrder, n.Id)
	}
	w.Nodes[n.Id] = n
}

// AddEdge inserts or replaces an edge, recording first-seen insertion order.
func (w *Workflow) AddEdge(e Edge) {
	if _, exists := w.Edges[e.Id]; !exists {
		w.EdgeOrder = append(w.EdgeOrder, e.Id)
	}
	w.Edges[e.Id] = e
}

// OrderedNodes returns every node in insertion order.
func (w *Workflow) OrderedNodes() []Node {
	nodes := make([]Node, 0, len(w.NodeOrder))
	for _, id := range w.NodeOrder {
		nodes = append(nodes, w.Nodes[id])
	}
	return nodes
}

// OrderedEdges returns every edge in insertion order.
func (w *Workflow) OrderedEdges() []Edge {
	edges := make([]Edge, 0, len(w.EdgeOrder))
	for _, id := range w.EdgeOrder {
		edges = append(edges, w.Edges[id])
	}
	return edges
}
