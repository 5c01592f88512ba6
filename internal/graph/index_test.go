package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentforge/core/pkg/model"
)

func linearWorkflow() *model.Workflow {
	w := model.NewWorkflow("wf", model.WorkflowMeta{})
	w.AddNode(model.Node{Id: "in", Type: model.NodeTypeInput})
	w.AddNode(model.Node{Id: "a", Type: model.NodeTypeAgent})
	w.AddNode(model.Node{Id: "out", Type: model.NodeTypeOutput})
	w.AddEdge(model.Edge{Id: "e1", Source: "in", SourcePort: "output", Target: "a", TargetPort: "input"})
	w.AddEdge(model.Edge{Id: "e2", Source: "a", SourcePort: "output", Target: "out", TargetPort: "input"})
	return w
}

func TestBuild_LinearWorkflow(t *testing.T) {
	idx := Build(linearWorkflow())

	assert.Equal(t, 0, idx.InDegree("in"))
	assert.Equal(t, 1, idx.InDegree("a"))
	assert.Equal(t, 1, idx.InDegree("out"))

	assert.Equal(t, 1, idx.OutDegree("in"))
	assert.Equal(t, 1, idx.OutDegree("a"))
	assert.Equal(t, 0, idx.OutDegree("out"))

	assert.Equal(t, []model.NodeId{"in"}, idx.EntryNodes())
	assert.Equal(t, []model.NodeId{"out"}, idx.ExitNodes())
}

func TestBuild_DanglingEdgeIgnoredForDegrees(t *testing.T) {
	w := model.NewWorkflow("wf", model.WorkflowMeta{})
	w.AddNode(model.Node{Id: "a", Type: model.NodeTypeAgent})
	w.AddEdge(model.Edge{Id: "e1", Source: "a", Target: "ghost"})

	idx := Build(w)

	require.Empty(t, idx.OutgoingEdges("a"), "edge to a missing endpoint must not appear in adjacency")
	assert.Equal(t, 0, idx.InDegree("a"))
	assert.Equal(t, []model.NodeId{"a"}, idx.EntryNodes())
	assert.Equal(t, []model.NodeId{"a"}, idx.ExitNodes())
}

func TestBuild_EntryExitOrderIsInsertionOrder(t *testing.T) {
	w := model.NewWorkflow("wf", model.WorkflowMeta{})
	w.AddNode(model.Node{Id: "b", Type: model.NodeTypeInput})
	w.AddNode(model.Node{Id: "a", Type: model.NodeTypeInput})
	w.AddNode(model.Node{Id: "c", Type: model.NodeTypeInput})

	idx := Build(w)
	assert.Equal(t, []model.NodeId{"b", "a", "c"}, idx.EntryNodes())
	assert.Equal(t, []model.NodeId{"b", "a", "c"}, idx.ExitNodes())
}

func TestBuild_IncomingOutgoingOrderIsEdgeInsertionOrder(t *testing.T) {
	w := model.NewWorkflow("wf", model.WorkflowMeta{})
	w.AddNode(model.Node{Id: "a", Type: model.NodeTypeAgent})
	w.AddNode(model.Node{Id: "b", Type: model.NodeTypeAgent})
	w.AddEdge(model.Edge{Id: "e2", Source: "a", Target: "b", TargetPort: "y"})
	w.AddEdge(model.Edge{Id: "e1", Source: "a", Target: "b", TargetPort: "x"})

	idx := Build(w)
	assert.Equal(t, []model.EdgeId{"e2", "e1"}, idx.OutgoingEdges("a"))
	assert.Equal(t, []model.EdgeId{"e2", "e1"}, idx.IncomingEdges("b"))
}
