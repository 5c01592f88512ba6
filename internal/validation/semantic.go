package validation

import (
	"fmt"

	"github.com/agentforge/core/internal/graph"
	"github.com/agentforge/core/pkg/model"
)

// AgentRegistry is a read-only lookup of AgentId to AgentDefinition,
// supplied by the caller. Its source (a config file, a database, a live
// discovery protocol) is outside this package's concern; see
// internal/registry for two implementations.
type AgentRegistry interface {
	Lookup(id model.AgentId) (model.AgentDefinition, bool)
}

// checkTypeMismatch is M1: for every edge connecting two agent-typed nodes,
// the source output port's type must strictly equal the target input
// port's type. Edges touching a tool/input/output node are skipped. An
// edge whose agent/port cannot be resolved is reported as TYPE_MISMATCH
// too — an unresolved agent makes the edge untypeable, which is itself a
// type error, not a separate code.
func checkTypeMismatch(w *model.Workflow, idx *graph.Index, registry AgentRegistry) *model.ValidationResult {
	result := &model.ValidationResult{}

	for _, e := range w.OrderedEdges() {
		source, ok := w.Nodes[e.Source]
		if !ok {
			continue // already reported by S2
		}
		target, ok := w.Nodes[e.Target]
		if !ok {
			continue
		}
		if source.Type != model.NodeTypeAgent || target.Type != model.NodeTypeAgent {
			continue
		}

		sourceAgent, ok := registry.Lookup(source.Config.AgentId)
		if !ok {
			result.AddError(model.ErrCodeTypeMismatch,
				fmt.Sprintf("edge %q: source node %q references unknown agent %q", e.Id, e.Source, source.Config.AgentId),
				[]model.NodeId{e.Source}, []model.EdgeId{e.Id})
			continue
		}
		targetAgent, ok := registry.Lookup(target.Config.AgentId)
		if !ok {
			result.AddError(model.ErrCodeTypeMismatch,
				fmt.Sprintf("edge %q: target node %q references unknown agent %q", e.Id, e.Target, target.Config.AgentId),
				[]model.NodeId{e.Target}, []model.EdgeId{e.Id})
			continue
		}

		sourcePort, ok := sourceAgent.OutputPort(e.SourcePort)
		if !ok {
			result.AddError(model.ErrCodeTypeMismatch,
				fmt.Sprintf("edge %q: agent %q has no output port %q", e.Id, sourceAgent.Id, e.SourcePort),
				[]model.NodeId{e.Source}, []model.EdgeId{e.Id})
			continue
		}
		targetPort, ok := targetAgent.InputPort(e.TargetPort)
		if !ok {
			result.AddError(model.ErrCodeTypeMismatch,
				fmt.Sprintf("edge %q: agent %q has no input port %q", e.Id, targetAgent.Id, e.TargetPort),
				[]model.NodeId{e.Target}, []model.EdgeId{e.Id})
			continue
		}

		if sourcePort.Type != targetPort.Type {
			result.AddError(model.ErrCodeTypeMismatch,
				fmt.Sprintf("edge %q: output port %q (%s) does not match input port %q (%s)",
					e.Id, sourcePort.Name, sourcePort.Type, targetPort.Name, targetPort.Type),
				[]model.NodeId{e.Source, e.Target}, []model.EdgeId{e.Id})
		}
	}

	return result
}

// checkMissingRequiredInput is M2: every required input port on an agent
// node must have at least one incoming edge naming it as targetPort.
func checkMissingRequiredInput(w *model.Workflow, idx *graph.Index, registry AgentRegistry) *model.ValidationResult {
	result := &model.ValidationResult{}

	for _, id := range w.NodeOrder {
		node := w.Nodes[id]
		if node.Type != model.NodeTypeAgent {
			continue
		}
		agent, ok := registry.Lookup(node.Config.AgentId)
		if !ok {
			continue // surfaced by M1
		}

		connected := make(map[model.PortId]bool)
		for _, edgeId := range idx.IncomingEdges(id) {
			if e, ok := idx.Edge(edgeId); ok {
				connected[e.TargetPort] = true
			}
		}

		var missing []string
		for _, port := range agent.InputSchema {
			if port.Required && !connected[model.PortId(port.Name)] {
				missing = append(missing, port.Name)
			}
		}
		if len(missing) > 0 {
			result.AddError(model.ErrCodeMissingRequiredInput,
				fmt.Sprintf("node %q is missing required input ports %v", id, missing),
				[]model.NodeId{id}, nil)
		}
	}

	return result
}
