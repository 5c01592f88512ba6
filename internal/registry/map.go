// Package registry provides AgentRegistry implementations: a plain
// in-memory map for tests and static configuration, and an adapter that
// discovers agent definitions from a live MCP server's tool list.
package registry

import "github.com/agentforge/core/pkg/model"

// MapRegistry is the simplest AgentRegistry: a static map supplied at
// construction time, typically loaded from a JSON config file.
type MapRegistry struct {
	agents map[model.AgentId]model.AgentDefinition
}

// NewMapRegistry builds a MapRegistry from a slice of definitions, keyed by
// their Id field.
func NewMapRegistry(defs []model.AgentDefinition) *MapRegistry {
	agents := make(map[model.AgentId]model.AgentDefinition, len(defs))
	for _, d := range defs {
		agents[d.Id] = d
	}
	return &MapRegistry{agents: agents}
}

// Lookup satisfies validation.AgentRegistry.
func (r *MapRegistry) Lookup(id model.AgentId) (model.AgentDefinition, bool) {
	d, ok := r.agents[id]
	return d, ok
}
