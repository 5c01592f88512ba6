package templates

import (
	"context"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/agentforge/core/pkg/model"
)

// CELChecker statically checks CEL-flavored parameter templates used by
// agent nodes, e.g. ${{ nodes.fetch.output.body }}. It never evaluates an
// expression — only compiles it against a sandboxed environment exposing
// the same top-level variables the template will see at execution time.
type CELChecker struct {
	env *cel.Env

	mu    sync.RWMutex
	cache map[string]struct{}
}

// NewCELChecker builds a CELChecker whose environment exposes three
// top-level variables: nodes (sibling node outputs keyed by NodeId),
// inputs (workflow-level inputs), and workflow (execution metadata).
func NewCELChecker() (*CELChecker, error) {
	mapType := cel.MapType(cel.StringType, cel.DynType)

	env, err := cel.NewEnv(
		cel.Variable("nodes", mapType),
		cel.Variable("inputs", mapType),
		cel.Variable("workflow", mapType),
	)
	if err != nil {
		return nil, model.NewErrorf(model.ErrCodeInvalidArgument, "create CEL environment: %s", err.Error())
	}

	return &CELChecker{env: env, cache: make(map[string]struct{})}, nil
}

// Name returns the checker identifier.
func (c *CELChecker) Name() string {
	return "cel"
}

// Check compiles expression and returns a descriptive error on the first
// syntax or type failure. A previously-checked expression short-circuits.
func (c *CELChecker) Check(ctx context.Context, expression string) error {
	if expression == "" {
		return model.NewError(model.ErrCodeInvalidArgument, "empty CEL expression")
	}

	c.mu.RLock()
	_, ok := c.cache[expression]
	c.mu.RUnlock()
	if ok {
		return nil
	}

	_, issues := c.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return model.NewErrorf(model.ErrCodeMalformed,
			"CEL compile error in %q: %s", expression, issues.Err().Error())
	}

	c.mu.Lock()
	c.cache[expression] = struct{}{}
	c.mu.Unlock()

	return nil
}

var _ Checker = (*CELChecker)(nil)
