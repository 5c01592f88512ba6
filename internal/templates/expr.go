package templates

import (
	"context"
	"sync"

	"github.com/expr-lang/expr"

	"github.com/agentforge/core/pkg/model"
)

// ExprChecker statically checks expr-lang parameter templates used by tool
// nodes. Agents use CEL (CELChecker); tools use expr-lang, mirroring the
// teacher's split between its CEL and Expr evaluation engines.
type ExprChecker struct {
	mu    sync.RWMutex
	cache map[string]struct{}
}

// NewExprChecker builds an ExprChecker.
func NewExprChecker() *ExprChecker {
	return &ExprChecker{cache: make(map[string]struct{})}
}

// Name returns the checker identifier.
func (c *ExprChecker) Name() string {
	return "expr"
}

// Check compiles expression against an environment with the same
// nodes/inputs/workflow variables CELChecker exposes, undefined-variable
// references allowed since the real sibling output isn't known yet.
func (c *ExprChecker) Check(ctx context.Context, expression string) error {
	if expression == "" {
		return model.NewError(model.ErrCodeInvalidArgument, "empty expr expression")
	}

	c.mu.RLock()
	_, ok := c.cache[expression]
	c.mu.RUnlock()
	if ok {
		return nil
	}

	env := map[string]any{
		"nodes":    map[string]any{},
		"inputs":   map[string]any{},
		"workflow": map[string]any{},
	}

	_, err := expr.Compile(expression, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return model.NewErrorf(model.ErrCodeMalformed, "expr compile error in %q: %s", expression, err.Error())
	}

	c.mu.Lock()
	c.cache[expression] = struct{}{}
	c.mu.Unlock()

	return nil
}

var _ Checker = (*ExprChecker)(nil)
