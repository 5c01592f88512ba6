package templates

import (
	"context"
	"sync"

	"github.com/itchyny/gojq"

	"github.com/agentforge/core/pkg/model"
)

// JQChecker statically checks the jq-style extraction path stored under
// config.parameters["$extract"], used to pluck a sub-field out of an
// upstream agent's output.
type JQChecker struct {
	mu    sync.RWMutex
	cache map[string]struct{}
}

// NewJQChecker builds a JQChecker.
func NewJQChecker() *JQChecker {
	return &JQChecker{cache: make(map[string]struct{})}
}

// Name returns the checker identifier.
func (c *JQChecker) Name() string {
	return "jq"
}

// Check parses and compiles expression, sandboxed against $ENV/environment
// access.
func (c *JQChecker) Check(ctx context.Context, expression string) error {
	if expression == "" {
		return model.NewError(model.ErrCodeInvalidArgument, "empty jq expression")
	}

	c.mu.RLock()
	_, ok := c.cache[expression]
	c.mu.RUnlock()
	if ok {
		return nil
	}

	query, err := gojq.Parse(expression)
	if err != nil {
		return model.NewErrorf(model.ErrCodeMalformed, "jq parse error in %q: %s", expression, err.Error())
	}

	_, err = gojq.Compile(query, gojq.WithEnvironLoader(func() []string { return nil }))
	if err != nil {
		return model.NewErrorf(model.ErrCodeMalformed, "jq compile error in %q: %s", expression, err.Error())
	}

	c.mu.Lock()
	c.cache[expression] = struct{}{}
	c.mu.Unlock()

	return nil
}

var _ Checker = (*JQChecker)(nil)
