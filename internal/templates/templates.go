// Package templates statically checks the template expressions a caller may
// embed in a node's config.parameters before the workflow is saved. This is
// additive tooling: it never participates in graph validation, never adds a
// ValidationResult error code, and never evaluates a template against real
// node output — only compiles it and reports syntax/type errors.
package templates

import "context"

// Checker compiles expression without evaluating it and reports the first
// syntax or type error, if any.
type Checker interface {
	Name() string
	Check(ctx context.Context, expression string) error
}
