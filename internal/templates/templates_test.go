package templates

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCELChecker_ValidExpression(t *testing.T) {
	c, err := NewCELChecker()
	require.NoError(t, err)
	assert.Equal(t, "cel", c.Name())

	err = c.Check(context.Background(), `nodes.fetch.output.body`)
	assert.NoError(t, err)
}

func TestCELChecker_SyntaxError(t *testing.T) {
	c, err := NewCELChecker()
	require.NoError(t, err)

	err = c.Check(context.Background(), `nodes.fetch.(((`)
	assert.Error(t, err)
}

func TestCELChecker_EmptyExpressionIsRejected(t *testing.T) {
	c, err := NewCELChecker()
	require.NoError(t, err)

	err = c.Check(context.Background(), "")
	assert.Error(t, err)
}

func TestCELChecker_DoesNotEvaluate(t *testing.T) {
	c, err := NewCELChecker()
	require.NoError(t, err)

	// Division by a literal zero would fail at evaluation time; Check only
	// compiles, so it must pass.
	err = c.Check(context.Background(), `1 / 0`)
	assert.NoError(t, err)
}

func TestExprChecker_ValidExpression(t *testing.T) {
	c := NewExprChecker()
	assert.Equal(t, "expr", c.Name())

	err := c.Check(context.Background(), `nodes["fetch"].output.body`)
	assert.NoError(t, err)
}

func TestExprChecker_SyntaxError(t *testing.T) {
	c := NewExprChecker()

	err := c.Check(context.Background(), `nodes[[[`)
	assert.Error(t, err)
}

func TestExprChecker_UndefinedSiblingNodeIsAllowed(t *testing.T) {
	c := NewExprChecker()

	err := c.Check(context.Background(), `nodes.somethingNotYetKnown`)
	assert.NoError(t, err)
}

func TestJQChecker_ValidExpression(t *testing.T) {
	c := NewJQChecker()
	assert.Equal(t, "jq", c.Name())

	err := c.Check(context.Background(), `.body.items[0].id`)
	assert.NoError(t, err)
}

func TestJQChecker_ParseError(t *testing.T) {
	c := NewJQChecker()

	err := c.Check(context.Background(), `.body[[[`)
	assert.Error(t, err)
}

func TestJQChecker_EmptyExpressionIsRejected(t *testing.T) {
	c := NewJQChecker()

	err := c.Check(context.Background(), "")
	assert.Error(t, err)
}
