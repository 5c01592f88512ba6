// Package trigger validates the optional recurring-schedule metadata a
// Workflow may carry. Schedule validity is independent of DAG validity: a
// workflow can be graph-valid with a malformed cron expression, and vice
// versa, so this never touches model.ValidationResult or its closed error
// code set.
package trigger

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/agentforge/core/pkg/model"
)

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateSchedule parses a standard 5-field cron expression and returns an
// AgentForgeError describing the syntax problem, if any. An empty
// expression is valid: it means the workflow has no recurring trigger.
func ValidateSchedule(expr string) error {
	if expr == "" {
		return nil
	}
	if _, err := parser.Parse(expr); err != nil {
		return model.NewErrorf(model.ErrCodeMalformed, "invalid schedule %q: %s", expr, err.Error())
	}
	return nil
}

// NextRun computes the next time expr would fire strictly after from. The
// caller must have already validated expr with ValidateSchedule.
func NextRun(expr string, from time.Time) (time.Time, error) {
	schedule, err := parser.Parse(expr)
	if err != nil {
		return time.Time{}, model.NewErrorf(model.ErrCodeMalformed, "invalid schedule %q: %s", expr, err.Error())
	}
	return schedule.Next(from), nil
}
