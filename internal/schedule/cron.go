// Package schedule implements the cron-scheduled region period
// (component K): a supplemental deadline source beyond spec.md §4.C's
// named Fast/Medium/Slow periods, wired into internal/runtime.Controller
// via WithDeadlineFunc. Grounded in Comcast-sheens' interpreters/goja
// "cronNext" helper, which resolves a cron expression to its next
// occurrence through the same github.com/gorhill/cronexpr the rest of
// the example pack carries.
package schedule

import (
	"fmt"
	"time"

	"github.com/gorhill/cronexpr"
)

// Cron is a deadline function backed by a parsed cron expression, for
// passing to internal/runtime.WithDeadlineFunc.
type Cron struct {
	expr *cronexpr.Expression
}

// NewCron parses spec (cronexpr syntax) into a Cron. Five fields run from
// minute to day of week; a sixth field is a trailing year; only the
// seven-field form adds a leading seconds field. Shorter forms fire at
// second 0.
func NewCron(spec string) (*Cron, error) {
	expr, err := cronexpr.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("schedule: parse %q: %w", spec, err)
	}
	return &Cron{expr: expr}, nil
}

// Next returns the cron expression's next occurrence strictly after now,
// satisfying internal/runtime's deadline-function signature.
func (c *Cron) Next(now time.Time) time.Time {
	return c.expr.Next(now)
}
