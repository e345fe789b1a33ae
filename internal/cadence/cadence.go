// Package cadence validates the recurrence expression placed in front of
// the crontab line and previews upcoming run times.
package cadence

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Default is the stock monitor's check interval: every 15 minutes.
const Default = "*/15 * * * *"

// Standard 5-field crontab format. Descriptors like "@hourly" are accepted
// too since cron(8) understands them.
var parser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Parse validates a cadence expression.
func Parse(raw string) (cron.Schedule, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("cadence required")
	}
	sched, err := parser.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid cadence %q (use crontab syntax like '*/15 * * * *'): %w", raw, err)
	}
	return sched, nil
}

// Next returns the next n activation times of expr strictly after from.
func Next(expr string, from time.Time, n int) ([]time.Time, error) {
	sched, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}
	out := make([]time.Time, 0, n)
	t := from
	for i := 0; i < n; i++ {
		t = sched.Next(t)
		if t.IsZero() {
			break
		}
		out = append(out, t)
	}
	return out, nil
}
