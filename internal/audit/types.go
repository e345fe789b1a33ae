package audit

import (
	"errors"
	"time"
)

var ErrDisabled = errors.New("audit disabled")

// Config configures the audit trail.
//
// Driver values:
//   - "file": dependency-free append-only JSON Lines
//   - "sqlite": SQLite database file
//
// If Driver is empty or "none", auditing is disabled.
type Config struct {
	Driver string
	Path   string
}

// Record captures one terminal outcome of an install/remove run.
// Keep it compact and schema-stable.
type Record struct {
	At      time.Time `json:"at"`
	Action  string    `json:"action"`  // install | remove | status
	Outcome string    `json:"outcome"` // inserted | replaced | removed | cancelled | noop | failed
	Line    string    `json:"line,omitempty"`
	Removed int       `json:"removed,omitempty"`
	Error   string    `json:"error,omitempty"`
	TookMS  int64     `json:"took_ms"`
}
