// Package audit keeps an advisory record of what the installer did to the
// crontab and when. The crontab itself stays the source of truth; audit
// failures are reported but never abort a run.
package audit

import (
	"context"
	"errors"
	"strings"

	logx "stockcron/pkg/logx"
)

// Store is the minimal persistence API used by the installer.
type Store interface {
	Append(ctx context.Context, r Record) error
	Close() error
}

// Open initializes the configured store.
// It returns (nil, nil) if auditing is disabled.
func Open(cfg Config, log logx.Logger) (Store, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	if driver == "" || driver == "none" {
		return nil, nil
	}
	if log.IsZero() {
		log = logx.Nop()
	}

	var (
		st  Store
		err error
	)
	switch driver {
	case "file":
		st, err = openFile(cfg)
	case "sqlite", "sqlite3":
		st, err = openSQLite(cfg)
	default:
		return nil, errors.New("unknown audit driver: " + driver)
	}
	if err != nil {
		return nil, err
	}
	log.Debug("audit store opened", logx.String("driver", driver), logx.String("path", cfg.Path))
	return st, nil
}
