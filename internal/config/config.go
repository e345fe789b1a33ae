package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"stockcron/internal/cadence"
)

// ErrInterpreterNotFound reports that the scheduler's runtime could not be
// located on PATH. Nothing may touch the crontab after this error.
var ErrInterpreterNotFound = errors.New("interpreter not found")

// interpreterName is the runtime the scheduler script needs.
const interpreterName = "python3"

// Defaults derived from the executable's directory when the config file
// leaves the corresponding field empty.
const (
	defaultScriptName = "scheduler.py"
	defaultLogName    = "scheduler.log"
)

// Config describes the single crontab entry this tool manages.
//
// Every field is independently overridable from a yaml or json file; unset
// path fields are derived from the executable's own directory and the
// interpreter is located on PATH.
type Config struct {
	// WorkingDir is the directory the job cd's into before running.
	WorkingDir string `json:"working_dir,omitempty"`
	// Interpreter is the absolute path of the runtime invoking the script.
	Interpreter string `json:"interpreter,omitempty"`
	// Script is the absolute path of the scheduler script. Its path also
	// serves as the job identifier when scanning the crontab for
	// pre-existing entries.
	Script string `json:"script,omitempty"`
	// Args are passed to the script. Defaults to --once so the scheduler
	// makes a single pass per cron activation.
	Args []string `json:"args,omitempty"`
	// LogPath receives the job's combined output (append).
	LogPath string `json:"log_path,omitempty"`
	// Cadence is a 5-field crontab expression. Defaults to every 15 minutes.
	Cadence string `json:"cadence,omitempty"`
	// CrontabBin overrides the crontab binary, mainly for tests.
	CrontabBin string `json:"crontab_bin,omitempty"`

	Logging LoggingConfig `json:"logging,omitempty"`
	Audit   AuditConfig   `json:"audit,omitempty"`
}

type LoggingConfig struct {
	Level string `json:"level,omitempty"`
	// File enables an additional JSON log sink for the installer itself
	// (not the job's own log, which LogPath covers).
	File string `json:"file,omitempty"`
}

// AuditConfig controls the optional record of install/remove actions.
//
// Driver values:
//   - "" or "none": disabled
//   - "file": append-only JSON Lines
//   - "sqlite": SQLite database file
type AuditConfig struct {
	Driver string `json:"driver,omitempty"`
	Path   string `json:"path,omitempty"`
}

// Load reads and strictly decodes a config file (yaml or json).
// Unknown fields are rejected so typos fail loudly.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	jb, err := coerceToJSONBytes(path, b)
	if err != nil {
		return nil, err
	}

	var cfg Config
	dec := json.NewDecoder(bytes.NewReader(jb))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	// reject trailing tokens (e.g. concatenated JSON)
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("invalid config: trailing data")
		}
		return nil, err
	}
	return &cfg, nil
}

// Resolve fills empty fields from the environment: paths from the
// executable's directory, the interpreter from PATH.
//
// It fails with ErrInterpreterNotFound before any crontab access can
// happen, so a missing runtime never mutates the schedule table.
func (c *Config) Resolve() error {
	if c.WorkingDir == "" || c.Script == "" || c.LogPath == "" {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("resolve executable path: %w", err)
		}
		dir := filepath.Dir(exe)
		if c.WorkingDir == "" {
			c.WorkingDir = dir
		}
		if c.Script == "" {
			c.Script = filepath.Join(dir, defaultScriptName)
		}
		if c.LogPath == "" {
			c.LogPath = filepath.Join(dir, defaultLogName)
		}
	}
	if c.Interpreter == "" {
		p, err := exec.LookPath(interpreterName)
		if err != nil {
			return fmt.Errorf("%w: %q is not on PATH", ErrInterpreterNotFound, interpreterName)
		}
		// LookPath may return a relative match when PATH contains
		// relative entries; the crontab line needs an absolute path.
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		c.Interpreter = p
	}
	if len(c.Args) == 0 {
		c.Args = []string{"--once"}
	}
	if c.Cadence == "" {
		c.Cadence = cadence.Default
	}
	if c.CrontabBin == "" {
		c.CrontabBin = "crontab"
	}
	return nil
}

// Validate rejects configs that would render a broken crontab line.
func (c *Config) Validate() error {
	for name, p := range map[string]string{
		"working_dir": c.WorkingDir,
		"interpreter": c.Interpreter,
		"script":      c.Script,
		"log_path":    c.LogPath,
	} {
		if p == "" {
			return fmt.Errorf("config: %s is required", name)
		}
		if !filepath.IsAbs(p) {
			return fmt.Errorf("config: %s must be an absolute path, got %q", name, p)
		}
	}
	if _, err := cadence.Parse(c.Cadence); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
