// Package crontab wraps the host crontab(1) command. The user crontab is
// owned by the OS; this package only lists it and replaces it wholesale,
// which are the two operations crontab(1) offers and the entirety of the
// dependency on the host scheduling subsystem.
package crontab

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrTableAccess reports a failed list or replace of the crontab
// (missing binary, permission denied, daemon misconfiguration).
var ErrTableAccess = errors.New("crontab access failed")

// Table is the minimal schedule-table API. The system implementation
// shells out; tests substitute an in-memory fake.
type Table interface {
	// List returns the current crontab lines. A missing crontab is a
	// valid empty state, not an error.
	List(ctx context.Context) ([]string, error)
	// Replace installs lines as the new crontab in one atomic call.
	Replace(ctx context.Context, lines []string) error
}

// System drives the real crontab binary for the invoking user.
type System struct {
	bin string
}

func NewSystem(bin string) *System {
	if strings.TrimSpace(bin) == "" {
		bin = "crontab"
	}
	return &System{bin: bin}
}

func (s *System) List(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, s.bin, "-l")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		// crontab -l exits 1 both when no table exists and on real
		// failures; only the stderr text tells them apart.
		if isNoCrontab(stderr.String()) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s -l: %v: %s", ErrTableAccess, s.bin, err, strings.TrimSpace(stderr.String()))
	}
	return SplitLines(stdout.String()), nil
}

func (s *System) Replace(ctx context.Context, lines []string) error {
	var input string
	if len(lines) > 0 {
		input = strings.Join(lines, "\n") + "\n"
	}
	cmd := exec.CommandContext(ctx, s.bin, "-")
	cmd.Stdin = strings.NewReader(input)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s -: %v: %s", ErrTableAccess, s.bin, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

func isNoCrontab(stderr string) bool {
	return strings.Contains(strings.ToLower(stderr), "no crontab for")
}

// SplitLines breaks crontab -l output into lines, dropping only the
// trailing newline. Interior blank lines and comments are kept so a
// later Replace reinstalls the table byte-for-byte.
func SplitLines(out string) []string {
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil
	}
	lines := strings.Split(out, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, "\r")
	}
	return lines
}
