// Package installer holds the read/confirm/rewrite cycle that keeps the
// crontab carrying exactly one entry for the stock-monitor scheduler.
package installer

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"stockcron/internal/audit"
	"stockcron/internal/cadence"
	"stockcron/internal/config"
	"stockcron/internal/crontab"
	logx "stockcron/pkg/logx"
)

// Outcome is a terminal state of a run. Cancelled is a successful outcome:
// the user opted out and the crontab was left untouched.
type Outcome string

const (
	OutcomeInserted  Outcome = "inserted"
	OutcomeReplaced  Outcome = "replaced"
	OutcomeRemoved   Outcome = "removed"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeNoop      Outcome = "noop"
)

var conflictColor = color.New(color.FgYellow)

type Installer struct {
	cfg     *config.Config
	table   crontab.Table
	confirm Confirmer

	log   logx.Logger
	out   io.Writer
	audit audit.Store
	now   func() time.Time
}

type Option func(*Installer)

func WithLogger(log logx.Logger) Option { return func(i *Installer) { i.log = log } }

// WithAudit attaches the optional audit trail. A nil store disables it.
func WithAudit(st audit.Store) Option { return func(i *Installer) { i.audit = st } }

// WithOutput redirects user-facing status text (default stdout).
func WithOutput(w io.Writer) Option { return func(i *Installer) { i.out = w } }

func WithClock(now func() time.Time) Option { return func(i *Installer) { i.now = now } }

func New(cfg *config.Config, table crontab.Table, confirm Confirmer, opts ...Option) *Installer {
	i := &Installer{
		cfg:     cfg,
		table:   table,
		confirm: confirm,
		log:     logx.Nop(),
		out:     os.Stdout,
		now:     time.Now,
	}
	for _, o := range opts {
		o(i)
	}
	return i
}

// BuildEntry assembles the crontab entry deterministically from config.
func (i *Installer) BuildEntry() (crontab.Entry, error) {
	if i.cfg.Interpreter == "" {
		return crontab.Entry{}, config.ErrInterpreterNotFound
	}
	return crontab.Entry{
		Cadence:     i.cfg.Cadence,
		WorkingDir:  i.cfg.WorkingDir,
		Interpreter: i.cfg.Interpreter,
		Script:      i.cfg.Script,
		Args:        i.cfg.Args,
		LogPath:     i.cfg.LogPath,
	}, nil
}

// Run installs the entry: no match appends, a match prompts and replaces
// every matching line on consent, a declined prompt changes nothing.
//
// The crontab is read and then rewritten in two separate crontab(1)
// calls; a concurrent editor can slip between them. crontab(1) itself
// installs each rewrite atomically, and this is a manually attended
// one-shot tool, so the window is accepted rather than locked around.
func (i *Installer) Run(ctx context.Context) (Outcome, error) {
	start := i.now()

	entry, err := i.BuildEntry()
	if err != nil {
		i.record(ctx, "install", "", 0, err, start)
		return "", err
	}
	line := entry.Render()

	lines, err := i.table.List(ctx)
	if err != nil {
		i.record(ctx, "install", "", 0, err, start)
		return "", err
	}

	matches, rest := crontab.FilterMatches(lines, i.cfg.Script)
	if len(matches) == 0 {
		if err := i.table.Replace(ctx, append(lines, line)); err != nil {
			i.record(ctx, "install", line, 0, err, start)
			return "", err
		}
		fmt.Fprintln(i.out, "Installed crontab entry:")
		fmt.Fprintln(i.out, "  "+line)
		i.log.Info("crontab entry installed",
			logx.String("cadence", i.cfg.Cadence),
			logx.String("script", i.cfg.Script))
		i.recordOutcome(ctx, "install", OutcomeInserted, line, 0, start)
		return OutcomeInserted, nil
	}

	i.showConflicts(matches)
	ok, err := i.confirm.Confirm("Replace with the new entry?")
	if err != nil {
		err = fmt.Errorf("confirmation failed: %w", err)
		i.record(ctx, "install", line, 0, err, start)
		return "", err
	}
	if !ok {
		fmt.Fprintln(i.out, "Cancelled. Crontab left unchanged.")
		i.log.Info("install cancelled by user")
		i.recordOutcome(ctx, "install", OutcomeCancelled, "", 0, start)
		return OutcomeCancelled, nil
	}

	if err := i.table.Replace(ctx, append(rest, line)); err != nil {
		i.record(ctx, "install", line, len(matches), err, start)
		return "", err
	}
	fmt.Fprintln(i.out, "Replaced crontab entry:")
	fmt.Fprintln(i.out, "  "+line)
	i.log.Info("crontab entry replaced",
		logx.Int("removed", len(matches)),
		logx.String("cadence", i.cfg.Cadence))
	i.recordOutcome(ctx, "install", OutcomeReplaced, line, len(matches), start)
	return OutcomeReplaced, nil
}

// Remove deletes every matching entry after confirmation. An empty table
// or no match is a successful no-op.
func (i *Installer) Remove(ctx context.Context) (Outcome, error) {
	start := i.now()

	lines, err := i.table.List(ctx)
	if err != nil {
		i.record(ctx, "remove", "", 0, err, start)
		return "", err
	}

	matches, rest := crontab.FilterMatches(lines, i.cfg.Script)
	if len(matches) == 0 {
		fmt.Fprintln(i.out, "No crontab entry found for "+i.cfg.Script+"; nothing to remove.")
		i.recordOutcome(ctx, "remove", OutcomeNoop, "", 0, start)
		return OutcomeNoop, nil
	}

	i.showConflicts(matches)
	ok, err := i.confirm.Confirm("Remove?")
	if err != nil {
		err = fmt.Errorf("confirmation failed: %w", err)
		i.record(ctx, "remove", "", 0, err, start)
		return "", err
	}
	if !ok {
		fmt.Fprintln(i.out, "Cancelled. Crontab left unchanged.")
		i.recordOutcome(ctx, "remove", OutcomeCancelled, "", 0, start)
		return OutcomeCancelled, nil
	}

	if err := i.table.Replace(ctx, rest); err != nil {
		i.record(ctx, "remove", "", len(matches), err, start)
		return "", err
	}
	fmt.Fprintf(i.out, "Removed %d crontab entr%s.\n", len(matches), plural(len(matches)))
	i.log.Info("crontab entry removed", logx.Int("removed", len(matches)))
	i.recordOutcome(ctx, "remove", OutcomeRemoved, "", len(matches), start)
	return OutcomeRemoved, nil
}

// Status reports the installed entries and the next run times. Read-only.
func (i *Installer) Status(ctx context.Context) error {
	lines, err := i.table.List(ctx)
	if err != nil {
		return err
	}

	matches, _ := crontab.FilterMatches(lines, i.cfg.Script)
	if len(matches) == 0 {
		fmt.Fprintln(i.out, "No crontab entry installed for "+i.cfg.Script+".")
		return nil
	}

	fmt.Fprintln(i.out, "Installed:")
	for _, m := range matches {
		fmt.Fprintln(i.out, "  "+m)
	}
	if len(matches) > 1 {
		fmt.Fprintf(i.out, "Warning: %d matching entries found; a prior write likely went wrong. Run install to collapse them into one.\n", len(matches))
	}

	next, err := cadence.Next(i.cfg.Cadence, i.now(), 3)
	if err != nil {
		return err
	}
	fmt.Fprintln(i.out, "Next runs:")
	for _, t := range next {
		fmt.Fprintln(i.out, "  "+t.Format(time.RFC3339))
	}
	return nil
}

func (i *Installer) showConflicts(matches []string) {
	if len(matches) == 1 {
		fmt.Fprintln(i.out, "An entry for the scheduler already exists:")
	} else {
		fmt.Fprintf(i.out, "%d entries for the scheduler already exist (duplicates from a prior corrupted write):\n", len(matches))
	}
	for _, m := range matches {
		fmt.Fprintln(i.out, "  "+conflictColor.Sprint(m))
	}
}

// record logs a failed run to the audit trail.
func (i *Installer) record(ctx context.Context, action, line string, removed int, runErr error, start time.Time) {
	i.append(ctx, audit.Record{
		Action:  action,
		Outcome: "failed",
		Line:    line,
		Removed: removed,
		Error:   runErr.Error(),
		TookMS:  i.now().Sub(start).Milliseconds(),
	})
}

func (i *Installer) recordOutcome(ctx context.Context, action string, outcome Outcome, line string, removed int, start time.Time) {
	i.append(ctx, audit.Record{
		Action:  action,
		Outcome: string(outcome),
		Line:    line,
		Removed: removed,
		TookMS:  i.now().Sub(start).Milliseconds(),
	})
}

func (i *Installer) append(ctx context.Context, r audit.Record) {
	if i.audit == nil {
		return
	}
	r.At = i.now()
	if err := i.audit.Append(ctx, r); err != nil {
		// Advisory trail only; the crontab already holds the truth.
		i.log.Warn("audit append failed", logx.Err(err))
	}
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
