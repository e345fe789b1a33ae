// Package logx configures stockcron's structured logging.
//
// This repo uses a small wrapper (logx.Logger) on top of zerolog to keep:
//   - Console output readable (short timestamp + short caller), on stderr
//   - Optional file output JSON-structured
//
// Stdout is left untouched: it carries the installer's user-facing
// status text only.
package logx
