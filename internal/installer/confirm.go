package installer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer answers the replace/remove prompt. It is an interface so the
// state machine can be driven deterministically in tests without a real
// terminal.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmerFunc adapts a function to Confirmer.
type ConfirmerFunc func(prompt string) (bool, error)

func (f ConfirmerFunc) Confirm(prompt string) (bool, error) { return f(prompt) }

// Always answers yes without prompting (the --yes flag).
func Always() Confirmer {
	return ConfirmerFunc(func(string) (bool, error) { return true, nil })
}

// Terminal prompts on Out and reads one line from In. Only "y"/"yes"
// (case-insensitive) confirms; any other answer, or end of input,
// declines. The read blocks until the user responds.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

func (t *Terminal) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(t.Out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(t.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	s := strings.ToLower(strings.TrimSpace(line))
	return s == "y" || s == "yes", nil
}
