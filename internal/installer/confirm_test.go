package installer

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalConfirm(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "y", input: "y\n", want: true},
		{name: "yes", input: "yes\n", want: true},
		{name: "uppercase", input: "YES\n", want: true},
		{name: "padded", input: "  y  \n", want: true},
		{name: "n", input: "n\n", want: false},
		{name: "empty line", input: "\n", want: false},
		{name: "anything else", input: "sure\n", want: false},
		{name: "eof", input: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := &Terminal{In: strings.NewReader(tt.input), Out: &out}
			got, err := c.Confirm("Replace?")
			if err != nil {
				t.Fatalf("Confirm error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "[y/N]") {
				t.Fatalf("prompt missing default hint: %q", out.String())
			}
		})
	}
}

func TestAlways(t *testing.T) {
	t.Parallel()
	ok, err := Always().Confirm("whatever")
	if err != nil || !ok {
		t.Fatalf("Always() = (%v, %v), want (true, nil)", ok, err)
	}
}
