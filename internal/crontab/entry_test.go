package crontab

import (
	"reflect"
	"testing"
)

func TestEntryRender(t *testing.T) {
	t.Parallel()
	e := Entry{
		Cadence:     "*/15 * * * *",
		WorkingDir:  "/srv/stockmon",
		Interpreter: "/usr/bin/python3",
		Script:      "/srv/stockmon/scheduler.py",
		Args:        []string{"--once"},
		LogPath:     "/srv/stockmon/scheduler.log",
	}
	want := "*/15 * * * * cd /srv/stockmon && /usr/bin/python3 /srv/stockmon/scheduler.py --once >> /srv/stockmon/scheduler.log 2>&1"
	if got := e.Render(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestEntryRenderNoArgs(t *testing.T) {
	t.Parallel()
	e := Entry{
		Cadence:     "@hourly",
		WorkingDir:  "/opt/app",
		Interpreter: "/usr/bin/python3",
		Script:      "/opt/app/job.py",
		LogPath:     "/opt/app/job.log",
	}
	want := "@hourly cd /opt/app && /usr/bin/python3 /opt/app/job.py >> /opt/app/job.log 2>&1"
	if got := e.Render(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()
	ident := "/srv/stockmon/scheduler.py"
	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "managed line", line: "*/15 * * * * cd /srv/stockmon && /usr/bin/python3 /srv/stockmon/scheduler.py --once >> /srv/stockmon/scheduler.log 2>&1", want: true},
		{name: "commented out", line: "# */15 * * * * /usr/bin/python3 /srv/stockmon/scheduler.py", want: true},
		{name: "unrelated", line: "0 3 * * * /usr/local/bin/backup.sh", want: false},
		{name: "empty", line: "", want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.line, ident); got != tt.want {
				t.Fatalf("Matches(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestFilterMatches(t *testing.T) {
	t.Parallel()
	lines := []string{
		"# backups",
		"0 3 * * * /usr/local/bin/backup.sh",
		"*/15 * * * * cd /srv/stockmon && /usr/bin/python3 /srv/stockmon/scheduler.py --once >> /srv/stockmon/scheduler.log 2>&1",
		"*/5 * * * * cd /srv/stockmon && /usr/bin/python3 /srv/stockmon/scheduler.py --once >> /srv/stockmon/scheduler.log 2>&1",
	}
	matches, rest := FilterMatches(lines, "/srv/stockmon/scheduler.py")
	if len(matches) != 2 {
		t.Fatalf("matches = %d, want 2", len(matches))
	}
	wantRest := []string{"# backups", "0 3 * * * /usr/local/bin/backup.sh"}
	if !reflect.DeepEqual(rest, wantRest) {
		t.Fatalf("rest = %v, want %v", rest, wantRest)
	}
}

func TestSplitLines(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "single newline", in: "\n", want: nil},
		{name: "two entries", in: "a\nb\n", want: []string{"a", "b"}},
		{name: "interior blank kept", in: "a\n\nb\n", want: []string{"a", "", "b"}},
		{name: "crlf", in: "a\r\nb\r\n", want: []string{"a", "b"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("SplitLines(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}
