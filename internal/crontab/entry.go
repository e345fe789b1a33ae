package crontab

import "strings"

// Entry is the one scheduled job this tool manages. It serializes to
// exactly one crontab line.
type Entry struct {
	Cadence     string
	WorkingDir  string
	Interpreter string
	Script      string
	Args        []string
	LogPath     string
}

// Render produces the crontab line:
//
//	<cadence> cd <workingDir> && <interpreter> <script> <args...> >> <logPath> 2>&1
//
// Output is appended to LogPath; cron creates the file on first run.
func (e Entry) Render() string {
	var b strings.Builder
	b.WriteString(e.Cadence)
	b.WriteString(" cd ")
	b.WriteString(e.WorkingDir)
	b.WriteString(" && ")
	b.WriteString(e.Interpreter)
	b.WriteString(" ")
	b.WriteString(e.Script)
	for _, a := range e.Args {
		b.WriteString(" ")
		b.WriteString(a)
	}
	b.WriteString(" >> ")
	b.WriteString(e.LogPath)
	b.WriteString(" 2>&1")
	return b.String()
}

func (e Entry) String() string { return e.Render() }

// Matches reports whether a crontab line belongs to the managed job.
// Plain substring containment on the job identifier (the script path),
// matching how the entry was detected historically; commented-out lines
// count too.
func Matches(line, ident string) bool {
	return strings.Contains(line, ident)
}

// FilterMatches splits lines into those matching the job identifier and
// the rest, both in original order.
func FilterMatches(lines []string, ident string) (matches, rest []string) {
	for _, ln := range lines {
		if Matches(ln, ident) {
			matches = append(matches, ln)
		} else {
			rest = append(rest, ln)
		}
	}
	return matches, rest
}
