package repl

import (
	"strings"

	"github.com/samber/lo"

	"github.com/atinylittleshell/memsh/internal/bash"
	"github.com/atinylittleshell/memsh/internal/vfs"
)

// Prompt returns the prompt shown for a line typed in cwd, for example
// "hacker@default ~/dir1 $".
func Prompt(prefix, cwd string) string {
	if cwd == "" {
		return prefix + " ~ $"
	}
	return prefix + " ~/" + cwd + " $"
}

var errorPrefixes = lo.Map(
	[]error{vfs.ErrNoSuchFile, vfs.ErrNotADirectory, vfs.ErrIsADirectory, vfs.ErrFileExists},
	func(err error, _ int) string { return err.Error() + ": " },
)

// isErrorLine reports whether an output line was produced by a failed
// command.
func isErrorLine(value string) bool {
	if strings.HasSuffix(value, ": command not found") || strings.HasSuffix(value, ": missing operand") {
		return true
	}
	return lo.SomeBy(errorPrefixes, func(prefix string) bool {
		return strings.HasPrefix(value, prefix)
	})
}

// renderEntry draws one transcript line.
func renderEntry(entry bash.HistoryEntry, prefix string, theme Theme) string {
	switch {
	case entry.IsEcho():
		return theme.Prompt.Render(Prompt(prefix, *entry.Cwd)) + " " + entry.Value
	case isErrorLine(entry.Value):
		return theme.Error.Render(entry.Value)
	default:
		return theme.Output.Render(entry.Value)
	}
}
