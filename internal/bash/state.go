package bash

import (
	"slices"

	"github.com/atinylittleshell/memsh/internal/vfs"
)

// HistoryEntry is one line of the transcript. Lines carrying a Cwd are echo
// lines: the command a user typed and the directory it was typed in.
type HistoryEntry struct {
	Value string  `yaml:"value"`
	Cwd   *string `yaml:"cwd,omitempty"`
}

// Output creates a plain output line.
func Output(value string) HistoryEntry {
	return HistoryEntry{Value: value}
}

// Echo creates the echo line for input typed while in cwd.
func Echo(input, cwd string) HistoryEntry {
	return HistoryEntry{Value: input, Cwd: &cwd}
}

// IsEcho reports whether the entry echoes a submitted command.
func (e HistoryEntry) IsEcho() bool {
	return e.Cwd != nil
}

// State is a snapshot of a session. Values are never modified in place; each
// call to Execute returns a new State.
type State struct {
	History   []HistoryEntry
	Structure *vfs.Directory
	Cwd       string
}

// Update is what a command returns. Fields left at their zero value keep the
// current value of the state: a nil History, a nil Structure and a nil Cwd
// mean "unchanged". A non-nil empty History clears the transcript.
type Update struct {
	History   []HistoryEntry
	Structure *vfs.Directory
	Cwd       *string
}

// Append returns a new transcript made of the state's history followed by
// entries. The state's own slice is left untouched.
func (s State) Append(entries ...HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(s.History)+len(entries))
	out = append(out, s.History...)
	return append(out, entries...)
}

// Apply merges u onto s.
func (s State) Apply(u Update) State {
	next := s
	if u.History != nil {
		next.History = slices.Clip(u.History)
	}
	if u.Structure != nil {
		next.Structure = u.Structure
	}
	if u.Cwd != nil {
		next.Cwd = *u.Cwd
	}
	return next
}
