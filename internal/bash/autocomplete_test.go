package bash

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atinylittleshell/memsh/internal/vfs"
)

func TestAutocomplete(t *testing.T) {
	b := newTestBash(t)

	tests := []struct {
		name   string
		cwd    string
		token  string
		want   string
		wantOK bool
	}{
		{name: "unique child", token: "fi", want: "file1", wantOK: true},
		{name: "ambiguous prefix", token: "dir", wantOK: false},
		{name: "no match", token: "zzz", wantOK: false},
		{name: "hidden entry", token: ".h", want: ".hidden", wantOK: true},
		{name: "nested", token: "dir1/d", want: "dir1/dir1File", wantOK: true},
		{name: "nested directory", token: "dir1/c", want: "dir1/childDir", wantOK: true},
		{name: "empty directory", token: "dir1/childDir/", wantOK: false},
		{name: "absolute", cwd: "dir1", token: "/fi", want: "/file1", wantOK: true},
		{name: "relative to the working directory", cwd: "dir1", token: "ch", want: "childDir", wantOK: true},
		{name: "parent", cwd: "dir1", token: "../fi", want: "../file1", wantOK: true},
		{name: "case sensitive", token: "FI", wantOK: false},
		{name: "missing directory", token: "nope/x", wantOK: false},
		{name: "through a file", token: "file1/x", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := testState()
			state.Cwd = tt.cwd
			got, ok := b.Autocomplete(tt.token, state)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAutocomplete_UniquePrefix(t *testing.T) {
	b := newTestBash(t)
	state := State{Structure: vfs.NewDirectory(
		vfs.Entry{Name: "file1", Node: vfs.NewFile("hi")},
		vfs.Entry{Name: "dir1", Node: vfs.NewDirectory()},
	)}

	got, ok := b.Autocomplete("dir", state)
	assert.True(t, ok)
	assert.Equal(t, "dir1", got)
}

func TestAutocomplete_DoesNotCompleteCommands(t *testing.T) {
	b := newTestBash(t)
	state := State{Structure: vfs.NewDirectory()}

	_, ok := b.Autocomplete("mkd", state)
	assert.False(t, ok)
}
