package repl

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiSequence = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI drops colour codes, which termenv only emits when stdout is a
// terminal.
func stripANSI(s string) string {
	return ansiSequence.ReplaceAllString(s, "")
}

func TestLineRunner_RunAll(t *testing.T) {
	sh, state := testSession(t)
	var out bytes.Buffer
	runner := &LineRunner{Bash: sh, Prompt: "me", Echo: true, Out: &out}

	input := strings.Join([]string{
		"ls",
		"cd dir1",
		"pwd",
		"cat nope",
		"mkdir new",
		"ls",
	}, "\n")

	final, err := runner.RunAll(strings.NewReader(input), state)
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"me ~ $ ls",
		"file1 dir1",
		"me ~ $ cd dir1",
		"me ~/dir1 $ pwd",
		"/dir1",
		"me ~/dir1 $ cat nope",
		"no such file or directory: nope",
		"me ~/dir1 $ mkdir new",
		"me ~/dir1 $ ls",
		"childDir dir1File new",
		"",
	}, "\n"), stripANSI(out.String()))
	assert.Equal(t, "dir1", final.Cwd)
}

func TestLineRunner_WithoutEcho(t *testing.T) {
	sh, state := testSession(t)
	var out bytes.Buffer
	runner := &LineRunner{Bash: sh, Prompt: "me", Out: &out}

	state = runner.Run("cat file1", state)
	state = runner.Run("clear", state)
	runner.Run("pwd", state)

	assert.Equal(t, "hi\n/\n", stripANSI(out.String()))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestLineRunner_ReadError(t *testing.T) {
	sh, state := testSession(t)
	runner := &LineRunner{Bash: sh, Out: &bytes.Buffer{}}

	_, err := runner.RunAll(failingReader{}, state)
	assert.ErrorContains(t, err, "boom")
}
