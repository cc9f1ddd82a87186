package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/atinylittleshell/memsh/internal/bash"
	"github.com/atinylittleshell/memsh/internal/styles"
)

// LineRunner executes commands without a terminal UI and prints the lines
// each command adds to the transcript.
type LineRunner struct {
	Bash   *bash.Bash
	Prompt string
	// Echo prints submitted lines after their prompt, as a transcript would.
	Echo bool
	Out  io.Writer
}

// Run executes one command line and returns the next state.
func (r *LineRunner) Run(line string, state bash.State) bash.State {
	before := len(state.History)
	next := r.Bash.Execute(line, state)

	// clear leaves nothing to print
	if len(next.History) < before {
		return next
	}

	for _, entry := range next.History[before:] {
		switch {
		case entry.IsEcho():
			if r.Echo {
				fmt.Fprintln(r.Out, styles.PROMPT(Prompt(r.Prompt, *entry.Cwd))+" "+entry.Value)
			}
		case isErrorLine(entry.Value):
			fmt.Fprintln(r.Out, styles.ERROR(entry.Value))
		default:
			fmt.Fprintln(r.Out, entry.Value)
		}
	}
	return next
}

// RunAll executes every line read from in until EOF.
func (r *LineRunner) RunAll(in io.Reader, state bash.State) (bash.State, error) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		state = r.Run(scanner.Text(), state)
	}
	if err := scanner.Err(); err != nil {
		return state, fmt.Errorf("failed to read input: %w", err)
	}
	return state, nil
}
