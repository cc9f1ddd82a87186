// Package bash implements the interpreter of the simulated shell: it parses
// command lines, dispatches them to the command table and returns the next
// session state.
package bash

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/atinylittleshell/memsh/internal/history"
	"github.com/atinylittleshell/memsh/internal/vfs"
)

// Options configures a Bash session.
type Options struct {
	// Extensions are added to the built-in commands. The map key is the name
	// the command is invoked by.
	Extensions map[string]Command

	// Recall seeds the recall buffer, oldest line first.
	Recall []string

	Logger *zap.Logger
}

// Bash is one shell session. It owns the command table and the recall buffer;
// the session state is passed in and returned by Execute.
//
// A Bash is not safe for concurrent use.
type Bash struct {
	id     string
	table  *Table
	recall *history.Cursor
	logger *zap.Logger
}

// New creates a session. It fails when an extension has no name or no Exec.
func New(opts Options) (*Bash, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	id := uuid.New().String()
	logger = logger.With(zap.String("session", id))

	table, err := newTable(opts.Extensions, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build command table: %w", err)
	}

	return &Bash{
		id:     id,
		table:  table,
		recall: history.NewCursor(opts.Recall...),
		logger: logger,
	}, nil
}

// ID returns the session identifier used in logs.
func (b *Bash) ID() string {
	return b.id
}

// Execute runs one command line against state and returns the next state.
// Failures caused by the input are reported as transcript lines.
//
// Execute panics if state.Structure is nil or state.Cwd does not name a
// directory of it.
func (b *Bash) Execute(input string, state State) State {
	mustBeValid(state)
	b.recall.Add(input)

	name, args := ParseInput(input)
	state = state.Apply(Update{History: state.Append(Echo(input, state.Cwd))})
	if name == "" {
		return state
	}

	cmd, ok := b.table.Get(name)
	if !ok {
		b.logger.Debug("command not found", zap.String("command", name))
		return state.Apply(Update{History: state.Append(Output(name + ": command not found"))})
	}

	b.logger.Debug("executing command",
		zap.String("command", name),
		zap.Int("positional", len(args.Positional)),
		zap.Strings("flags", lo.Keys(args.Flags)),
	)
	return state.Apply(cmd.Exec(state, args))
}

// Lookup returns the command registered under name.
func (b *Bash) Lookup(name string) (Command, bool) {
	return b.table.Get(name)
}

// Commands returns every registered command in alphabetical order.
func (b *Bash) Commands() []Command {
	return b.table.All()
}

// Recall returns the submitted lines, oldest first.
func (b *Bash) Recall() []string {
	return b.recall.Entries()
}

func (b *Bash) HasPrevCommand() bool {
	return b.recall.HasPrev()
}

// GetPrevCommand steps back through the submitted lines. The oldest line is
// returned again once reached.
func (b *Bash) GetPrevCommand() (string, bool) {
	return b.recall.Prev()
}

func (b *Bash) HasNextCommand() bool {
	return b.recall.HasNext()
}

// GetNextCommand steps forward through the submitted lines. It returns false
// after stepping past the newest line, when the input should be cleared.
func (b *Bash) GetNextCommand() (string, bool) {
	return b.recall.Next()
}

func mustBeValid(state State) {
	if state.Structure == nil {
		panic("bash: state has no structure")
	}
	if _, _, err := vfs.ResolveDir(state.Structure, "", state.Cwd); err != nil {
		panic(fmt.Sprintf("bash: invalid working directory %q: %v", state.Cwd, err))
	}
}
