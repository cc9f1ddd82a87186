package bash

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ExecFunc runs a command against the current state. It must not modify the
// state it receives and returns only the fields it changes.
type ExecFunc func(state State, args Args) Update

// Command describes a command that can be typed at the prompt.
type Command struct {
	Name        string
	Description string
	Exec        ExecFunc
}

var (
	ErrEmptyCommandName = errors.New("command name is empty")
	ErrMissingExec      = errors.New("command has no exec function")
)

// Table maps command names to commands. It is built once and never changes.
type Table struct {
	commands map[string]Command
}

// newTable merges extensions into the built-in commands. Built-ins keep
// their definition when an extension uses the same name.
func newTable(extensions map[string]Command, logger *zap.Logger) (*Table, error) {
	t := &Table{commands: map[string]Command{}}
	for _, cmd := range builtinCommands(t) {
		t.commands[cmd.Name] = cmd
	}

	names := lo.Keys(extensions)
	slices.Sort(names)
	for _, name := range names {
		cmd := extensions[name]
		if name == "" {
			return nil, fmt.Errorf("invalid extension: %w", ErrEmptyCommandName)
		}
		if cmd.Exec == nil {
			return nil, fmt.Errorf("invalid extension %q: %w", name, ErrMissingExec)
		}
		if _, exists := t.commands[name]; exists {
			logger.Warn("ignoring extension that shadows a built-in command", zap.String("command", name))
			continue
		}
		cmd.Name = name
		t.commands[name] = cmd
	}

	return t, nil
}

// Get returns the command registered under name.
func (t *Table) Get(name string) (Command, bool) {
	cmd, ok := t.commands[name]
	return cmd, ok
}

// Names returns the registered command names in alphabetical order.
func (t *Table) Names() []string {
	names := lo.Keys(t.commands)
	slices.Sort(names)
	return names
}

// All returns the registered commands in alphabetical order.
func (t *Table) All() []Command {
	return lo.Map(t.Names(), func(name string, _ int) Command {
		return t.commands[name]
	})
}
