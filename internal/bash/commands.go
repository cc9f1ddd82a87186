package bash

import (
	"errors"
	"strings"

	"github.com/samber/lo"

	"github.com/atinylittleshell/memsh/internal/vfs"
)

const (
	helpHeader = "memsh: these shell commands are defined internally. Type 'help' to see this list."
	helpFooter = "Paths may be absolute (/dir1/file) or relative to the working directory (../file)."
)

func builtinCommands(t *Table) []Command {
	return []Command{
		{
			Name:        "help",
			Description: "list the available commands",
			Exec: func(state State, _ Args) Update {
				return help(t, state)
			},
		},
		{Name: "clear", Description: "clear the terminal screen", Exec: clearScreen},
		{Name: "ls", Description: "list directory contents, --all includes hidden entries", Exec: ls},
		{Name: "cat", Description: "print the contents of a file", Exec: cat},
		{Name: "mkdir", Description: "create a directory", Exec: mkdir},
		{Name: "cd", Description: "change the working directory", Exec: cd},
		{Name: "pwd", Description: "print the working directory", Exec: pwd},
	}
}

func help(t *Table, state State) Update {
	lines := lo.FilterMap(t.All(), func(cmd Command, _ int) (HistoryEntry, bool) {
		return Output(cmd.Name + " - " + cmd.Description), cmd.Name != "help"
	})

	entries := make([]HistoryEntry, 0, len(lines)+2)
	entries = append(entries, Output(helpHeader))
	entries = append(entries, lines...)
	entries = append(entries, Output(helpFooter))
	return Update{History: state.Append(entries...)}
}

func clearScreen(State, Args) Update {
	return Update{History: []HistoryEntry{}}
}

func ls(state State, args Args) Update {
	path, ok := args.Arg(0)
	if !ok {
		path = "."
	}

	dir, _, err := vfs.ResolveDir(state.Structure, state.Cwd, path)
	if err != nil {
		return failure(state, err)
	}

	names := dir.Names()
	if !args.Flag("all") {
		names = lo.Reject(names, func(name string, _ int) bool {
			return strings.HasPrefix(name, ".")
		})
	}
	return Update{History: state.Append(Output(strings.Join(names, " ")))}
}

func cat(state State, args Args) Update {
	path, ok := args.Arg(0)
	if !ok {
		return missingOperand(state, "cat")
	}

	file, _, err := vfs.ResolveFile(state.Structure, state.Cwd, path)
	if err != nil {
		return failure(state, err)
	}
	return Update{History: state.Append(Output(file.Content))}
}

func mkdir(state State, args Args) Update {
	target, ok := args.Arg(0)
	if !ok {
		return missingOperand(state, "mkdir")
	}

	parentPath, name := vfs.SplitLeaf(target)
	parent, dirPath, err := vfs.ResolveDir(state.Structure, state.Cwd, parentPath)
	if err != nil {
		if errors.Is(err, vfs.ErrNotADirectory) {
			err = &vfs.PathError{Kind: vfs.NoSuchFile, Path: target}
		}
		return failure(state, err)
	}

	// "", "." and ".." always name an existing directory
	_, exists := parent.Child(name)
	if exists || name == "" || name == "." || name == ".." {
		return failure(state, &vfs.PathError{Kind: vfs.FileExists, Path: target})
	}

	structure, err := vfs.Insert(state.Structure, dirPath, name, vfs.NewDirectory())
	if err != nil {
		return failure(state, err)
	}
	return Update{Structure: structure}
}

func cd(state State, args Args) Update {
	path, ok := args.Arg(0)
	if !ok {
		path = "/"
	}

	_, cwd, err := vfs.ResolveDir(state.Structure, state.Cwd, path)
	if err != nil {
		return failure(state, err)
	}
	return Update{Cwd: lo.ToPtr(cwd)}
}

func pwd(state State, _ Args) Update {
	return Update{History: state.Append(Output("/" + state.Cwd))}
}

func failure(state State, err error) Update {
	return Update{History: state.Append(Output(err.Error()))}
}

func missingOperand(state State, name string) Update {
	return Update{History: state.Append(Output(name + ": missing operand"))}
}
