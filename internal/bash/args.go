package bash

import "strings"

// Args holds the parsed arguments of a command line.
type Args struct {
	// Positional holds the non-flag tokens in the order they were typed.
	Positional []string
	// Flags holds every --name token as name: true.
	Flags map[string]bool
}

// Arg returns the i-th positional argument.
func (a Args) Arg(i int) (string, bool) {
	if i < 0 || i >= len(a.Positional) {
		return "", false
	}
	return a.Positional[i], true
}

// Flag reports whether --name was given.
func (a Args) Flag(name string) bool {
	return a.Flags[name]
}

// ParseInput splits a command line on whitespace into the command name and
// its arguments. Flags may appear anywhere after the name and do not shift
// positional indices.
func ParseInput(line string) (string, Args) {
	args := Args{Flags: map[string]bool{}}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", args
	}

	for _, token := range fields[1:] {
		if name, ok := strings.CutPrefix(token, "--"); ok {
			args.Flags[name] = true
			continue
		}
		args.Positional = append(args.Positional, token)
	}

	return fields[0], args
}
