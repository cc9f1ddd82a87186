package bash

import (
	"strings"

	"github.com/samber/lo"
	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"

	"github.com/atinylittleshell/memsh/internal/vfs"
)

const maxSuggestions = 3

// Autocomplete completes the last path segment of token against the
// directory its prefix names. It returns false when the prefix does not
// resolve to a directory or when zero or several entries match.
func (b *Bash) Autocomplete(token string, state State) (string, bool) {
	prefix, fragment, hasSlash := cutLastSlash(token)

	dirPath := "."
	if hasSlash {
		dirPath = prefix
		if dirPath == "" {
			dirPath = "/"
		}
	}

	dir, _, err := vfs.ResolveDir(state.Structure, state.Cwd, dirPath)
	if err != nil {
		return "", false
	}

	matches := lo.Filter(dir.Names(), func(name string, _ int) bool {
		return strings.HasPrefix(name, fragment)
	})
	if len(matches) != 1 {
		b.logger.Debug("no unique completion", zap.String("token", token), zap.Int("matches", len(matches)))
		return "", false
	}

	if !hasSlash {
		return matches[0], true
	}
	return prefix + "/" + matches[0], true
}

// Suggest returns up to three command names close to name, best first.
func (b *Bash) Suggest(name string) []string {
	if name == "" {
		return nil
	}
	matches := fuzzy.Find(name, b.table.Names())
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	return lo.Map(matches, func(m fuzzy.Match, _ int) string {
		return m.Str
	})
}

func cutLastSlash(token string) (prefix, fragment string, found bool) {
	i := strings.LastIndex(token, "/")
	if i < 0 {
		return "", token, false
	}
	return token[:i], token[i+1:], true
}
