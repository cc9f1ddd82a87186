package vfs

import (
	"strings"
)

// Resolved is the outcome of a successful resolution.
type Resolved struct {
	Node Node
	// Path is the normalized absolute path without a leading slash.
	// The root is "".
	Path string
}

// walker tracks the chain of directories from the root to the current node.
type walker struct {
	nodes []Node
	names []string
}

func newWalker(root *Directory) *walker {
	return &walker{nodes: []Node{root}}
}

func (w *walker) current() Node {
	return w.nodes[len(w.nodes)-1]
}

// up moves to the parent. Moving above the root stays at the root.
func (w *walker) up() {
	if len(w.names) == 0 {
		return
	}
	w.nodes = w.nodes[:len(w.nodes)-1]
	w.names = w.names[:len(w.names)-1]
}

func (w *walker) down(name string) bool {
	dir, ok := w.current().(*Directory)
	if !ok {
		return false
	}
	child, ok := dir.Child(name)
	if !ok {
		return false
	}
	w.nodes = append(w.nodes, child)
	w.names = append(w.names, name)
	return true
}

func (w *walker) path() string {
	return strings.Join(w.names, "/")
}

// Resolve turns path into a node of the tree under root. A path that is empty
// or starts with "/" is resolved from the root; anything else is resolved
// from cwd, itself a normalized absolute path.
//
// Segments are consumed left to right: "." and empty segments are no-ops,
// ".." moves to the parent and any other name must be a child of the current
// directory. A missing child fails with NoSuchFile naming the path consumed
// so far.
func Resolve(root *Directory, cwd, path string) (Resolved, error) {
	w := newWalker(root)
	segments := strings.Split(path, "/")

	if path != "" && segments[0] != "" {
		for _, name := range SplitPath(cwd) {
			if !w.down(name) {
				return Resolved{}, newPathError(NoSuchFile, "/"+cwd)
			}
		}
	}

	for i, segment := range segments {
		switch segment {
		case "", ".":
			continue
		case "..":
			w.up()
		default:
			if !w.down(segment) {
				return Resolved{}, newPathError(NoSuchFile, strings.Join(segments[:i+1], "/"))
			}
		}
	}

	return Resolved{Node: w.current(), Path: w.path()}, nil
}

// ResolveDir resolves path and requires the result to be a directory.
// It returns the directory and its normalized absolute path.
func ResolveDir(root *Directory, cwd, path string) (*Directory, string, error) {
	resolved, err := Resolve(root, cwd, path)
	if err != nil {
		return nil, "", err
	}
	dir, ok := resolved.Node.(*Directory)
	if !ok {
		return nil, "", newPathError(NotADirectory, path)
	}
	return dir, resolved.Path, nil
}

// ResolveFile resolves path and requires the result to be a file.
func ResolveFile(root *Directory, cwd, path string) (*File, string, error) {
	resolved, err := Resolve(root, cwd, path)
	if err != nil {
		return nil, "", err
	}
	file, ok := resolved.Node.(*File)
	if !ok {
		return nil, "", newPathError(IsADirectory, path)
	}
	return file, resolved.Path, nil
}

// SplitPath returns the non-empty segments of a slash separated path.
func SplitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}

// JoinPath appends name to a normalized absolute directory path.
func JoinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}

// SplitLeaf separates the last segment of path from the path of its parent.
// A relative path without a slash has "." as its parent, so it is resolved
// against the working directory rather than the root.
//
//	SplitLeaf("dir1/new") // "dir1", "new"
//	SplitLeaf("new")      // ".", "new"
//	SplitLeaf("/new/")    // "/", "new"
func SplitLeaf(path string) (parent, leaf string) {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		if path == "" {
			return ".", ""
		}
		return "/", ""
	}

	i := strings.LastIndex(trimmed, "/")
	switch {
	case i < 0:
		return ".", trimmed
	case i == 0:
		return "/", trimmed[1:]
	default:
		return trimmed[:i], trimmed[i+1:]
	}
}

// Insert returns a new root in which child is bound to name inside the
// directory at dirPath, a normalized absolute path. Only the directories on
// the way from the root to dirPath are copied.
func Insert(root *Directory, dirPath, name string, child Node) (*Directory, error) {
	return insert(root, SplitPath(dirPath), nil, name, child)
}

func insert(dir *Directory, rest, seen []string, name string, child Node) (*Directory, error) {
	if len(rest) == 0 {
		if _, exists := dir.Child(name); exists {
			return nil, newPathError(FileExists, strings.Join(append(seen, name), "/"))
		}
		return dir.With(name, child), nil
	}

	seen = append(seen, rest[0])
	next, ok := dir.Child(rest[0])
	if !ok {
		return nil, newPathError(NoSuchFile, strings.Join(seen, "/"))
	}
	sub, ok := next.(*Directory)
	if !ok {
		return nil, newPathError(NotADirectory, strings.Join(seen, "/"))
	}

	updated, err := insert(sub, rest[1:], seen, name, child)
	if err != nil {
		return nil, err
	}
	return dir.With(rest[0], updated), nil
}
