// Package vfs models the in-memory filesystem tree a session navigates.
// Trees are immutable: every mutation returns a new root that shares all
// untouched subtrees with the old one.
package vfs

import "slices"

// Node is either a *Directory or a *File.
type Node interface {
	isNode()
}

// File is a leaf holding text content.
type File struct {
	Content string
}

func (*File) isNode() {}

// NewFile creates a file with the given content.
func NewFile(content string) *File {
	return &File{Content: content}
}

// Entry is a named child of a Directory.
type Entry struct {
	Name string
	Node Node
}

// Directory maps unique child names to nodes and remembers the order in which
// names were first added. A nil *Directory behaves as an empty directory.
type Directory struct {
	names    []string
	children map[string]Node
}

func (*Directory) isNode() {}

// NewDirectory builds a directory from entries in order. A repeated name
// replaces the earlier node but keeps the earlier position.
func NewDirectory(entries ...Entry) *Directory {
	d := &Directory{
		names:    make([]string, 0, len(entries)),
		children: make(map[string]Node, len(entries)),
	}
	for _, e := range entries {
		if _, ok := d.children[e.Name]; !ok {
			d.names = append(d.names, e.Name)
		}
		d.children[e.Name] = e.Node
	}
	return d
}

// Len returns the number of children.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.names)
}

// Names returns the child names in insertion order.
func (d *Directory) Names() []string {
	if d == nil {
		return []string{}
	}
	return slices.Clone(d.names)
}

// Child looks up a direct child by exact name.
func (d *Directory) Child(name string) (Node, bool) {
	if d == nil {
		return nil, false
	}
	node, ok := d.children[name]
	return node, ok
}

// Entries returns the children in insertion order.
func (d *Directory) Entries() []Entry {
	entries := make([]Entry, 0, d.Len())
	if d == nil {
		return entries
	}
	for _, name := range d.names {
		entries = append(entries, Entry{Name: name, Node: d.children[name]})
	}
	return entries
}

// With returns a copy of d with name bound to child. The receiver is left
// untouched and every other child is shared with the copy.
func (d *Directory) With(name string, child Node) *Directory {
	out := &Directory{
		names:    make([]string, 0, d.Len()+1),
		children: make(map[string]Node, d.Len()+1),
	}
	if d != nil {
		out.names = append(out.names, d.names...)
		for k, v := range d.children {
			out.children[k] = v
		}
	}
	if _, ok := out.children[name]; !ok {
		out.names = append(out.names, name)
	}
	out.children[name] = child
	return out
}

// Stats summarizes the contents of a tree.
type Stats struct {
	Files       int
	Directories int
	Bytes       int64
}

// Count walks the tree below root. The root itself is not counted.
func Count(root *Directory) Stats {
	var stats Stats
	for _, e := range root.Entries() {
		switch n := e.Node.(type) {
		case *File:
			stats.Files++
			stats.Bytes += int64(len(n.Content))
		case *Directory:
			sub := Count(n)
			stats.Directories += sub.Directories + 1
			stats.Files += sub.Files
			stats.Bytes += sub.Bytes
		}
	}
	return stats
}
