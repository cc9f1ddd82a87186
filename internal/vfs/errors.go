package vfs

import (
	"errors"
	"fmt"
)

// Kind classifies a path failure.
type Kind int

const (
	NoSuchFile Kind = iota + 1
	NotADirectory
	IsADirectory
	FileExists
)

var (
	ErrNoSuchFile    = errors.New("no such file or directory")
	ErrNotADirectory = errors.New("not a directory")
	ErrIsADirectory  = errors.New("is a directory")
	ErrFileExists    = errors.New("file exists")
)

func (k Kind) String() string {
	switch k {
	case NoSuchFile:
		return "NoSuchFile"
	case NotADirectory:
		return "NotADirectory"
	case IsADirectory:
		return "IsADirectory"
	case FileExists:
		return "FileExists"
	default:
		return "Unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case NoSuchFile:
		return ErrNoSuchFile
	case NotADirectory:
		return ErrNotADirectory
	case IsADirectory:
		return ErrIsADirectory
	case FileExists:
		return ErrFileExists
	default:
		return errors.New("unknown path error")
	}
}

// PathError reports a path that could not be used the way a command needed.
// Its message is shown to the user verbatim, e.g. "is a directory: dir1".
type PathError struct {
	Kind Kind
	Path string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind.sentinel(), e.Path)
}

func (e *PathError) Unwrap() error {
	return e.Kind.sentinel()
}

func newPathError(kind Kind, path string) *PathError {
	return &PathError{Kind: kind, Path: path}
}
