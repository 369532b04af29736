package project

import "fmt"

// FileSystemError reports a failed folder or file operation.
type FileSystemError struct {
	Op   string // "mkdir", "write", "stat"
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error { return e.Err }
