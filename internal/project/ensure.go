package project

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/seblak-bujangan/seblak/internal/seed"
)

// EnsureScaffold creates the data, pages, static and static/images folders
// if they don't exist. Progress is printed to w.
func EnsureScaffold(w io.Writer, l *Layout) error {
	for _, dir := range l.Folders() {
		if err := ensureDir(w, l, dir); err != nil {
			return err
		}
	}
	return nil
}

// EnsureSeeds creates pesanan.csv and produk.csv with their default content
// when missing. Existing files are left byte-for-byte untouched.
func EnsureSeeds(w io.Writer, l *Layout) error {
	files, err := seed.Files()
	if err != nil {
		return err
	}
	paths := map[string]string{
		seed.OrdersFile:   l.OrdersFile,
		seed.ProductsFile: l.ProductsFile,
	}
	for _, f := range files {
		if err := ensureFile(w, l, paths[f.Name], f.Content); err != nil {
			return err
		}
	}
	return nil
}

// ensureDir creates a directory (and its parents) if it doesn't exist.
func ensureDir(w io.Writer, l *Layout, path string) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", l.Rel(path))
			return nil
		}
		return &FileSystemError{Op: "mkdir", Path: path, Err: errors.New("exists but is not a directory")}
	}

	if err := os.MkdirAll(path, DirPerm); err != nil {
		return &FileSystemError{Op: "mkdir", Path: path, Err: err}
	}
	fmt.Fprintf(w, "  [ OK ] Created %s/\n", l.Rel(path))
	return nil
}

// ensureFile creates a file with content if it doesn't exist. O_EXCL keeps a
// file that appeared after the check from being truncated.
func ensureFile(w io.Writer, l *Layout, path string, content []byte) error {
	if _, err := os.Lstat(path); err == nil {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", l.Rel(path))
		return nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, FilePerm)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", l.Rel(path))
			return nil
		}
		return &FileSystemError{Op: "write", Path: path, Err: err}
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return &FileSystemError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &FileSystemError{Op: "write", Path: path, Err: err}
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", l.Rel(path))
	return nil
}
