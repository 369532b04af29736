package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/seblak-bujangan/seblak/internal/seed"
)

// Folder names relative to the project root.
const (
	DataDir      = "data"
	PagesDir     = "pages"
	StaticDir    = "static"
	ImagesDir    = "static/images"
	ManifestFile = "package.json"
)

// Permission constants.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Layout holds every path the commands touch, resolved against one root.
type Layout struct {
	Root         string
	DataDir      string
	PagesDir     string
	StaticDir    string
	ImagesDir    string
	OrdersFile   string
	ProductsFile string
	ManifestPath string
}

// NewLayout resolves the layout for the project at root.
func NewLayout(root string) (*Layout, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root %s: %w", root, err)
	}
	data := filepath.Join(abs, DataDir)
	return &Layout{
		Root:         abs,
		DataDir:      data,
		PagesDir:     filepath.Join(abs, PagesDir),
		StaticDir:    filepath.Join(abs, StaticDir),
		ImagesDir:    filepath.Join(abs, filepath.FromSlash(ImagesDir)),
		OrdersFile:   filepath.Join(data, seed.OrdersFile),
		ProductsFile: filepath.Join(data, seed.ProductsFile),
		ManifestPath: filepath.Join(abs, ManifestFile),
	}, nil
}

// Folders returns the scaffold folders in creation order, parents first.
func (l *Layout) Folders() []string {
	return []string{l.DataDir, l.PagesDir, l.StaticDir, l.ImagesDir}
}

// Rel returns path relative to the project root for display. Paths outside
// the root are returned unchanged.
func (l *Layout) Rel(path string) string {
	rel, err := filepath.Rel(l.Root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
