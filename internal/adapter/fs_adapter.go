// Package adapter contains infrastructure adapters for the fzindex CLI.
package adapter

import (
	"os"
	"path/filepath"

	m "github.com/mouse-blink/fzindex/internal/model"
)

// IndexFSAdapter abstracts the filesystem operations the indexer relies on
// when walking a tree. It hides direct `os` access so the walk logic can be
// tested against fakes.
type IndexFSAdapter interface {
	// ReadDirNames lists the entry names of a directory in the order the
	// operating system returns them. The directory handle is closed before
	// returning. A partial listing may be returned together with an error.
	ReadDirNames(path m.Path) ([]string, error)

	// Stat returns metadata for path, following symbolic links.
	Stat(path m.Path) (os.FileInfo, error)

	// SameFile reports whether two stat results describe the same file.
	SameFile(a, b os.FileInfo) bool

	// JoinPath joins a parent path and an entry name.
	JoinPath(parent m.Path, name string) m.Path
}

// LocalIndexFSAdapter implements IndexFSAdapter on the local filesystem.
type LocalIndexFSAdapter struct{}

// NewLocalIndexFSAdapter constructs a LocalIndexFSAdapter instance ready to
// be wired into the indexer.
func NewLocalIndexFSAdapter() *LocalIndexFSAdapter {
	return &LocalIndexFSAdapter{}
}

// ReadDirNames opens path and reads every name in directory order.
func (a *LocalIndexFSAdapter) ReadDirNames(path m.Path) ([]string, error) {
	// #nosec G304 - walking user supplied directories is the point
	d, err := os.Open(string(path))
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = d.Close()
	}()

	return d.Readdirnames(-1)
}

// Stat returns os.FileInfo metadata for the given path.
func (a *LocalIndexFSAdapter) Stat(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// SameFile reports whether fi1 and fi2 describe the same underlying file.
func (a *LocalIndexFSAdapter) SameFile(fi1, fi2 os.FileInfo) bool {
	if fi1 == nil || fi2 == nil {
		return false
	}

	return os.SameFile(fi1, fi2)
}

// JoinPath joins parent and name and cleans the result, so "." + "main.cc"
// yields "main.cc".
func (a *LocalIndexFSAdapter) JoinPath(parent m.Path, name string) m.Path {
	return m.Path(filepath.Join(string(parent), name))
}
