package domain

import (
	"errors"
	"os"

	"github.com/mouse-blink/fzindex/internal/adapter"
	m "github.com/mouse-blink/fzindex/internal/model"
)

var errDirectoryCycle = errors.New("directory already visited")

// Reporter receives non-fatal walk diagnostics at the point they occur.
type Reporter interface {
	Report(diagnostic m.Diagnostic)
}

// Indexer walks a directory tree and records every entry beneath it.
type Indexer interface {
	// BuildIndex returns every non-ignored path under root in depth-first
	// pre-order, together with the diagnostics met on the way. Failures never
	// abort the walk.
	BuildIndex(root m.Path) (m.Index, []m.Diagnostic)
}

type indexer struct {
	fsAdapter adapter.IndexFSAdapter
	ignore    IgnoreSet
	reporter  Reporter
}

// NewIndexer creates an Indexer backed by the provided filesystem adapter.
// A nil reporter discards diagnostics; they are still returned by BuildIndex.
func NewIndexer(fsAdapter adapter.IndexFSAdapter, ignore IgnoreSet, reporter Reporter) Indexer {
	return &indexer{
		fsAdapter: fsAdapter,
		ignore:    ignore,
		reporter:  reporter,
	}
}

// dirFrame is a directory whose listing is being consumed.
type dirFrame struct {
	path  m.Path
	info  os.FileInfo
	names []string
	next  int
}

type walkState struct {
	index       m.Index
	diagnostics []m.Diagnostic
}

// BuildIndex walks root with an explicit stack. A directory entry is appended
// before its children and its children are exhausted before the next sibling.
func (ix *indexer) BuildIndex(root m.Path) (m.Index, []m.Diagnostic) {
	state := &walkState{index: m.Index{}}

	var stack []*dirFrame

	if frame, ok := ix.openDir(state, root, nil); ok {
		stack = append(stack, frame)
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.names) {
			stack = stack[:len(stack)-1]
			continue
		}

		name := top.names[top.next]
		top.next++

		if name == "." || name == ".." || ix.ignore.Ignores(name) {
			continue
		}

		fullPath := ix.fsAdapter.JoinPath(top.path, name)

		info, err := ix.fsAdapter.Stat(fullPath)
		if err != nil {
			ix.report(state, m.DiagnosticStat, fullPath, err)
			continue
		}

		state.index = append(state.index, fullPath)

		if !info.IsDir() {
			continue
		}

		if ix.onStack(stack, info) {
			ix.report(state, m.DiagnosticCycle, fullPath, errDirectoryCycle)
			continue
		}

		if frame, ok := ix.openDir(state, fullPath, info); ok {
			stack = append(stack, frame)
		}
	}

	return state.index, state.diagnostics
}

// openDir lists a directory. A listing error is reported; whatever names were
// read before the error are still walked.
func (ix *indexer) openDir(state *walkState, path m.Path, info os.FileInfo) (*dirFrame, bool) {
	names, err := ix.fsAdapter.ReadDirNames(path)
	if err != nil {
		ix.report(state, m.DiagnosticReadDir, path, err)

		if len(names) == 0 {
			return nil, false
		}
	}

	if info == nil {
		// Root identity is only needed for cycle detection.
		info, _ = ix.fsAdapter.Stat(path)
	}

	return &dirFrame{path: path, info: info, names: names}, true
}

func (ix *indexer) onStack(stack []*dirFrame, info os.FileInfo) bool {
	for _, frame := range stack {
		if ix.fsAdapter.SameFile(frame.info, info) {
			return true
		}
	}

	return false
}

func (ix *indexer) report(state *walkState, kind m.DiagnosticKind, path m.Path, err error) {
	diagnostic := m.Diagnostic{Kind: kind, Path: path, Err: err}
	state.diagnostics = append(state.diagnostics, diagnostic)

	if ix.reporter != nil {
		ix.reporter.Report(diagnostic)
	}
}
