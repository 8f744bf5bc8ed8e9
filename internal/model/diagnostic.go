package model

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DiagnosticKind classifies a non-fatal failure met while walking.
type DiagnosticKind string

const (
	// DiagnosticReadDir is reported when a directory cannot be listed.
	DiagnosticReadDir DiagnosticKind = "read-dir"
	// DiagnosticStat is reported when an entry's metadata cannot be read.
	DiagnosticStat DiagnosticKind = "stat"
	// DiagnosticCycle is reported when a directory repeats one of its ancestors.
	DiagnosticCycle DiagnosticKind = "cycle"
)

// Diagnostic describes one skipped directory or entry.
type Diagnostic struct {
	Kind DiagnosticKind
	Path Path
	Err  error
}

// Label returns the human readable prefix for the diagnostic kind.
func (d Diagnostic) Label() string {
	switch d.Kind {
	case DiagnosticReadDir:
		return "Failed to read dir:"
	case DiagnosticStat:
		return "Failed to stat:"
	case DiagnosticCycle:
		return "Skipping directory cycle:"
	default:
		return "Failed:"
	}
}

// Reason returns the system error description without the path prefix
// that os errors carry, e.g. "permission denied".
func (d Diagnostic) Reason() string {
	if d.Err == nil {
		return ""
	}

	var pathErr *fs.PathError
	if errors.As(d.Err, &pathErr) {
		return pathErr.Err.Error()
	}

	var sysErr *os.SyscallError
	if errors.As(d.Err, &sysErr) {
		return sysErr.Err.Error()
	}

	return d.Err.Error()
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s %s", d.Label(), d.Path, d.Reason())
}
