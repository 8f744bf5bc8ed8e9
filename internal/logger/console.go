// Package logger reports non-fatal walk diagnostics to a console stream.
//
// Output is one line per diagnostic, safe for concurrent use. The label is
// colored when the destination is a terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	m "github.com/mouse-blink/fzindex/internal/model"
)

// ConsoleLogger writes diagnostics to a writer, typically standard error.
type ConsoleLogger struct {
	writer      io.Writer
	mutex       sync.Mutex
	colorOutput bool
	label       *color.Color
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, diagnostics are silently discarded.
func NewConsoleLogger(writer io.Writer) *ConsoleLogger {
	label := color.New(color.FgRed)
	label.EnableColor()

	return &ConsoleLogger{
		writer:      writer,
		colorOutput: IsTerminal(writer),
		label:       label,
	}
}

// IsTerminal reports whether w is a terminal that accepts color escapes.
// Redirected files, pipes and in-memory buffers return false, as does any
// writer when NO_COLOR is set.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok || file == nil {
		return false
	}

	if color.NoColor && (file == os.Stdout || file == os.Stderr) {
		return false
	}

	fd := file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Report writes one diagnostic line: label, path and system error.
func (cl *ConsoleLogger) Report(diagnostic m.Diagnostic) {
	if cl.writer == nil {
		return
	}

	label := diagnostic.Label()
	if cl.colorOutput {
		label = cl.label.Sprint(label)
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	_, _ = fmt.Fprintf(cl.writer, "%s %s %s\n", label, diagnostic.Path, diagnostic.Reason())
}
