// Package controller provides output adapters for displaying search results.
package controller

import (
	"time"

	m "github.com/mouse-blink/fzindex/internal/model"
)

// HighlightFunc returns the byte offsets of path that should be emphasized.
type HighlightFunc func(path string) ([]int, bool)

// DisplayOption is a functional option for DisplayResults.
type DisplayOption func(*DisplayConfig)

// DisplayConfig holds configuration for rendering ranked results.
type DisplayConfig struct {
	scores    bool
	highlight HighlightFunc
}

// WithScores renders a score column next to every path.
func WithScores() DisplayOption {
	return func(c *DisplayConfig) {
		c.scores = true
	}
}

// WithHighlight emphasizes the characters selected by fn in every path.
func WithHighlight(fn HighlightFunc) DisplayOption {
	return func(c *DisplayConfig) {
		c.highlight = fn
	}
}

// UI defines the interface for displaying pipeline timings and ranked paths.
type UI interface {
	DisplayTiming(stage m.Stage, elapsed time.Duration)
	DisplayResults(results []m.ScoredPath, options ...DisplayOption) error
}
