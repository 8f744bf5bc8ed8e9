package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/mouse-blink/fzindex/internal/controller"
	m "github.com/mouse-blink/fzindex/internal/model"
)

// SearchArgs holds the inputs of one search run.
type SearchArgs struct {
	Root   m.Path
	Filter string
	// Workers is the number of goroutines scoring paths; <= 1 is sequential.
	Workers int
	// Limit caps the number of printed results; 0 prints everything.
	Limit      int
	ShowScores bool
	Highlight  bool
}

// Workflow runs the index → filter → sort pipeline.
type Workflow interface {
	Search(ctx context.Context, args SearchArgs) error
}

type workflow struct {
	indexer Indexer
	ui      controller.UI
	now     func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided indexer and UI.
func NewWorkflow(indexer Indexer, ui controller.UI) Workflow {
	return &workflow{
		indexer: indexer,
		ui:      ui,
		now:     time.Now,
	}
}

// Search builds the index under args.Root, scores it against args.Filter,
// ranks the matches and hands them to the UI. Each stage's wall-clock time is
// displayed as soon as the stage completes. Walk failures are reported by the
// indexer and never fail the run.
func (w *workflow) Search(ctx context.Context, args SearchArgs) error {
	start := w.now()
	index, _ := w.indexer.BuildIndex(args.Root)
	w.ui.DisplayTiming(m.StageBuildIndex, w.now().Sub(start))

	start = w.now()

	filtered, err := FilterIndexParallel(ctx, args.Filter, index, args.Workers)
	if err != nil {
		return fmt.Errorf("failed to filter index: %w", err)
	}

	w.ui.DisplayTiming(m.StageFilterIndex, w.now().Sub(start))

	start = w.now()
	SortIndex(filtered)
	w.ui.DisplayTiming(m.StageSortIndex, w.now().Sub(start))

	if args.Limit > 0 && len(filtered) > args.Limit {
		filtered = filtered[:args.Limit]
	}

	return w.ui.DisplayResults(filtered, displayOptions(args)...)
}

func displayOptions(args SearchArgs) []controller.DisplayOption {
	var options []controller.DisplayOption

	if args.ShowScores {
		options = append(options, controller.WithScores())
	}

	if args.Highlight {
		filter := args.Filter
		options = append(options, controller.WithHighlight(func(path string) ([]int, bool) {
			return MatchPositions(filter, path)
		}))
	}

	return options
}
