package domain

import (
	"context"
	"strings"

	m "github.com/mouse-blink/fzindex/internal/model"
	"golang.org/x/sync/errgroup"
)

// minChunkSize keeps parallel scoring from spawning goroutines for a handful
// of paths.
const minChunkSize = 256

// MatchesFilter reports whether filter is a subsequence of path and, if so,
// its score: the number of path bytes skipped before and between the matched
// filter bytes. Matching is byte-wise, case-sensitive and greedy, so a prefix
// of path scores 0 and the empty filter matches everything.
func MatchesFilter(filter, path string) (int, bool) {
	cursor := 0
	score := 0

	for i := 0; i < len(filter); i++ {
		loc := strings.IndexByte(path[cursor:], filter[i])
		if loc < 0 {
			return 0, false
		}

		score += loc
		cursor += loc + 1
	}

	return score, true
}

// MatchPositions returns the byte offsets in path chosen by MatchesFilter.
func MatchPositions(filter, path string) ([]int, bool) {
	positions := make([]int, 0, len(filter))
	cursor := 0

	for i := 0; i < len(filter); i++ {
		loc := strings.IndexByte(path[cursor:], filter[i])
		if loc < 0 {
			return nil, false
		}

		positions = append(positions, cursor+loc)
		cursor += loc + 1
	}

	return positions, true
}

// FilterIndex scores every indexed path against filter and drops the paths
// that do not match. Output keeps index order.
func FilterIndex(filter string, index m.Index) []m.ScoredPath {
	filtered := make([]m.ScoredPath, 0)

	for _, path := range index {
		score, ok := MatchesFilter(filter, string(path))
		if !ok {
			continue
		}

		filtered = append(filtered, m.ScoredPath{Score: score, Path: path})
	}

	return filtered
}

// FilterIndexParallel is FilterIndex spread over up to workers goroutines.
// The index is split into contiguous chunks whose results are concatenated in
// chunk order, so the output equals FilterIndex for any worker count.
func FilterIndexParallel(ctx context.Context, filter string, index m.Index, workers int) ([]m.ScoredPath, error) {
	if workers <= 1 || len(index) <= minChunkSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		return FilterIndex(filter, index), nil
	}

	chunkSize := (len(index) + workers - 1) / workers
	if chunkSize < minChunkSize {
		chunkSize = minChunkSize
	}

	chunks := make([][]m.ScoredPath, (len(index)+chunkSize-1)/chunkSize)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range chunks {
		start := i * chunkSize
		end := min(start+chunkSize, len(index))

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			chunks[i] = FilterIndex(filter, index[start:end])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, chunk := range chunks {
		total += len(chunk)
	}

	filtered := make([]m.ScoredPath, 0, total)
	for _, chunk := range chunks {
		filtered = append(filtered, chunk...)
	}

	return filtered, nil
}
