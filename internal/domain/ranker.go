package domain

import (
	"sort"

	m "github.com/mouse-blink/fzindex/internal/model"
)

// SortIndex orders scored paths by ascending score in place. The sort is
// stable: paths with equal scores keep the order of the scoring pass.
func SortIndex(filtered []m.ScoredPath) {
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score < filtered[j].Score
	})
}
