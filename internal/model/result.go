package model

// ScoredPath is an indexed path that matched the filter.
type ScoredPath struct {
	Score int  // skipped characters between matches, lower is better
	Path  Path
}
