// Package model defines the data structures shared by the indexing pipeline.
package model

// Path represents a file system path.
type Path string

// Index is the ordered list of paths produced by a directory walk.
// Order is walk visitation order; entries are neither sorted nor deduplicated.
type Index []Path

// Stage identifies one step of the search pipeline for timing output.
type Stage string

const (
	// StageBuildIndex covers the directory walk.
	StageBuildIndex Stage = "build index"
	// StageFilterIndex covers subsequence scoring of every indexed path.
	StageFilterIndex Stage = "filter index"
	// StageSortIndex covers ranking of the scored paths.
	StageSortIndex Stage = "sort index"
)
