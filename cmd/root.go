// Package cmd provides the root command and CLI setup for fzindex.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mouse-blink/fzindex/internal/adapter"
	"github.com/mouse-blink/fzindex/internal/controller"
	"github.com/mouse-blink/fzindex/internal/domain"
	"github.com/mouse-blink/fzindex/internal/logger"
	m "github.com/mouse-blink/fzindex/internal/model"
	"github.com/spf13/cobra"
)

const usageLine = "Usage: fzindex <directory> <filter>"

var errUsage = errors.New("expected exactly two arguments: <directory> <filter>")

var fsAdapter adapter.IndexFSAdapter

// newWorkflow wires a Workflow for one run. Tests replace it with a mock.
var newWorkflow = func(ui controller.UI, reporter domain.Reporter) domain.Workflow {
	indexer := domain.NewIndexer(fsAdapter, domain.DefaultIgnoreSet(), reporter)

	return domain.NewWorkflow(indexer, ui)
}

func init() {
	fsAdapter = adapter.NewLocalIndexFSAdapter()
}

var parallelFlag int
var limitFlag int
var scoresFlag bool
var highlightFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fzindex <directory> <filter>",
		Short: "Fuzzy find paths beneath a directory",
		Long: fmt.Sprintf(`fzindex indexes every file and directory beneath <directory> and prints
the paths that contain <filter> as a subsequence, best matches first.

A path's score is the number of characters skipped between the matched
filter characters; "mn" matches "main.cc" with a score of 2. Matching is
case-sensitive. Entries named %s are never indexed.

Flags must come before <directory>; everything after it is positional.

Timings for building, filtering and sorting the index are printed before
the results.`, ignoredNamesHelp(domain.DefaultIgnoreSet())),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), usageLine)
				return errUsage
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := controller.NewSimpleUI(cmd)
			reporter := logger.NewConsoleLogger(cmd.ErrOrStderr())

			return newWorkflow(ui, reporter).Search(cmd.Context(), domain.SearchArgs{
				Root:       m.Path(args[0]),
				Filter:     args[1],
				Workers:    parallelFlag,
				Limit:      limitFlag,
				ShowScores: scoresFlag,
				Highlight:  highlightFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers for scoring paths")
	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 0, "print only the best N paths (0 prints all)")
	cmd.Flags().BoolVarP(&scoresFlag, "scores", "s", false, "print a score column next to every path")
	cmd.Flags().BoolVar(&highlightFlag, "highlight", false, "highlight matched characters when the output supports color")
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func ignoredNamesHelp(set domain.IgnoreSet) string {
	names := set.Names()
	for i, name := range names {
		names[i] = fmt.Sprintf("%q", name)
	}

	return strings.Join(names, ", ")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if !errors.Is(err, errUsage) {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		os.Exit(1)
	}
}
