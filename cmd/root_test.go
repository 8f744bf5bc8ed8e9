package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/mouse-blink/fzindex/internal/controller"
	"github.com/mouse-blink/fzindex/internal/domain"
	m "github.com/mouse-blink/fzindex/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockWorkflow struct {
	mock.Mock
}

func (w *mockWorkflow) Search(ctx context.Context, args domain.SearchArgs) error {
	return w.Called(ctx, args).Error(0)
}

// useWorkflow overrides the workflow factory for the duration of a test.
func useWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	original := newWorkflow
	newWorkflow = func(controller.UI, domain.Reporter) domain.Workflow { return wf }

	t.Cleanup(func() { newWorkflow = original })
}

func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

var timingLines = regexp.MustCompile(`^Time to build index: \S+\nTime to filter index: \S+\nTime to sort index: \S+\n`)

func TestRootCmd_Usage(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"."},
		{".", "mn", "extra"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			wf := &mockWorkflow{}
			useWorkflow(t, wf)

			stdout, stderr, err := executeRoot(t, args...)

			require.ErrorIs(t, err, errUsage)
			assert.Equal(t, usageLine+"\n", stdout)
			assert.Empty(t, stderr)
			wf.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
		})
	}
}

func TestRootCmd_ForwardsArgumentsAndFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		wf := &mockWorkflow{}
		useWorkflow(t, wf)

		wf.On("Search", mock.Anything, domain.SearchArgs{
			Root:    "src",
			Filter:  "mn",
			Workers: 1,
		}).Return(nil).Once()

		_, _, err := executeRoot(t, "src", "mn")
		require.NoError(t, err)

		wf.AssertExpectations(t)
	})

	t.Run("all flags", func(t *testing.T) {
		wf := &mockWorkflow{}
		useWorkflow(t, wf)

		wf.On("Search", mock.Anything, mock.MatchedBy(func(args domain.SearchArgs) bool {
			return args.Root == m.Path("/tmp/project") &&
				args.Filter == "rt" &&
				args.Workers == 4 &&
				args.Limit == 10 &&
				args.ShowScores &&
				args.Highlight
		})).Return(nil).Once()

		_, _, err := executeRoot(t, "--parallel", "4", "-n", "10", "--scores", "--highlight", "/tmp/project", "rt")
		require.NoError(t, err)

		wf.AssertExpectations(t)
	})

	t.Run("filter starting with a dash after separator", func(t *testing.T) {
		wf := &mockWorkflow{}
		useWorkflow(t, wf)

		wf.On("Search", mock.Anything, mock.MatchedBy(func(args domain.SearchArgs) bool {
			return args.Filter == "-test"
		})).Return(nil).Once()

		_, _, err := executeRoot(t, "--", ".", "-test")
		require.NoError(t, err)

		wf.AssertExpectations(t)
	})
}

func TestRootCmd_DashedArgumentsArePositional(t *testing.T) {
	for _, filter := range []string{"-s", "-x", "-n", "--scores"} {
		t.Run(filter, func(t *testing.T) {
			wf := &mockWorkflow{}
			useWorkflow(t, wf)

			wf.On("Search", mock.Anything, domain.SearchArgs{
				Root:    ".",
				Filter:  filter,
				Workers: 1,
			}).Return(nil).Once()

			stdout, _, err := executeRoot(t, ".", filter)
			require.NoError(t, err)

			assert.Empty(t, stdout)
			wf.AssertExpectations(t)
		})
	}

	t.Run("flags before the directory still apply", func(t *testing.T) {
		wf := &mockWorkflow{}
		useWorkflow(t, wf)

		wf.On("Search", mock.Anything, mock.MatchedBy(func(args domain.SearchArgs) bool {
			return args.ShowScores && args.Filter == "-n"
		})).Return(nil).Once()

		_, _, err := executeRoot(t, "-s", ".", "-n")
		require.NoError(t, err)

		wf.AssertExpectations(t)
	})
}

func TestRootCmd_HelpListsIgnoredNames(t *testing.T) {
	assert.Contains(t, newRootCmd().Long, `Entries named ".git" are never indexed.`)
	assert.Equal(t, `".git", "vendor"`, ignoredNamesHelp(domain.NewIgnoreSet("vendor", ".git")))
}

func TestRootCmd_EndToEnd(t *testing.T) {
	t.Run("prints timings then ranked paths", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "main.cc"))
		writeFile(t, filepath.Join(root, "README.md"))
		writeFile(t, filepath.Join(root, ".git", "config"))
		t.Chdir(root)

		stdout, stderr, err := executeRoot(t, ".", "mn")
		require.NoError(t, err)

		require.Regexp(t, timingLines, stdout)
		assert.Equal(t, "main.cc\n", timingLines.ReplaceAllString(stdout, ""))
		assert.Empty(t, stderr)
	})

	t.Run("paths under dot root carry no dot prefix", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "main.cc"))
		t.Chdir(root)

		stdout, _, err := executeRoot(t, ".", "./m")
		require.NoError(t, err)
		assert.Empty(t, timingLines.ReplaceAllString(stdout, ""))

		stdout, _, err = executeRoot(t, "./", "m")
		require.NoError(t, err)
		assert.Equal(t, "main.cc\n", timingLines.ReplaceAllString(stdout, ""))
	})

	t.Run("empty filter lists every indexed path", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a", "b.txt"))
		writeFile(t, filepath.Join(root, ".git", "HEAD"))
		t.Chdir(root)

		stdout, _, err := executeRoot(t, ".", "")
		require.NoError(t, err)

		paths := strings.Split(strings.TrimSuffix(timingLines.ReplaceAllString(stdout, ""), "\n"), "\n")
		assert.Equal(t, []string{"a", filepath.Join("a", "b.txt")}, paths)
	})

	t.Run("empty directory prints only timings", func(t *testing.T) {
		stdout, stderr, err := executeRoot(t, t.TempDir(), "anything")
		require.NoError(t, err)

		assert.Empty(t, timingLines.ReplaceAllString(stdout, ""))
		assert.Regexp(t, timingLines, stdout)
		assert.Empty(t, stderr)
	})

	t.Run("missing directory is reported but succeeds", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing")

		stdout, stderr, err := executeRoot(t, missing, "x")
		require.NoError(t, err)

		assert.Empty(t, timingLines.ReplaceAllString(stdout, ""))
		assert.Equal(t, "Failed to read dir: "+missing+" no such file or directory\n", stderr)
	})

	t.Run("unreadable directory is reported but succeeds", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("permission checks do not apply to root")
		}

		root := t.TempDir()
		locked := filepath.Join(root, "locked")
		writeFile(t, filepath.Join(locked, "inner.txt"))
		require.NoError(t, os.Chmod(locked, 0o000))
		t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

		stdout, stderr, err := executeRoot(t, root, "locked")
		require.NoError(t, err)

		assert.Equal(t, locked+"\n", timingLines.ReplaceAllString(stdout, ""))
		assert.Equal(t, "Failed to read dir: "+locked+" permission denied\n", stderr)
	})

	t.Run("score table and limit", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "mn"))
		writeFile(t, filepath.Join(root, "main.cc"))
		writeFile(t, filepath.Join(root, "docs", "manual.md"))
		t.Chdir(root)

		stdout, _, err := executeRoot(t, "--scores", "--limit", "2", ".", "mn")
		require.NoError(t, err)

		table := timingLines.ReplaceAllString(stdout, "")
		assert.Contains(t, table, "SCORE")
		assert.Contains(t, table, "PATH")
		assert.Contains(t, table, "main.cc")
		assert.NotContains(t, table, "manual.md")
	})
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
}
