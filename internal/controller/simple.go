package controller

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/fzindex/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI by writing plain lines to the command's output.
type SimpleUI struct {
	cmd       *cobra.Command
	highlight lipgloss.Style
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	renderer := lipgloss.NewRenderer(cmd.OutOrStdout())

	return &SimpleUI{
		cmd: cmd,
		highlight: renderer.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11")),
	}
}

// DisplayTiming prints the wall-clock seconds spent in a pipeline stage.
func (s *SimpleUI) DisplayTiming(stage m.Stage, elapsed time.Duration) {
	s.printf("Time to %s: %s\n", stage, formatSeconds(elapsed))
}

// DisplayResults prints ranked paths one per line, or as a score table.
func (s *SimpleUI) DisplayResults(results []m.ScoredPath, options ...DisplayOption) error {
	cfg := DisplayConfig{}
	for _, option := range options {
		option(&cfg)
	}

	out := bufio.NewWriter(s.cmd.OutOrStdout())

	if cfg.scores {
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Score", "Path"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetAutoWrapText(false)
		table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

		for _, result := range results {
			table.Append([]string{strconv.Itoa(result.Score), s.renderPath(result.Path, cfg)})
		}

		table.Render()

		return out.Flush()
	}

	for _, result := range results {
		if _, err := out.WriteString(s.renderPath(result.Path, cfg) + "\n"); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	}

	return out.Flush()
}

// renderPath styles the highlighted runes of path. A rune is highlighted when
// any of its bytes was matched.
func (s *SimpleUI) renderPath(path m.Path, cfg DisplayConfig) string {
	if cfg.highlight == nil {
		return string(path)
	}

	positions, ok := cfg.highlight(string(path))
	if !ok || len(positions) == 0 {
		return string(path)
	}

	matched := make(map[int]struct{}, len(positions))
	for _, pos := range positions {
		matched[pos] = struct{}{}
	}

	var (
		b       strings.Builder
		run     strings.Builder
		inMatch bool
	)

	flush := func() {
		if run.Len() == 0 {
			return
		}

		if inMatch {
			b.WriteString(s.highlight.Render(run.String()))
		} else {
			b.WriteString(run.String())
		}

		run.Reset()
	}

	str := string(path)
	for i := 0; i < len(str); {
		_, size := utf8.DecodeRuneInString(str[i:])

		hit := false

		for j := i; j < i+size; j++ {
			if _, ok := matched[j]; ok {
				hit = true
				break
			}
		}

		if hit != inMatch {
			flush()
			inMatch = hit
		}

		run.WriteString(str[i : i+size])
		i += size
	}

	flush()

	return b.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// formatSeconds renders a duration as seconds with six significant digits.
func formatSeconds(elapsed time.Duration) string {
	return strconv.FormatFloat(elapsed.Seconds(), 'g', 6, 64)
}
