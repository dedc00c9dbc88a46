package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Belphemur/YouTubeTranscript/internal/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderSummary describes a finished batch: one line per item and a totals line.
func renderSummary(items []models.BatchItem, elapsed time.Duration) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Batch summary"))
	b.WriteString("\n")

	failed := 0
	for _, item := range items {
		if item.Result != nil {
			line := fmt.Sprintf("✓ %s  %s %s, %d items", item.VideoRef, item.Result.LanguageVariant, item.Result.Source, item.Result.ItemCount)
			b.WriteString(successStyle.Render(line))
		} else {
			failed++
			b.WriteString(failureStyle.Render(fmt.Sprintf("✗ %s  %s", item.VideoRef, item.Error)))
		}
		b.WriteString("\n")
	}

	totals := fmt.Sprintf("%d succeeded, %d failed in %s", len(items)-failed, failed, elapsed.Round(time.Millisecond))
	b.WriteString(mutedStyle.Render(totals))
	b.WriteString("\n")
	return b.String()
}
