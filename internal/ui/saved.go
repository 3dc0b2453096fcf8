package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/naka-gawa/candidate-search/internal/domain"
)

// RenderSavedReport renders the saved candidates as a table followed by
// their summary figures.
func RenderSavedReport(report domain.SavedReport) string {
	styles := NewStyles()
	if len(report.Candidates) == 0 {
		return styles.Dim.Render("No saved candidates.")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Label).
		Headers("#", "LOGIN", "NAME", "LOCATION", "EMAIL", "COMPANY", "FOLLOWERS", "REPOS")
	for i, c := range report.Candidates {
		card := domain.NewCard(c)
		t.Row(
			strconv.Itoa(i+1),
			card.Login,
			card.Name,
			card.Location,
			card.Email,
			card.Company,
			strconv.Itoa(c.Followers),
			strconv.Itoa(c.PublicRepos),
		)
	}

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")
	s := report.Stats
	b.WriteString(fmt.Sprintf("Saved: %d  followers mean %.1f median %.1f  public repos mean %.1f median %.1f",
		s.Count, s.MeanFollowers, s.MedianFollowers, s.MeanPublicRepos, s.MedianPublicRepos))
	return b.String()
}
