package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"squad-maker-service/internal/domain/players"
	"squad-maker-service/internal/domain/teams"
)

var teamBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1).
	Width(42)

var (
	teamTitle = lipgloss.NewStyle().Bold(true)
	muted     = lipgloss.NewStyle().Faint(true)
)

var positionAbbrev = map[players.Position]string{
	players.Goalkeeper: "GK",
	players.Defender:   "DEF",
	players.Midfielder: "MID",
	players.Forward:    "FWD",
}

func renderTeam(t teams.Team) string {
	var b strings.Builder
	b.WriteString(teamTitle.Render(fmt.Sprintf("%s  avg %.2f", t.Name, t.AverageRating)))
	b.WriteString("\n")
	for _, p := range t.Players {
		fmt.Fprintf(&b, "%-4s %-20s %4.1f\n", positionAbbrev[p.PrimaryPosition()], truncate(p.Name, 20), p.Rating)
	}
	c := t.Composition()
	b.WriteString(muted.Render(fmt.Sprintf("%d players · GK %d DEF %d MID %d FWD %d",
		t.Size(), c.Goalkeepers, c.Defenders, c.Midfielders, c.Forwards)))
	return teamBox.Render(b.String())
}

func renderMatchup(a, b teams.Team) string {
	gap := math.Abs(a.AverageRating - b.AverageRating)
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, renderTeam(a), " ", renderTeam(b)),
		muted.Render(fmt.Sprintf("rating gap %.2f", gap)),
	)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
