package echo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hoopsleague.dev/league/internal/core"
	"hoopsleague.dev/league/internal/standings"
)

var (
	winnerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#02BA84"))
	loserStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D7D7D"))
	seedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Width(3)
)

// Scoreboard renders a single completed game as "City Name  101 - 97  City Name",
// bolding the winning side's score.
func Scoreboard(home, away core.Team, g core.Game) string {
	if !g.IsPlayed || g.HomeScore == nil || g.AwayScore == nil {
		return infoStyle.Render(fmt.Sprintf("%s @ %s — not yet played", away.FullName(), home.FullName()))
	}

	homeScore := fmt.Sprintf("%d", *g.HomeScore)
	awayScore := fmt.Sprintf("%d", *g.AwayScore)
	if *g.HomeScore > *g.AwayScore {
		homeScore = winnerStyle.Render(homeScore)
		awayScore = loserStyle.Render(awayScore)
	} else {
		awayScore = winnerStyle.Render(awayScore)
		homeScore = loserStyle.Render(homeScore)
	}

	return fmt.Sprintf("%s %s - %s %s", away.FullName(), awayScore, homeScore, home.FullName())
}

// StandingsTable renders a conference standings view as an aligned,
// seed-ranked plain-text table (no external table library — lipgloss
// supplies only the cell styling, per-row formatting is done with
// strings.Builder so the output stays legible in a narrow terminal).
func StandingsTable(table standings.ConferenceTable) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf(" %s Conference ", table.Conference)))
	b.WriteString("\n")
	for _, row := range table.Rows {
		seed := seedStyle.Render(fmt.Sprintf("%d", row.Seed))
		line := fmt.Sprintf("%s %-28s %3d-%-3d %.3f", seed, row.TeamName, row.Wins, row.Losses, row.WinPct)
		if row.Seed <= core.MaxPlayInSeed {
			line = winnerStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
