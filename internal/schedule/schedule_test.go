package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopsleague.dev/league/internal/core"
)

func thirtyTeamIDs() []core.TeamID {
	ids := make([]core.TeamID, 0, core.LeagueSize)
	for i := 0; i < core.LeagueSize; i++ {
		ids = append(ids, core.NewTeamID())
	}
	return ids
}

func TestGenerateFullLeagueSchedule(t *testing.T) {
	teamIDs := thirtyTeamIDs()
	games, err := Generate(teamIDs, core.GamesPerTeam, 42, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, games, core.TotalLeagueGames)

	counts := map[core.TeamID]int{}
	homeCounts := map[core.TeamID]int{}
	for _, g := range games {
		counts[g.HomeTeamID]++
		counts[g.AwayTeamID]++
		homeCounts[g.HomeTeamID]++
	}
	for _, id := range teamIDs {
		assert.Equal(t, core.GamesPerTeam, counts[id])
		diff := homeCounts[id] - (counts[id] - homeCounts[id])
		assert.LessOrEqual(t, diff, 1)
		assert.GreaterOrEqual(t, diff, -1)
	}
}

func TestGenerateInfeasibleSingleTeam(t *testing.T) {
	_, err := Generate([]core.TeamID{core.NewTeamID()}, 82, 1, time.Now())
	require.Error(t, err)
	assert.True(t, core.IsScheduleInfeasible(err))
}

func TestUserGamesFiltersSchedule(t *testing.T) {
	teamIDs := thirtyTeamIDs()
	games, err := Generate(teamIDs, core.GamesPerTeam, 7, time.Now())
	require.NoError(t, err)

	user := teamIDs[0]
	userGames := UserGames(games, user)
	assert.Len(t, userGames, core.GamesPerTeam)
	for _, g := range userGames {
		assert.True(t, g.HomeTeamID == user || g.AwayTeamID == user)
	}
}
