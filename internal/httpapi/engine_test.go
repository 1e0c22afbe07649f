package httpapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopsleague.dev/league/internal/cache"
	"hoopsleague.dev/league/internal/core"
	"hoopsleague.dev/league/internal/store"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewEngine(fs, cache.NewViewCache(nil))
}

func TestInitializeLeagueBuildsThirtyTeamsAndSchedule(t *testing.T) {
	e := newTestEngine(t)
	lg, err := e.InitializeLeague(InitLeagueRequest{Seed: 42})
	require.NoError(t, err)

	assert.Len(t, lg.TeamOrder, core.LeagueSize)
	assert.Len(t, lg.Season.LeagueSchedule, core.TotalLeagueGames)
	assert.Len(t, lg.Season.Games, core.GamesPerTeam)
	assert.Equal(t, lg.TeamOrder[0], lg.Season.UserTeamID)
}

func TestUpdateTeamRejectsInvalidRoster(t *testing.T) {
	e := newTestEngine(t)
	lg, err := e.InitializeLeague(InitLeagueRequest{Seed: 1})
	require.NoError(t, err)

	teamID := lg.TeamOrder[0]
	team, err := e.GetTeam(lg.ID, teamID)
	require.NoError(t, err)

	team.Players = team.Players[:10]
	err = e.UpdateTeam(lg.ID, team)
	assert.True(t, core.IsInvalidTeam(err))
}

func TestSimulateNextGamePlaysOneUserGame(t *testing.T) {
	e := newTestEngine(t)
	lg, err := e.InitializeLeague(InitLeagueRequest{Seed: 7})
	require.NoError(t, err)

	game, err := e.SimulateNextGame(lg.ID)
	require.NoError(t, err)
	assert.True(t, game.IsPlayed)
	assert.NotNil(t, game.HomeScore)
	assert.NotNil(t, game.AwayScore)
}

func TestSimulateNextGameNotFoundOnUnknownLeague(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.SimulateNextGame("does-not-exist")
	assert.True(t, core.IsNotFound(err))
}

func TestSaveAndLoadLeagueRoundTrip(t *testing.T) {
	e := newTestEngine(t)
	lg, err := e.InitializeLeague(InitLeagueRequest{Seed: 99})
	require.NoError(t, err)

	_, err = e.SimulateNextGame(lg.ID)
	require.NoError(t, err)

	require.NoError(t, e.SaveLeague(lg.ID, "slot-1"))

	loaded, err := e.LoadLeague("slot-1")
	require.NoError(t, err)
	assert.Equal(t, lg.Season.UserTeamID, loaded.Season.UserTeamID)
	assert.Len(t, loaded.TeamOrder, core.LeagueSize)
	assert.Equal(t, lg.Conferences[lg.TeamOrder[0]], loaded.Conferences[loaded.TeamOrder[0]])

	saves, err := e.ListSaves()
	require.NoError(t, err)
	require.Len(t, saves, 1)
	assert.Equal(t, core.SaveName("slot-1"), saves[0].Name)

	require.NoError(t, e.DeleteSave("slot-1"))
	_, err = e.store.Load("slot-1")
	assert.True(t, core.IsNotFound(err))
}

func TestStandingsViewReflectsPlayedGames(t *testing.T) {
	e := newTestEngine(t)
	lg, err := e.InitializeLeague(InitLeagueRequest{Seed: 5})
	require.NoError(t, err)

	_, err = e.SimulateNextGame(lg.ID)
	require.NoError(t, err)

	view, err := e.Standings(context.Background(), lg.ID)
	require.NoError(t, err)
	totalGames := 0
	for _, row := range append(view.East.Rows, view.West.Rows...) {
		totalGames += row.Wins + row.Losses
	}
	assert.Equal(t, 2, totalGames, "exactly one game played, touching two teams")
}

func TestSimulateRestOfPlayoffsReportsUserOutcome(t *testing.T) {
	e := newTestEngine(t)
	lg, err := e.InitializeLeague(InitLeagueRequest{Seed: 11})
	require.NoError(t, err)

	require.NoError(t, e.SimulateRemainingRegularSeason(lg.ID))

	result, err := e.SimulateRestOfPlayoffs(lg.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Champion, "a champion must be crowned regardless of whether the user made the playoffs")
	if result.UserMissedPlayoffs {
		assert.False(t, result.UserEliminated, "a team that never entered the bracket cannot be reported eliminated")
	}

	view, err := e.Bracket(context.Background(), lg.ID)
	require.NoError(t, err)
	assert.Equal(t, result.UserMissedPlayoffs, view.UserMissedPlayoffs)
	assert.Equal(t, result.UserEliminated, view.UserEliminated)
}

func TestBracketMissingBeforePostseason(t *testing.T) {
	e := newTestEngine(t)
	lg, err := e.InitializeLeague(InitLeagueRequest{Seed: 3})
	require.NoError(t, err)

	_, err = e.Bracket(context.Background(), lg.ID)
	assert.True(t, core.IsNotFound(err))
}
