package playoffs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopsleague.dev/league/internal/core"
)

func conferenceTeams(conf core.Conference, n int) ([]core.TeamID, map[core.TeamID]int, map[core.TeamID]core.Conference) {
	ids := make([]core.TeamID, n)
	seeds := map[core.TeamID]int{}
	confs := map[core.TeamID]core.Conference{}
	for i := 0; i < n; i++ {
		ids[i] = core.NewTeamID()
		seeds[ids[i]] = i + 1
		confs[ids[i]] = conf
	}
	return ids, seeds, confs
}

func fullLeague() (map[core.TeamID]int, map[core.TeamID]core.Conference) {
	seeds := map[core.TeamID]int{}
	confs := map[core.TeamID]core.Conference{}
	_, es, ec := conferenceTeams(core.ConferenceEast, 15)
	_, ws, wc := conferenceTeams(core.ConferenceWest, 15)
	for k, v := range es {
		seeds[k] = v
	}
	for k, v := range ec {
		confs[k] = v
	}
	for k, v := range ws {
		seeds[k] = v
	}
	for k, v := range wc {
		confs[k] = v
	}
	return seeds, confs
}

// higherSeedAlwaysWins is a deterministic GamePlayer stand-in used by tests
// that only care about bracket-state-machine correctness.
func higherSeedAlwaysWins(bracket *core.PlayoffBracket) GamePlayer {
	return func(seriesID core.SeriesID, home, away core.TeamID, gameNumber int) (core.Game, error) {
		homeScore, awayScore := 90, 80
		if bracket.TeamSeedings[away] < bracket.TeamSeedings[home] {
			homeScore, awayScore = 80, 90
		}
		return core.Game{ID: core.NewGameID(), HomeTeamID: home, AwayTeamID: away, IsPlayed: true,
			HomeScore: &homeScore, AwayScore: &awayScore}, nil
	}
}

func TestBuildBracketRequiresSeedsSevenThroughTen(t *testing.T) {
	seeds, confs := conferenceTeams(core.ConferenceEast, 6)
	allConfs := map[core.TeamID]core.Conference{}
	for k, v := range confs {
		allConfs[k] = v
	}
	_, err := BuildBracket("season-1", seeds, allConfs)
	require.Error(t, err)
	assert.True(t, core.IsInvalidSeeding(err))
}

func TestPlayInAndFirstRoundSeriesCounts(t *testing.T) {
	seeds, confs := fullLeague()
	bracket, err := BuildBracket("season-1", seeds, confs)
	require.NoError(t, err)
	require.Len(t, bracket.PlayInGames, 4)

	player := higherSeedAlwaysWins(bracket)
	_, err = SimulateRestOfPlayoffs(bracket, player)
	require.NoError(t, err)

	require.Len(t, bracket.PlayInGames, 6)
	require.Len(t, bracket.FirstRound, 8)
	assert.Equal(t, core.RoundComplete, bracket.CurrentRound)
}

func TestSimulateRestOfPlayoffsReturnsChampion(t *testing.T) {
	seeds, confs := fullLeague()
	bracket, err := BuildBracket("season-1", seeds, confs)
	require.NoError(t, err)

	champion, err := SimulateRestOfPlayoffs(bracket, higherSeedAlwaysWins(bracket))
	require.NoError(t, err)
	assert.NotEmpty(t, champion)
	assert.Equal(t, core.RoundComplete, bracket.CurrentRound)
}

func TestEliminationNotFlaggedBetweenRounds(t *testing.T) {
	seeds, confs := fullLeague()
	bracket, err := BuildBracket("season-1", seeds, confs)
	require.NoError(t, err)

	// Nobody has lost a completed series yet; nobody is eliminated.
	for id := range seeds {
		assert.False(t, IsEliminated(bracket, id))
	}
}

func TestEliminationSplitAfterFullPlayoffRun(t *testing.T) {
	seeds, confs := fullLeague()
	bracket, err := BuildBracket("season-1", seeds, confs)
	require.NoError(t, err)

	champion, err := SimulateRestOfPlayoffs(bracket, higherSeedAlwaysWins(bracket))
	require.NoError(t, err)
	assert.Equal(t, core.RoundComplete, bracket.CurrentRound)

	assert.False(t, IsEliminated(bracket, champion), "champion must not be reported eliminated")

	var tenSeed core.TeamID
	for id, seed := range bracket.TeamSeedings {
		if confs[id] == core.ConferenceEast && seed == core.MaxPlayInSeed {
			tenSeed = id
			break
		}
	}
	require.NotEmpty(t, tenSeed, "expected a 10-seed among east teams")
	assert.True(t, IsEliminated(bracket, tenSeed), "lower play-in seed lost its opener and should be eliminated")
}

func TestHomeCourtSequence(t *testing.T) {
	higher, lower := core.NewTeamID(), core.NewTeamID()
	series := core.PlayoffSeries{HigherSeedTeamID: higher, LowerSeedTeamID: lower, Round: core.RoundFirst}

	expectHome := map[int]core.TeamID{1: higher, 2: higher, 3: lower, 4: lower, 5: higher, 6: lower, 7: higher}
	for game, want := range expectHome {
		home, _ := HomeCourt(series, game)
		assert.Equal(t, want, home, "game %d", game)
	}
}
