package season

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopsleague.dev/league/internal/core"
	"hoopsleague.dev/league/internal/standings"
)

func score(v int) *int { return &v }

// seededConference builds 15 teams in conf with strictly descending win
// totals (team index 0 wins every game, seeding 1st; index 14 wins none,
// seeding 15th) via a round-robin where the lower index always beats the
// higher one. Every team's record is backed by a real played game, so all
// 15 participate in seeding.
func seededConference(conf core.Conference) ([]core.TeamID, []core.Game, map[core.TeamID]core.Conference, standings.TeamNameLookup) {
	ids := make([]core.TeamID, 15)
	for i := range ids {
		ids[i] = core.NewTeamID()
	}
	confs := map[core.TeamID]core.Conference{}
	names := map[core.TeamID]string{}
	for i, id := range ids {
		confs[id] = conf
		names[id] = fmt.Sprintf("%s-team-%02d", conf, i)
	}

	var games []core.Game
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			games = append(games, core.Game{
				ID: core.NewGameID(), HomeTeamID: ids[i], AwayTeamID: ids[j],
				IsPlayed: true, HomeScore: score(100), AwayScore: score(90),
			})
		}
	}

	nameOf := standings.TeamNameLookup(func(id core.TeamID) string { return names[id] })
	return ids, games, confs, nameOf
}

// twoConferenceSeason builds a full 30-team season (two seededConference
// halves) with everyone's wins already final, ready for StartPostSeason.
// The returned east/west ID slices let callers pick a team at a specific
// seed (index i has seed i+1).
func twoConferenceSeason() (eastIDs, westIDs []core.TeamID, s *core.Season, conferences map[core.TeamID]core.Conference, nameOf standings.TeamNameLookup) {
	var eastGames, westGames []core.Game
	var eastConfs, westConfs map[core.TeamID]core.Conference
	var eastNames, westNames standings.TeamNameLookup

	eastIDs, eastGames, eastConfs, eastNames = seededConference(core.ConferenceEast)
	westIDs, westGames, westConfs, westNames = seededConference(core.ConferenceWest)

	conferences = map[core.TeamID]core.Conference{}
	for k, v := range eastConfs {
		conferences[k] = v
	}
	for k, v := range westConfs {
		conferences[k] = v
	}

	nameOf = standings.TeamNameLookup(func(id core.TeamID) string {
		if n := eastNames(id); n != "" {
			return n
		}
		return westNames(id)
	})

	schedule := append(append([]core.Game{}, eastGames...), westGames...)
	s = &core.Season{LeagueSchedule: schedule}
	return eastIDs, westIDs, s, conferences, nameOf
}

func TestNextUnplayedGameForUser(t *testing.T) {
	user := core.NewTeamID()
	opp := core.NewTeamID()
	s := &core.Season{
		UserTeamID: user,
		Games: []core.Game{
			{ID: core.NewGameID(), HomeTeamID: user, AwayTeamID: opp, IsPlayed: true, HomeScore: score(10), AwayScore: score(5)},
			{ID: core.NewGameID(), HomeTeamID: user, AwayTeamID: opp},
		},
	}
	g, ok := NextUnplayedGameForUser(s)
	require.True(t, ok)
	assert.False(t, g.IsPlayed)
}

func TestRecordGameResultUpdatesBothSlots(t *testing.T) {
	user := core.NewTeamID()
	opp := core.NewTeamID()
	gameID := core.NewGameID()
	unplayed := core.Game{ID: gameID, HomeTeamID: user, AwayTeamID: opp}
	s := &core.Season{
		UserTeamID:     user,
		Games:          []core.Game{unplayed},
		LeagueSchedule: []core.Game{unplayed, {ID: core.NewGameID()}},
	}

	pid := core.NewPlayerID()
	played := unplayed
	played.IsPlayed = true
	played.HomeScore = score(101)
	played.AwayScore = score(97)
	played.BoxScore = core.BoxScore{pid: {Points: 20}}

	RecordGameResult(s, played)

	assert.True(t, s.Games[0].IsPlayed)
	assert.True(t, s.LeagueSchedule[0].IsPlayed)
	require.Contains(t, s.SeasonStats, pid)
	assert.Equal(t, 20, s.SeasonStats[pid].Points)
	assert.Equal(t, 1, s.SeasonStats[pid].GamesPlayed)
}

func TestAccumulateStatsIsAdditive(t *testing.T) {
	s := &core.Season{}
	pid := core.NewPlayerID()
	AccumulateStats(s, core.BoxScore{pid: {Points: 10, Rebounds: 2}}, TargetSeason)
	AccumulateStats(s, core.BoxScore{pid: {Points: 15, Rebounds: 3}}, TargetSeason)

	require.Contains(t, s.SeasonStats, pid)
	assert.Equal(t, 25, s.SeasonStats[pid].Points)
	assert.Equal(t, 5, s.SeasonStats[pid].Rebounds)
	assert.Equal(t, 2, s.SeasonStats[pid].GamesPlayed)
}

func TestStartPostSeasonBuildsBracketOnlyWhenUserSeedQualifies(t *testing.T) {
	eastIDs, eastGames, eastConfs, eastNames := seededConference(core.ConferenceEast)
	westIDs, westGames, westConfs, westNames := seededConference(core.ConferenceWest)

	conferences := map[core.TeamID]core.Conference{}
	for k, v := range eastConfs {
		conferences[k] = v
	}
	for k, v := range westConfs {
		conferences[k] = v
	}
	nameOf := standings.TeamNameLookup(func(id core.TeamID) string {
		if n := eastNames(id); n != "" {
			return n
		}
		return westNames(id)
	})
	schedule := append(append([]core.Game{}, eastGames...), westGames...)

	// Index 9 has 5 wins, the 10th-best record in its conference: a
	// qualifying seed (seed <= core.MaxPlayInSeed).
	qualifying := &core.Season{UserTeamID: eastIDs[9], LeagueSchedule: append([]core.Game{}, schedule...)}
	require.NoError(t, StartPostSeason(qualifying, conferences, nameOf))
	assert.True(t, qualifying.IsPostSeason)
	require.NotNil(t, qualifying.Bracket, "seed <= 10 must yield a PlayoffBracket")
	assert.False(t, UserMissedPlayoffs(qualifying, eastIDs[9]))

	// Index 10 has 4 wins, the conference's 11th-best record: seed > 10.
	missed := &core.Season{UserTeamID: eastIDs[10], LeagueSchedule: append([]core.Game{}, schedule...)}
	require.NoError(t, StartPostSeason(missed, conferences, nameOf))
	assert.True(t, missed.IsPostSeason)
	assert.Nil(t, missed.Bracket, "seed > 10 must not yield a PlayoffBracket")
	assert.True(t, UserMissedPlayoffs(missed, eastIDs[10]))

	_, _ = westIDs, eastIDs
}

func TestEnsureBracketStillCrownsAChampionWhenUserMissedPlayoffs(t *testing.T) {
	eastIDs, _, s, conferences, nameOf := twoConferenceSeason()
	s.UserTeamID = eastIDs[10]

	require.NoError(t, StartPostSeason(s, conferences, nameOf))
	require.Nil(t, s.Bracket)
	assert.True(t, UserMissedPlayoffs(s, s.UserTeamID))

	bracket, err := EnsureBracket(s, conferences, nameOf)
	require.NoError(t, err)
	require.NotNil(t, bracket)
	require.Same(t, bracket, s.Bracket)

	// A second call must not rebuild the bracket from scratch.
	again, err := EnsureBracket(s, conferences, nameOf)
	require.NoError(t, err)
	assert.Same(t, bracket, again)

	// The user's own elimination flag is unaffected by EnsureBracket: the
	// team was never seeded into the bracket in the first place.
	assert.True(t, UserMissedPlayoffs(s, s.UserTeamID))
}

func TestIsRegularSeasonComplete(t *testing.T) {
	games := make([]core.Game, core.TotalLeagueGames)
	for i := range games {
		games[i] = core.Game{ID: core.NewGameID(), IsPlayed: true, HomeScore: score(1), AwayScore: score(0)}
	}
	s := &core.Season{LeagueSchedule: games}
	assert.True(t, IsRegularSeasonComplete(s))

	s.LeagueSchedule[0].IsPlayed = false
	assert.False(t, IsRegularSeasonComplete(s))
}
