package gameservice

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopsleague.dev/league/internal/core"
	"hoopsleague.dev/league/internal/factory"
)

type fakeLookup struct {
	teams map[core.TeamID]core.Team
}

func (f fakeLookup) GetTeam(id core.TeamID) (core.Team, error) {
	t, ok := f.teams[id]
	if !ok {
		return core.Team{}, core.NewNotFoundError("team", string(id))
	}
	return t, nil
}

func newFixture() (fakeLookup, core.Team, core.Team) {
	rnd := rand.New(rand.NewSource(3))
	home := factory.GenerateTeam(rnd, "A City", "A Team")
	away := factory.GenerateTeam(rnd, "B City", "B Team")
	return fakeLookup{teams: map[core.TeamID]core.Team{home.ID: home, away.ID: away}}, home, away
}

func TestSimulateOneProducesPlayedGame(t *testing.T) {
	lookup, home, away := newFixture()
	game := core.Game{ID: core.NewGameID(), HomeTeamID: home.ID, AwayTeamID: away.ID, ScheduledDate: time.Now()}

	seed := int64(11)
	played, err := SimulateOne(lookup, game, &seed)
	require.NoError(t, err)
	assert.True(t, played.IsPlayed)
	assert.NotEqual(t, *played.HomeScore, *played.AwayScore)
}

func TestSimulateOneUnknownTeam(t *testing.T) {
	lookup, home, _ := newFixture()
	game := core.Game{ID: core.NewGameID(), HomeTeamID: home.ID, AwayTeamID: core.NewTeamID()}
	_, err := SimulateOne(lookup, game, nil)
	require.Error(t, err)
	assert.True(t, core.IsNotFound(err))
}

func TestSimulateBatchSkipsAlreadyPlayed(t *testing.T) {
	lookup, home, away := newFixture()
	played := 5
	already := core.Game{ID: core.NewGameID(), HomeTeamID: home.ID, AwayTeamID: away.ID, IsPlayed: true, HomeScore: &played, AwayScore: &played}
	pending := core.Game{ID: core.NewGameID(), HomeTeamID: home.ID, AwayTeamID: away.ID, ScheduledDate: time.Now()}

	out, err := SimulateBatch(lookup, []core.Game{already, pending}, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, already, out[0])
	assert.True(t, out[1].IsPlayed)
}
