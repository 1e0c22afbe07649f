package factory

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopsleague.dev/league/internal/core"
)

func TestGeneratePlayerInvariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		p := GeneratePlayer(rnd)
		assert.GreaterOrEqual(t, p.HeightIn, MinHeightIn)
		assert.LessOrEqual(t, p.HeightIn, MaxHeightIn)
		assert.Contains(t, core.Positions, p.Position)

		a := p.Attributes
		for _, v := range []int{a.Shooting, a.PostShooting, a.ThreePoint, a.BallHandling,
			a.Passing, a.Rebounding, a.Defense, a.Speed, a.Blocks, a.Steals} {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 100)
		}
	}
}

func TestGenerateTeamInvariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	team := GenerateTeam(rnd, "Testville", "Testers")
	require.Len(t, team.Players, core.RosterSize)
	require.Len(t, team.Starters, core.StarterCount)

	ids := map[core.PlayerID]bool{}
	for _, p := range team.Players {
		assert.False(t, ids[p.ID], "duplicate player id")
		ids[p.ID] = true
	}
	for _, s := range team.Starters {
		assert.True(t, ids[s], "starter must be a roster player")
	}
}

func TestGenerateLeagueSize(t *testing.T) {
	teams := GenerateLeague(42)
	require.Len(t, teams, core.LeagueSize)
	seen := map[core.TeamID]bool{}
	for _, tm := range teams {
		assert.False(t, seen[tm.ID])
		seen[tm.ID] = true
	}
}

func TestGenerateLeagueDeterministic(t *testing.T) {
	a := GenerateLeague(42)
	b := GenerateLeague(42)
	require.Len(t, a, len(b))
	for i := range a {
		assert.Equal(t, a[i].Players[0].Name, b[i].Players[0].Name)
		assert.Equal(t, a[i].Players[0].HeightIn, b[i].Players[0].HeightIn)
	}
}

func TestAssignConferencesSplitsEvenly(t *testing.T) {
	teams := GenerateLeague(9)
	conferences := AssignConferences(teams)
	require.Len(t, conferences, core.LeagueSize)

	var east, west int
	for _, c := range conferences {
		switch c {
		case core.ConferenceEast:
			east++
		case core.ConferenceWest:
			west++
		default:
			t.Fatalf("unexpected conference %q", c)
		}
	}
	assert.Equal(t, core.LeagueSize/2, east)
	assert.Equal(t, core.LeagueSize/2, west)
}
