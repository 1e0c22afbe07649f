package simulate

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopsleague.dev/league/internal/core"
	"hoopsleague.dev/league/internal/factory"
)

func twoTeams() (core.Team, core.Team) {
	rnd := rand.New(rand.NewSource(99))
	home := factory.GenerateTeam(rnd, "Home City", "Home Team")
	away := factory.GenerateTeam(rnd, "Away City", "Away Team")
	return home, away
}

func TestSimulateGameNoTies(t *testing.T) {
	home, away := twoTeams()
	seed := int64(123)
	game := SimulateGame(home, away, core.NewGameID(), Options{Seed: &seed, ScheduledDate: time.Now()})

	require.True(t, game.IsPlayed)
	require.NotNil(t, game.HomeScore)
	require.NotNil(t, game.AwayScore)
	assert.NotEqual(t, *game.HomeScore, *game.AwayScore)
}

func TestSimulateGameStatConsistency(t *testing.T) {
	home, away := twoTeams()
	seed := int64(7)
	game := SimulateGame(home, away, core.NewGameID(), Options{Seed: &seed, ScheduledDate: time.Now()})

	homeIDs := map[core.PlayerID]bool{}
	for _, p := range home.Players {
		homeIDs[p.ID] = true
	}

	homeTotal, awayTotal := 0, 0
	for id, s := range game.BoxScore {
		if homeIDs[id] {
			homeTotal += s.Points
		} else {
			awayTotal += s.Points
		}
		if s.FieldGoalsAttempted > 0 {
			assert.InDelta(t, s.FieldGoalPct(), float64(s.FieldGoalsMade)/float64(s.FieldGoalsAttempted), 0.0001)
		}
	}
	assert.Equal(t, *game.HomeScore, homeTotal)
	assert.Equal(t, *game.AwayScore, awayTotal)
}

func TestSimulateGameDeterministic(t *testing.T) {
	home, away := twoTeams()
	seed := int64(55)
	g1 := SimulateGame(home, away, core.NewGameID(), Options{Seed: &seed, ScheduledDate: time.Now()})
	g2 := SimulateGame(home, away, core.NewGameID(), Options{Seed: &seed, ScheduledDate: time.Now()})
	assert.Equal(t, *g1.HomeScore, *g2.HomeScore)
	assert.Equal(t, *g1.AwayScore, *g2.AwayScore)
}

// identicalStarterTeam builds a team whose five starters share the same
// baseline attributes (one per position), so every difference between two
// teams built from it comes only from whatever the caller changes
// afterward. Bench players are identical filler, keeping the roster at
// core.RosterSize without affecting who plays.
func identicalStarterTeam(city string) core.Team {
	attrs := core.Attributes{
		Shooting: 70, PostShooting: 70, ThreePoint: 70, BallHandling: 70,
		Passing: 70, Rebounding: 70, Defense: 70, Speed: 70, Blocks: 70, Steals: 70,
	}

	var players []core.Player
	var starters []core.PlayerID
	for _, pos := range core.Positions {
		p := core.Player{ID: core.NewPlayerID(), Name: "Starter " + string(pos), Age: core.DefaultAge,
			HeightIn: 78, Position: pos, Attributes: attrs}
		players = append(players, p)
		starters = append(starters, p.ID)
	}
	for len(players) < core.RosterSize {
		players = append(players, core.Player{ID: core.NewPlayerID(), Name: "Bench", Age: core.DefaultAge,
			HeightIn: 78, Position: core.PositionSF, Attributes: attrs})
	}

	return core.Team{ID: core.NewTeamID(), City: city, Name: "Team", Players: players, Starters: starters}
}

// withCenterRole returns a copy of team with its Center starter's RoleID
// set to roleID; every other field, including every PlayerID, is
// untouched.
func withCenterRole(team core.Team, roleID string) core.Team {
	out := team
	out.Players = make([]core.Player, len(team.Players))
	copy(out.Players, team.Players)
	for i, p := range out.Players {
		if p.Position == core.PositionC {
			out.Players[i].RoleID = roleID
		}
	}
	return out
}

func TestRoleChangeIncreasesThreePointAttempts(t *testing.T) {
	seed := int64(42)

	base := identicalStarterTeam("Home City")
	baseline := withCenterRole(base, "")
	stretched := withCenterRole(base, "stretch-five")
	opponent := identicalStarterTeam("Opponent City")

	var centerID core.PlayerID
	for _, p := range base.Players {
		if p.Position == core.PositionC {
			centerID = p.ID
		}
	}
	require.NotEmpty(t, centerID)

	baselineGame := SimulateGame(baseline, opponent, core.NewGameID(), Options{Seed: &seed, ScheduledDate: time.Now()})
	stretchedGame := SimulateGame(stretched, opponent, core.NewGameID(), Options{Seed: &seed, ScheduledDate: time.Now()})

	baselineAttempts := baselineGame.BoxScore[centerID].ThreePointersAttempt
	stretchedAttempts := stretchedGame.BoxScore[centerID].ThreePointersAttempt
	assert.Greater(t, stretchedAttempts, baselineAttempts,
		"switching the center's role from standard to stretch-five must strictly increase its 3PT attempts/game")
}

func TestEffectiveRotationDefaultsToStarters(t *testing.T) {
	home, _ := twoTeams()
	rotation := EffectiveRotation(home)
	assert.Equal(t, core.StarterCount, rotation.RotationSize)
	total := 0
	for _, m := range rotation.Minutes {
		total += m
	}
	assert.Equal(t, core.StarterCount*core.MinutesPerGame, total)
}
