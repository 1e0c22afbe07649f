package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopsleague.dev/league/internal/core"
)

func score(v int) *int { return &v }

func TestComputeRecordsCountsOnlyActualWins(t *testing.T) {
	a, b := core.NewTeamID(), core.NewTeamID()
	games := []core.Game{
		{HomeTeamID: a, AwayTeamID: b, IsPlayed: true, HomeScore: score(100), AwayScore: score(90)},
		{HomeTeamID: a, AwayTeamID: b, IsPlayed: true, HomeScore: score(80), AwayScore: score(95)},
		{HomeTeamID: a, AwayTeamID: b, IsPlayed: false},
	}
	records := ComputeRecords(games)
	assert.Equal(t, 1, records[a].Wins)
	assert.Equal(t, 1, records[a].Losses)
	assert.Equal(t, 1, records[b].Wins)
	assert.Equal(t, 1, records[b].Losses)
}

func TestSeedingTieBreaksByName(t *testing.T) {
	x, y, z := core.NewTeamID(), core.NewTeamID(), core.NewTeamID()
	records := map[core.TeamID]Record{
		x: {TeamID: x, Wins: 45, Losses: 37},
		y: {TeamID: y, Wins: 45, Losses: 37},
		z: {TeamID: z, Wins: 45, Losses: 37},
	}
	conferences := map[core.TeamID]core.Conference{x: core.ConferenceEast, y: core.ConferenceEast, z: core.ConferenceEast}
	names := map[core.TeamID]string{x: "Zebras", y: "Apex", z: "Mustangs"}
	seeds := Seeding(records, conferences, func(id core.TeamID) string { return names[id] })

	require.Equal(t, 1, seeds[y]) // Apex
	require.Equal(t, 2, seeds[z]) // Mustangs
	require.Equal(t, 3, seeds[x]) // Zebras
}

func TestSeedingDeterministicAcrossRuns(t *testing.T) {
	a, b := core.NewTeamID(), core.NewTeamID()
	records := map[core.TeamID]Record{
		a: {TeamID: a, Wins: 50, Losses: 32},
		b: {TeamID: b, Wins: 48, Losses: 34},
	}
	conferences := map[core.TeamID]core.Conference{a: core.ConferenceWest, b: core.ConferenceWest}
	names := map[core.TeamID]string{a: "Comets", b: "Foxes"}
	nameOf := func(id core.TeamID) string { return names[id] }

	s1 := Seeding(records, conferences, nameOf)
	s2 := Seeding(records, conferences, nameOf)
	assert.Equal(t, s1, s2)
}
