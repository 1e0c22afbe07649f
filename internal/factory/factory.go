// Package factory generates randomized Players and Teams per §4.1: name
// draw, empirically-weighted height, baseline attributes, height-coupled
// attribute biasing, and position assignment by best affinity.
package factory

import (
	"math/rand"

	"hoopsleague.dev/league/internal/core"
	"hoopsleague.dev/league/internal/position"
	"hoopsleague.dev/league/internal/weighted"
)

const (
	baselineMin = 40
	baselineMax = 85
)

// GeneratePlayer builds one Player using rnd for every random draw. rnd
// should be seeded by the caller for deterministic generation.
func GeneratePlayer(rnd *rand.Rand) core.Player {
	name := firstNames[rnd.Intn(len(firstNames))] + " " + lastNames[rnd.Intn(len(lastNames))]

	sampler := weighted.New(heightWeights(), rnd)
	idx, ok := sampler.Take()
	if !ok {
		idx = len(heightDistribution) / 2
	}
	heightIn := sampleHeight(idx)

	attrs := core.Attributes{
		Shooting:     uniformInt(rnd, baselineMin, baselineMax),
		PostShooting: uniformInt(rnd, baselineMin, baselineMax),
		ThreePoint:   uniformInt(rnd, baselineMin, baselineMax),
		BallHandling: uniformInt(rnd, baselineMin, baselineMax),
		Passing:      uniformInt(rnd, baselineMin, baselineMax),
		Rebounding:   uniformInt(rnd, baselineMin, baselineMax),
		Defense:      uniformInt(rnd, baselineMin, baselineMax),
		Speed:        uniformInt(rnd, baselineMin, baselineMax),
		Blocks:       uniformInt(rnd, baselineMin, baselineMax),
		Steals:       uniformInt(rnd, baselineMin, baselineMax),
	}
	attrs = applyHeightModifiers(attrs, heightIn).Clamp()

	pos := position.BestPosition(attrs, heightIn)

	age := core.DefaultAge
	return core.Player{
		ID:         core.NewPlayerID(),
		Name:       name,
		Age:        age,
		HeightIn:   heightIn,
		Position:   pos,
		Attributes: attrs,
	}
}

// applyHeightModifiers implements §4.1's height-coupled attribute bias.
// Tall players (>=80") trade shooting/speed/steals for rebounding/blocks;
// short players (<=72") trade rebounding/blocks for shooting/speed/steals.
func applyHeightModifiers(attrs core.Attributes, heightIn int) core.Attributes {
	switch {
	case heightIn >= 80:
		attrs.Rebounding += 15
		attrs.Blocks += 20
		attrs.Steals -= 8
		attrs.Shooting -= 5
		attrs.Speed -= 10
	case heightIn <= 72:
		attrs.Steals += 20
		attrs.Shooting += 15
		attrs.Speed += 10
		attrs.Rebounding -= 10
		attrs.Blocks -= 15
	}
	return attrs
}

// GenerateTeam builds a Team with exactly core.RosterSize players and
// core.StarterCount starters, favoring five distinct-position starters
// when the roster allows it.
func GenerateTeam(rnd *rand.Rand, city, name string) core.Team {
	players := make([]core.Player, 0, core.RosterSize)
	for i := 0; i < core.RosterSize; i++ {
		players = append(players, GeneratePlayer(rnd))
	}

	starters := chooseStarters(players)

	return core.Team{
		ID:       core.NewTeamID(),
		City:     city,
		Name:     name,
		Players:  players,
		Starters: starters,
	}
}

// chooseStarters picks the five highest-rated distinct-position players
// when possible; otherwise it falls back to the top five by overall
// rating regardless of position.
func chooseStarters(players []core.Player) []core.PlayerID {
	byPosition := map[core.Position][]core.Player{}
	for _, p := range players {
		byPosition[p.Position] = append(byPosition[p.Position], p)
	}

	distinctPossible := true
	for _, pos := range core.Positions {
		if len(byPosition[pos]) == 0 {
			distinctPossible = false
			break
		}
	}

	if distinctPossible {
		starters := make([]core.PlayerID, 0, core.StarterCount)
		for _, pos := range core.Positions {
			best := bestByOverall(byPosition[pos])
			starters = append(starters, best.ID)
		}
		return starters
	}

	sorted := make([]core.Player, len(players))
	copy(sorted, players)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Attributes.Overall() > sorted[j-1].Attributes.Overall(); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	starters := make([]core.PlayerID, 0, core.StarterCount)
	for i := 0; i < core.StarterCount; i++ {
		starters = append(starters, sorted[i].ID)
	}
	return starters
}

func bestByOverall(players []core.Player) core.Player {
	best := players[0]
	for _, p := range players[1:] {
		if p.Attributes.Overall() > best.Attributes.Overall() {
			best = p
		}
	}
	return best
}
