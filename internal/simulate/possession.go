package simulate

import (
	"math/rand"

	"hoopsleague.dev/league/internal/core"
	"hoopsleague.dev/league/internal/position"
	"hoopsleague.dev/league/internal/weighted"
)

// ShotType is one of the three shot locations §4.4 distinguishes.
type ShotType int

const (
	ShotThree ShotType = iota
	ShotMid
	ShotPost
)

// activePlayer bundles a roster player with its resolved role modifiers
// (a zero-value EventModifiers, i.e. all multipliers 1.0, when the player
// has no assigned role).
type activePlayer struct {
	player    core.Player
	modifiers position.EventModifiers
}

func resolveActive(p core.Player) activePlayer {
	mods := position.EventModifiers{}
	if p.RoleID != "" {
		if role, ok := position.ByID(p.RoleID); ok {
			mods = role.Modifiers
		}
	}
	return activePlayer{player: p, modifiers: mods}
}

// positionShotWeight returns the §4.4 position-based shift in shot-type
// selection weight: shooting guards lean toward three-point attempts,
// centers lean toward the post and away from threes.
func positionShotWeight(pos core.Position, shotType ShotType) float64 {
	switch {
	case pos == core.PositionSG && shotType == ShotThree:
		return 1.20
	case pos == core.PositionC && shotType == ShotPost:
		return 1.35
	case pos == core.PositionC && shotType == ShotThree:
		return 0.60
	default:
		return 1.0
	}
}

// possessionResult is one possession's outcome, used by the caller to
// accrue minutes and advance stints; points is the offense's points scored
// this possession.
type possessionResult struct {
	points int
}

// resolvePossession runs the seven-step §4.4 resolution for one possession
// where offense is on offense against defense. stats accumulates every
// counter by player id; a player's accumulator is created lazily by
// statsFor the first time it records anything.
func resolvePossession(rnd *rand.Rand, offense, defense [5]activePlayer, stats map[core.PlayerID]*core.PlayerGameStats) possessionResult {
	statsFor := func(id core.PlayerID) *core.PlayerGameStats {
		s, ok := stats[id]
		if !ok {
			s = &core.PlayerGameStats{}
			stats[id] = s
		}
		return s
	}

	// Step 1: turnover check, weighted initiator by ballHandling+passing.
	initiatorIdx := weightedIndex(rnd, 5, func(i int) float64 {
		p := offense[i].player
		return float64(p.Attributes.BallHandling + p.Attributes.Passing)
	})
	initiator := offense[initiatorIdx]

	defenderIdx := weightedIndex(rnd, 5, func(i int) float64 {
		return float64(defense[i].player.Attributes.Steals)
	})
	topDefender := defense[defenderIdx]

	toProb := turnoverProbability(
		initiator.player.Attributes.BallHandling,
		topDefender.player.Attributes.Defense,
		topDefender.player.Attributes.Steals,
		1.0,
		initiator.modifiers.Turnover(),
	)
	if rnd.Float64() < toProb {
		s := statsFor(initiator.player.ID)
		s.Turnovers++
		ds := statsFor(topDefender.player.ID)
		ds.Steals++
		return possessionResult{}
	}

	// Step 2: shot selection.
	shooterIdx := weightedIndex(rnd, 5, func(i int) float64 {
		p := offense[i].player
		base := float64(p.Attributes.Shooting + p.Attributes.ThreePoint + p.Attributes.PostShooting)
		return base * offense[i].modifiers.ShotAttempt()
	})
	shooter := offense[shooterIdx]

	shotType := chooseShotType(rnd, shooter)

	onCourtDefenderIdx := weightedIndex(rnd, 5, func(i int) float64 {
		return float64(defense[i].player.Attributes.Defense)
	})
	primaryDefender := defense[onCourtDefenderIdx]

	shooterStats := statsFor(shooter.player.ID)

	// Step 3: pre-shot foul check.
	foulProb := foulProbability(primaryDefender.player.Attributes.Defense, shooter.modifiers.FoulDrawn())
	if rnd.Float64() < foulProb {
		return resolveFreeThrows(rnd, shooter, shooterStats, freeThrowCount(shotType), false, shotType)
	}

	// Step 4: shot success.
	made := rnd.Float64() < shotMakeProbability(shotType, shooter.player.Attributes, primaryDefender.player.Attributes.Defense)
	recordAttempt(shooterStats, shotType)

	if !made {
		// Step 5: block check, only on misses.
		blockerIdx := weightedIndex(rnd, 5, func(i int) float64 {
			return float64(defense[i].player.Attributes.Blocks)
		})
		blocker := defense[blockerIdx]
		blockProb := blockProbability(blocker.player.Attributes.Blocks, blocker.player.HeightIn, blocker.modifiers.Block())
		if rnd.Float64() < blockProb {
			statsFor(blocker.player.ID).Blocks++
		}

		// Step 6: rebound, offense scaled down 0.6.
		reb := resolveRebound(rnd, offense, defense)
		statsFor(reb.player.ID).Rebounds++
		return possessionResult{}
	}

	points := pointsFor(shotType)
	shooterStats.Points += points
	shooterStats.FieldGoalsMade++
	if shotType == ShotThree {
		shooterStats.ThreePointersMade++
	}

	// Step 7: assist, only on a clean make.
	assistProb := assistProbability(initiator.player.Attributes.Passing, initiator.modifiers.Assist())
	if initiator.player.ID != shooter.player.ID && rnd.Float64() < assistProb {
		statsFor(initiator.player.ID).Assists++
	}

	if rnd.Float64() < andOneProbability(shotType) {
		ft := resolveFreeThrows(rnd, shooter, shooterStats, 1, true, shotType)
		points += ft.points
	}

	return possessionResult{points: points}
}

// resolveFreeThrows simulates n free throws for shooter, each at a
// league-average-scaled rate; it records FT made/attempted (and, for the
// pre-shot-foul path, the shot attempt itself already having been counted
// by the make/miss logic if isAndOne is false it was not, so callers on
// the non-and-one path never reach here after recordAttempt).
func resolveFreeThrows(rnd *rand.Rand, shooter activePlayer, shooterStats *core.PlayerGameStats, n int, isAndOne bool, shotType ShotType) possessionResult {
	ftProb := freeThrowProbability(shooter.player.Attributes.Shooting)
	made := 0
	for i := 0; i < n; i++ {
		shooterStats.FreeThrowsAttempted++
		if rnd.Float64() < ftProb {
			shooterStats.FreeThrowsMade++
			shooterStats.Points++
			made++
		}
	}
	if !isAndOne {
		// A shooting foul with no and-one awards free throws in lieu of a
		// field-goal attempt; no FGA/FGM recorded for this possession.
		return possessionResult{points: made}
	}
	return possessionResult{points: made}
}

func recordAttempt(stats *core.PlayerGameStats, shotType ShotType) {
	stats.FieldGoalsAttempted++
	if shotType == ShotThree {
		stats.ThreePointersAttempt++
	}
}

func pointsFor(shotType ShotType) int {
	switch shotType {
	case ShotThree:
		return 3
	default:
		return 2
	}
}

type reboundWinner struct {
	player core.Player
}

// resolveRebound implements §4.4 step 6: a weighted draw across all ten
// on-court players by rebounding, with offensive rebounders scaled by 0.6.
func resolveRebound(rnd *rand.Rand, offense, defense [5]activePlayer) reboundWinner {
	all := make([]activePlayer, 0, 10)
	all = append(all, offense[:]...)
	all = append(all, defense[:]...)

	idx := weightedIndex(rnd, len(all), func(i int) float64 {
		p := all[i]
		w := float64(p.player.Attributes.Rebounding) * p.modifiers.Rebound()
		if i < len(offense) {
			w *= 0.6
		}
		return w
	})
	return reboundWinner{player: all[idx].player}
}

// chooseShotType implements §4.4 step 2's shot-type selection, weighted
// by threePoint/shooting/postShooting and shifted by position.
func chooseShotType(rnd *rand.Rand, shooter activePlayer) ShotType {
	attrs := shooter.player.Attributes
	weights := []float64{
		float64(attrs.ThreePoint) * positionShotWeight(shooter.player.Position, ShotThree) * shooter.modifiers.ThreePointAttempt(),
		float64(attrs.Shooting) * positionShotWeight(shooter.player.Position, ShotMid),
		float64(attrs.PostShooting) * positionShotWeight(shooter.player.Position, ShotPost),
	}
	idx := weightedIndex(rnd, 3, func(i int) float64 { return weights[i] })
	return ShotType(idx)
}

// weightedIndex draws one of [0,n) proportional to weight(i), using the
// shared gonum-backed sampler.
func weightedIndex(rnd *rand.Rand, n int, weight func(int) float64) int {
	w := make([]float64, n)
	for i := 0; i < n; i++ {
		w[i] = weight(i)
	}
	sampler := weighted.New(w, rnd)
	idx, ok := sampler.Take()
	if !ok {
		return 0
	}
	return idx
}
