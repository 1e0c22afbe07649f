// Package position implements position affinity scoring and the role
// archetype registry: how well a player's attributes fit each of the five
// positions, and the gameplay modifiers a role archetype contributes to
// possession resolution.
package position

import "hoopsleague.dev/league/internal/core"

// weights is one position's attribute weight vector; fields mirror
// core.Attributes. The vectors are not normalized (each sums to 1.15 or
// 1.20); Affinity clamps the final score to [0,100].
type weights struct {
	shooting, threePoint, post, passing, handling float64
	rebounding, defense, speed, blocks, steals    float64
}

var positionWeights = map[core.Position]weights{
	core.PositionPG: {shooting: .05, threePoint: .10, post: .00, passing: .40, handling: .30, rebounding: .00, defense: .05, speed: .20, blocks: .00, steals: .05},
	core.PositionSG: {shooting: .35, threePoint: .35, post: .00, passing: .05, handling: .10, rebounding: .00, defense: .05, speed: .20, blocks: .00, steals: .05},
	core.PositionSF: {shooting: .25, threePoint: .15, post: .10, passing: .05, handling: .05, rebounding: .10, defense: .25, speed: .15, blocks: .05, steals: .05},
	core.PositionPF: {shooting: .20, threePoint: .05, post: .15, passing: .00, handling: .00, rebounding: .35, defense: .25, speed: .05, blocks: .10, steals: .00},
	core.PositionC:  {shooting: .05, threePoint: .00, post: .20, passing: .00, handling: .00, rebounding: .35, defense: .25, speed: .00, blocks: .30, steals: .00},
}

// heightTerm returns the additive height bonus/penalty for pos at heightIn,
// clamped to [-15,+15] by construction (the table below never exceeds it).
func heightTerm(pos core.Position, heightIn int) float64 {
	switch pos {
	case core.PositionPG:
		switch {
		case heightIn <= 74:
			return 10
		case heightIn >= 79:
			return -15
		}
	case core.PositionSG:
		if heightIn >= 73 && heightIn <= 78 {
			return 10
		}
	case core.PositionSF:
		if heightIn >= 76 && heightIn <= 80 {
			return 10
		}
	case core.PositionPF:
		if heightIn >= 79 {
			return 10
		}
	case core.PositionC:
		if heightIn >= 81 {
			return 15
		}
	}
	return 0
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Affinity returns pos's position-affinity score for attrs/heightIn,
// bounded to [0,100].
func Affinity(pos core.Position, attrs core.Attributes, heightIn int) float64 {
	w := positionWeights[pos]
	score := w.shooting*float64(attrs.Shooting) +
		w.threePoint*float64(attrs.ThreePoint) +
		w.post*float64(attrs.PostShooting) +
		w.passing*float64(attrs.Passing) +
		w.handling*float64(attrs.BallHandling) +
		w.rebounding*float64(attrs.Rebounding) +
		w.defense*float64(attrs.Defense) +
		w.speed*float64(attrs.Speed) +
		w.blocks*float64(attrs.Blocks) +
		w.steals*float64(attrs.Steals) +
		heightTerm(pos, heightIn)
	return clampScore(score)
}

// BestPosition returns the position with the highest affinity for
// attrs/heightIn, breaking ties by the fixed preference order
// PG < SG < SF < PF < C.
func BestPosition(attrs core.Attributes, heightIn int) core.Position {
	best := core.Positions[0]
	bestScore := Affinity(best, attrs, heightIn)
	for _, pos := range core.Positions[1:] {
		s := Affinity(pos, attrs, heightIn)
		if s > bestScore {
			best, bestScore = pos, s
		}
	}
	return best
}
