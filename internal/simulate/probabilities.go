package simulate

import "hoopsleague.dev/league/internal/core"

const (
	baseTurnoverRate   = 0.12
	baseFoulRate       = 0.15
	baseBlockRate      = 0.06
	base3PointMake     = 0.36
	baseMidMake        = 0.46
	basePostMake       = 0.50
	freeThrowLeagueAvg = 0.75
	baseAssistCap      = 0.80
	andOneRateTwo      = 0.05
	andOneRateThree    = 0.02
)

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// scale maps an attribute in [0,100] to a multiplier centered on 1.0 at 70
// (a solid-starter baseline), so a 100-rated attribute raises the base
// rate by about 43% and a 35-rated one halves it.
func scale(attr int) float64 {
	return float64(attr) / 70.0
}

// turnoverProbability implements §4.4 step 1: p_to as a function of the
// initiator's ball handling and the defense's defense/steals.
func turnoverProbability(ballHandlingO, defenseD, stealsD int, posMult, roleMult float64) float64 {
	p := baseTurnoverRate * (100 - ballHandlingO + defenseD*3/10 + stealsD*3/10) / 100
	return clamp01(p * posMult * roleMult)
}

// foulProbability implements §4.4 step 3: a function of the defense's
// defense attribute and the shooter's foul-drawing tendency.
func foulProbability(defenseD int, shooterFoulDrawnMult float64) float64 {
	p := baseFoulRate * scale(defenseD)
	return clamp01(p * shooterFoulDrawnMult)
}

// shotMakeProbability implements §4.4 step 4.
func shotMakeProbability(shotType ShotType, shooter core.Attributes, defenseD int) float64 {
	var base float64
	var attr int
	switch shotType {
	case ShotThree:
		base, attr = base3PointMake, shooter.ThreePoint
	case ShotPost:
		base, attr = basePostMake, shooter.PostShooting
	default:
		base, attr = baseMidMake, shooter.Shooting
	}
	p := base * scale(attr)
	p -= float64(defenseD-50) * 0.0015
	return clamp01(p)
}

// blockProbability implements §4.4 step 5, evaluated only on misses.
func blockProbability(blocksD, defenderHeightIn int, roleMult float64) float64 {
	heightFactor := 1.0
	if defenderHeightIn >= 80 {
		heightFactor = 1.25
	} else if defenderHeightIn <= 72 {
		heightFactor = 0.7
	}
	p := baseBlockRate * scale(blocksD) * heightFactor
	return clamp01(p * roleMult)
}

// assistProbability implements §4.4 step 7.
func assistProbability(passingInitiator int, roleMult float64) float64 {
	p := float64(passingInitiator) / 150
	if p > baseAssistCap {
		p = baseAssistCap
	}
	return clamp01(p * roleMult)
}

// freeThrowProbability scales a shooter's shooting attribute to a
// league-average 75% make rate.
func freeThrowProbability(shooting int) float64 {
	return clamp01(float64(shooting) / 100 * (freeThrowLeagueAvg / 0.70))
}

// andOneProbability returns the chance a made shot of shotType is also
// fouled, per the Open Question resolution recorded in DESIGN.md.
func andOneProbability(shotType ShotType) float64 {
	if shotType == ShotThree {
		return andOneRateThree
	}
	return andOneRateTwo
}

// freeThrowCount returns how many free throws a shooter fouled pre-shot
// attempts for shotType.
func freeThrowCount(shotType ShotType) int {
	if shotType == ShotThree {
		return 3
	}
	return 2
}
