// Package simulate is the possession-by-possession game simulator (C5):
// lineup cycling into stints, the seven-step per-possession resolution
// order, and overtime handling, matching §4.4-§4.6.
package simulate

import (
	"math/rand"
	"time"

	"hoopsleague.dev/league/internal/core"
)

const (
	basePossessionsPerTeam = 100
	possessionVarianceHalf = 8 // inclusive range [-8,+8], per the Open Question resolution
	overtimePossessions    = 10 // per team, i.e. 20 total, per §4.4
	maxOvertimePeriods      = 50
)

// Options configures one call to SimulateGame.
type Options struct {
	// Seed, if non-nil, makes the game reproducible. A nil Seed draws
	// entropy from the platform clock, per §4.4's determinism contract.
	Seed          *int64
	ScheduledDate time.Time
}

// SimulateGame plays one full game between home and away and returns the
// completed core.Game (scores, boxscore, isPlayed=true). The caller is
// responsible for writing the result back into the schedule/season.
func SimulateGame(home, away core.Team, gameID core.GameID, opts Options) core.Game {
	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	rnd := rand.New(rand.NewSource(seed))

	homeState := newTeamLineupState(home)
	awayState := newTeamLineupState(away)

	homeActive := buildActiveByID(home)
	awayActive := buildActiveByID(away)

	stats := make(map[core.PlayerID]*core.PlayerGameStats)

	variance := rnd.Intn(2*possessionVarianceHalf+1) - possessionVarianceHalf
	totalPerTeam := basePossessionsPerTeam + variance
	minutesPerPossession := float64(core.MinutesPerGame) / float64(totalPerTeam)

	homeScore, awayScore := 0, 0
	roundsPerStint := totalPerTeam / NumStints
	if roundsPerStint == 0 {
		roundsPerStint = 1
	}

	playRound := func() {
		homeFive := onCourtActive(homeState, homeActive)
		awayFive := onCourtActive(awayState, awayActive)

		homeResult := resolvePossession(rnd, homeFive, awayFive, stats)
		homeScore += homeResult.points

		awayResult := resolvePossession(rnd, awayFive, homeFive, stats)
		awayScore += awayResult.points

		homeState.accrueMinutes(minutesPerPossession)
		awayState.accrueMinutes(minutesPerPossession)
	}

	currentStint := -1
	for round := 0; round < totalPerTeam; round++ {
		stint := round / roundsPerStint
		if stint >= NumStints {
			stint = NumStints - 1
		}
		if stint != currentStint {
			homeState.advanceStint(stint)
			awayState.advanceStint(stint)
			currentStint = stint
		}
		playRound()
	}

	for period := 0; homeScore == awayScore && period < maxOvertimePeriods; period++ {
		for round := 0; round < overtimePossessions; round++ {
			playRound()
		}
	}
	if homeScore == awayScore {
		// Exhausted the overtime budget without a natural break; force a
		// deterministic (seeded) coin flip rather than loop forever.
		if rnd.Intn(2) == 0 {
			homeScore++
		} else {
			awayScore++
		}
	}

	finalizeMinutes(stats, homeState)
	finalizeMinutes(stats, awayState)

	hs, as := homeScore, awayScore
	return core.Game{
		ID:            gameID,
		HomeTeamID:    home.ID,
		AwayTeamID:    away.ID,
		HomeScore:     &hs,
		AwayScore:     &as,
		IsPlayed:      true,
		ScheduledDate: opts.ScheduledDate,
		BoxScore:      core.BoxScore(copyStats(stats)),
	}
}

func buildActiveByID(team core.Team) map[core.PlayerID]activePlayer {
	out := make(map[core.PlayerID]activePlayer, len(team.Players))
	for _, p := range team.Players {
		out[p.ID] = resolveActive(p)
	}
	return out
}

func onCourtActive(state *teamLineupState, active map[core.PlayerID]activePlayer) [5]activePlayer {
	ids := state.onCourtIDs()
	var out [5]activePlayer
	for i, id := range ids {
		out[i] = active[id]
	}
	return out
}

// finalizeMinutes copies each lineup's accrued on-court minutes into the
// boxscore's Minutes counter, rounding to the nearest whole minute.
func finalizeMinutes(stats map[core.PlayerID]*core.PlayerGameStats, state *teamLineupState) {
	for id, accrued := range state.accrued {
		if accrued <= 0 {
			continue
		}
		s, ok := stats[id]
		if !ok {
			s = &core.PlayerGameStats{}
			stats[id] = s
		}
		s.Minutes = int(accrued + 0.5)
	}
}

func copyStats(stats map[core.PlayerID]*core.PlayerGameStats) map[core.PlayerID]core.PlayerGameStats {
	out := make(map[core.PlayerID]core.PlayerGameStats, len(stats))
	for id, s := range stats {
		out[id] = *s
	}
	return out
}
