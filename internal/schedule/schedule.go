// Package schedule generates a league-wide regular-season schedule via the
// rotating round-robin described in §4.3: repeatedly shuffle the teams
// still needing games, pair them off, and emit a game per pair until every
// team has its full game count.
package schedule

import (
	"math/rand"
	"sort"
	"time"

	"hoopsleague.dev/league/internal/core"
)

// maxRoundMultiplier bounds how many pairing rounds the generator will
// attempt before concluding it cannot make progress; 30 teams at 82
// games/team converges in well under this, so hitting the cap means the
// inputs are infeasible rather than merely slow.
const maxRoundMultiplier = 20

// Generate produces a full regular-season schedule for teamIDs, each
// playing exactly gamesPerTeam games, using seed for the pseudo-random
// shuffles. startDate is the date of the first round; each subsequent
// round lands one day later.
func Generate(teamIDs []core.TeamID, gamesPerTeam int, seed int64, startDate time.Time) ([]core.Game, error) {
	if len(teamIDs) < 2 {
		return nil, core.NewScheduleInfeasibleError(len(teamIDs), gamesPerTeam, "fewer than two teams")
	}

	rnd := rand.New(rand.NewSource(seed))
	needed := make(map[core.TeamID]int, len(teamIDs))
	homeDiff := make(map[core.TeamID]int, len(teamIDs)) // homeCount - awayCount
	for _, id := range teamIDs {
		needed[id] = gamesPerTeam
	}

	var games []core.Game
	maxRounds := len(teamIDs) * gamesPerTeam * maxRoundMultiplier
	round := 0

	for remaining(needed) > 0 {
		round++
		if round > maxRounds {
			return nil, core.NewScheduleInfeasibleError(len(teamIDs), gamesPerTeam, "no progress within round budget")
		}

		pending := make([]core.TeamID, 0, len(teamIDs))
		for _, id := range teamIDs {
			if needed[id] > 0 {
				pending = append(pending, id)
			}
		}
		rnd.Shuffle(len(pending), func(i, j int) { pending[i], pending[j] = pending[j], pending[i] })
		// Pair the teams that have hosted most with those that have hosted
		// least, so the home pick below keeps every team within one game of
		// an even home/away split.
		sort.SliceStable(pending, func(i, j int) bool { return homeDiff[pending[i]] > homeDiff[pending[j]] })
		paired := make([]core.TeamID, 0, len(pending))
		for lo, hi := 0, len(pending)-1; lo <= hi; lo, hi = lo+1, hi-1 {
			paired = append(paired, pending[lo])
			if lo != hi {
				paired = append(paired, pending[hi])
			}
		}
		pending = paired

		progressed := false
		scheduledDate := startDate.AddDate(0, 0, round-1)
		for i := 0; i+1 < len(pending); i += 2 {
			a, b := pending[i], pending[i+1]
			home, away := a, b
			if homeDiff[a] > homeDiff[b] {
				home, away = b, a
			} else if homeDiff[a] == homeDiff[b] && rnd.Intn(2) == 1 {
				home, away = b, a
			}

			games = append(games, core.Game{
				ID:            core.NewGameID(),
				HomeTeamID:    home,
				AwayTeamID:    away,
				IsPlayed:      false,
				ScheduledDate: scheduledDate,
			})
			needed[home]--
			needed[away]--
			homeDiff[home]++
			homeDiff[away]--
			progressed = true
		}

		if !progressed && remaining(needed) > 0 {
			// Every team left needing games is the same odd one out, round
			// after round; that is only possible if a single team still
			// needs games while every other team is already satisfied.
			return nil, core.NewScheduleInfeasibleError(len(teamIDs), gamesPerTeam, "unable to pair remaining teams")
		}
	}

	return games, nil
}

func remaining(needed map[core.TeamID]int) int {
	total := 0
	for _, n := range needed {
		if n > 0 {
			total += n
		}
	}
	return total
}

// UserGames filters the full league schedule down to the games involving
// userTeamID, preserving schedule order.
func UserGames(leagueSchedule []core.Game, userTeamID core.TeamID) []core.Game {
	out := make([]core.Game, 0, core.GamesPerTeam)
	for _, g := range leagueSchedule {
		if g.HomeTeamID == userTeamID || g.AwayTeamID == userTeamID {
			out = append(out, g)
		}
	}
	return out
}
