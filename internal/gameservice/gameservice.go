// Package gameservice orchestrates single and batch game simulation (C6).
// Its one contract obligation is rotation freshness: every call re-reads
// the participating Teams from the entity store at the start of the call,
// so a rotation edit made between games is always honored and a stale
// Team snapshot from an earlier call is never reused.
package gameservice

import (
	"time"

	"hoopsleague.dev/league/internal/core"
	"hoopsleague.dev/league/internal/simulate"
)

// TeamLookup is the read-only entity-store accessor the game service
// depends on; httpapi's in-memory League satisfies it.
type TeamLookup interface {
	GetTeam(id core.TeamID) (core.Team, error)
}

// SimulateOne plays game, reading both participating Teams fresh from
// lookup, and returns the completed Game. seed is optional (nil draws
// clock entropy).
func SimulateOne(lookup TeamLookup, game core.Game, seed *int64) (core.Game, error) {
	home, err := lookup.GetTeam(game.HomeTeamID)
	if err != nil {
		return core.Game{}, err
	}
	away, err := lookup.GetTeam(game.AwayTeamID)
	if err != nil {
		return core.Game{}, err
	}

	scheduledDate := game.ScheduledDate
	if scheduledDate.IsZero() {
		scheduledDate = time.Now()
	}

	played := simulate.SimulateGame(home, away, game.ID, simulate.Options{Seed: seed, ScheduledDate: scheduledDate})
	played.SeriesID = game.SeriesID
	return played, nil
}

// SimulateBatch plays every unplayed game in games, in order, re-reading
// Team state before each one (so a rotation change mid-batch, applied
// through the same lookup, takes effect on the very next game). seedFor,
// if non-nil, supplies a per-game seed; a nil return for a given game
// draws clock entropy for that game only.
func SimulateBatch(lookup TeamLookup, games []core.Game, seedFor func(core.GameID) *int64) ([]core.Game, error) {
	out := make([]core.Game, len(games))
	copy(out, games)
	for i, g := range out {
		if g.IsPlayed {
			continue
		}
		var seed *int64
		if seedFor != nil {
			seed = seedFor(g.ID)
		}
		played, err := SimulateOne(lookup, g, seed)
		if err != nil {
			return out, err
		}
		out[i] = played
	}
	return out, nil
}
