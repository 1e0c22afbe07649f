// Package season implements the season manager (C7): tracking played vs.
// unplayed games, accumulating per-game stats into season/playoff totals,
// detecting regular-season completion, and triggering the postseason.
package season

import (
	"hoopsleague.dev/league/internal/core"
	"hoopsleague.dev/league/internal/playoffs"
	"hoopsleague.dev/league/internal/standings"
)

// StatTarget selects which cumulative bucket AccumulateStats folds a
// boxscore into.
type StatTarget int

const (
	TargetSeason StatTarget = iota
	TargetPlayoff
)

// NextUnplayedGameForUser returns the first unplayed entry in
// season.Games, or ok=false if every user-team game has been played.
func NextUnplayedGameForUser(s *core.Season) (core.Game, bool) {
	for _, g := range s.Games {
		if !g.IsPlayed {
			return g, true
		}
	}
	return core.Game{}, false
}

// RecordGameResult writes played back into both season.Games (if the user
// team participated) and season.LeagueSchedule (matched by id), then
// accumulates its boxscore into the appropriate stat bucket.
func RecordGameResult(s *core.Season, played core.Game) {
	for i, g := range s.LeagueSchedule {
		if g.ID == played.ID {
			s.LeagueSchedule[i] = played
			break
		}
	}
	for i, g := range s.Games {
		if g.ID == played.ID {
			s.Games[i] = played
			break
		}
	}

	target := TargetSeason
	if played.SeriesID != nil {
		target = TargetPlayoff
	}
	AccumulateStats(s, played.BoxScore, target)
}

// AccumulateStats folds every player's per-game line in box into the
// season or playoff cumulative totals. Folding is additive and
// commutative: calling it twice for distinct games in any order produces
// the same totals.
func AccumulateStats(s *core.Season, box core.BoxScore, target StatTarget) {
	if box == nil {
		return
	}
	switch target {
	case TargetPlayoff:
		if s.PlayoffStats == nil {
			s.PlayoffStats = make(map[core.PlayerID]*core.PlayerPlayoffStats)
		}
		for id, line := range box {
			stats, ok := s.PlayoffStats[id]
			if !ok {
				stats = &core.PlayerPlayoffStats{}
				s.PlayoffStats[id] = stats
			}
			stats.Add(line)
		}
	default:
		if s.SeasonStats == nil {
			s.SeasonStats = make(map[core.PlayerID]*core.PlayerSeasonStats)
		}
		for id, line := range box {
			stats, ok := s.SeasonStats[id]
			if !ok {
				stats = &core.PlayerSeasonStats{}
				s.SeasonStats[id] = stats
			}
			stats.Add(line)
		}
	}
}

// IsRegularSeasonComplete reports whether every one of the league's
// core.TotalLeagueGames games has been played.
func IsRegularSeasonComplete(s *core.Season) bool {
	if len(s.LeagueSchedule) != core.TotalLeagueGames {
		return false
	}
	for _, g := range s.LeagueSchedule {
		if !g.IsPlayed {
			return false
		}
	}
	return true
}

// StartPostSeason computes standings/seeding and marks the season as
// postseason. The bracket is only constructed when the user's own team
// seeded 10th or better; if the user's seed missed the play-in picture,
// s.Bracket is left nil and UserMissedPlayoffs reports the miss. Callers
// that still need a champion crowned in that case (SimulateRestOfPlayoffs)
// fall back to EnsureBracket.
func StartPostSeason(s *core.Season, conferences map[core.TeamID]core.Conference, nameOf standings.TeamNameLookup) error {
	s.IsPostSeason = true

	records := standings.ComputeRecords(s.LeagueSchedule)
	seeds := standings.Seeding(records, conferences, nameOf)

	userSeed, ok := seeds[s.UserTeamID]
	if ok && playoffs.MissedPlayoffs(userSeed) {
		return nil
	}

	bracket, err := playoffs.BuildBracket(s.ID, seeds, conferences)
	if err != nil {
		return err
	}
	s.Bracket = bracket
	return nil
}

// EnsureBracket builds and attaches s.Bracket if it is not already set,
// bypassing the user's own seed eligibility check. It lets the playoff
// engine advance a league bracket to a champion even in a season where
// the user's team missed the playoffs and StartPostSeason left s.Bracket
// nil.
func EnsureBracket(s *core.Season, conferences map[core.TeamID]core.Conference, nameOf standings.TeamNameLookup) (*core.PlayoffBracket, error) {
	if s.Bracket != nil {
		return s.Bracket, nil
	}

	records := standings.ComputeRecords(s.LeagueSchedule)
	seeds := standings.Seeding(records, conferences, nameOf)

	bracket, err := playoffs.BuildBracket(s.ID, seeds, conferences)
	if err != nil {
		return nil, err
	}
	s.Bracket = bracket
	return bracket, nil
}

// UserMissedPlayoffs reports whether userTeamID's seed places it outside
// the play-in picture for s's bracket.
func UserMissedPlayoffs(s *core.Season, userTeamID core.TeamID) bool {
	if s.Bracket == nil {
		return true
	}
	seed, ok := s.Bracket.TeamSeedings[userTeamID]
	if !ok {
		return true
	}
	return playoffs.MissedPlayoffs(seed)
}
