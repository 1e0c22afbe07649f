package playoffs

import "hoopsleague.dev/league/internal/core"

// GamePlayer plays one playoff game between home and away (gameNumber is
// 1-indexed within the series) and returns the completed Game.
type GamePlayer func(seriesID core.SeriesID, home, away core.TeamID, gameNumber int) (core.Game, error)

func roundGroup(bracket *core.PlayoffBracket, round core.Round) []core.PlayoffSeries {
	switch round {
	case core.RoundPlayIn:
		return bracket.PlayInGames
	case core.RoundFirst:
		return bracket.FirstRound
	case core.RoundSemis:
		return bracket.ConferenceSemis
	case core.RoundConfFinal:
		return bracket.ConferenceFinals
	case core.RoundFinals:
		return bracket.NBAFinals
	default:
		return nil
	}
}

// SimulateRestOfPlayoffs repeatedly plays every incomplete series in the
// current round (advancing rounds as they complete) until currentRound
// reaches complete, then returns the champion.
func SimulateRestOfPlayoffs(bracket *core.PlayoffBracket, play GamePlayer) (core.TeamID, error) {
	for bracket.CurrentRound != core.RoundComplete {
		group := roundGroup(bracket, bracket.CurrentRound)
		progressed := false
		for _, s := range group {
			if s.IsComplete {
				continue
			}
			gameNumber := NextGameNumber(s)
			home, away := HomeCourt(s, gameNumber)
			game, err := play(s.ID, home, away, gameNumber)
			if err != nil {
				return "", err
			}
			if err := ApplyGameResult(bracket, s.ID, game); err != nil {
				return "", err
			}
			progressed = true
		}
		if !progressed {
			return "", core.NewNothingToSimulateError("", "no series progressed in current round")
		}
	}
	champion, ok := Champion(bracket)
	if !ok {
		return "", core.NewNothingToSimulateError("", "bracket complete but champion undetermined")
	}
	return champion, nil
}
