package playoffs

import "hoopsleague.dev/league/internal/core"

// HomeCourt returns the home and away team for game number gameNumber
// (1-indexed) of series, per the 2-2-1-1-1 sequence: games 1,2,5,7 at the
// higher seed, games 3,4,6 at the lower seed. Play-in games (series
// length 1) are always hosted by the higher seed.
func HomeCourt(series core.PlayoffSeries, gameNumber int) (home, away core.TeamID) {
	if series.SeriesLength() == 1 {
		return series.HigherSeedTeamID, series.LowerSeedTeamID
	}
	switch gameNumber {
	case 3, 4, 6:
		return series.LowerSeedTeamID, series.HigherSeedTeamID
	default:
		return series.HigherSeedTeamID, series.LowerSeedTeamID
	}
}

// NextGameNumber returns the 1-indexed game number for the next game to
// be played in series.
func NextGameNumber(series core.PlayoffSeries) int {
	return len(series.GameIDs) + 1
}
