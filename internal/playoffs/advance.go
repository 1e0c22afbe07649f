package playoffs

import "hoopsleague.dev/league/internal/core"

// seriesBySeeds finds the play-in series in games whose participants hold
// exactly (seedA, seedB) in bracket's seedings, identifying the "7v8" game
// by inspecting TeamSeedings rather than slice order.
func seriesBySeeds(bracket *core.PlayoffBracket, games []core.PlayoffSeries, seedA, seedB int) (core.PlayoffSeries, bool) {
	for _, s := range games {
		hs := bracket.TeamSeedings[s.HigherSeedTeamID]
		ls := bracket.TeamSeedings[s.LowerSeedTeamID]
		if (hs == seedA && ls == seedB) || (hs == seedB && ls == seedA) {
			return s, true
		}
	}
	return core.PlayoffSeries{}, false
}

func conferenceSeries(series []core.PlayoffSeries, conf core.Conference) []core.PlayoffSeries {
	var out []core.PlayoffSeries
	for _, s := range series {
		if s.Conference == conf {
			out = append(out, s)
		}
	}
	return out
}

// RecordGameResult folds a completed game into its series, incrementing
// the winning side's win count and marking the series complete at
// seriesLength wins.
func RecordGameResult(series core.PlayoffSeries, homeWon bool) core.PlayoffSeries {
	if homeWon {
		series.HomeWins++
	} else {
		series.AwayWins++
	}
	if series.HomeWins >= series.SeriesLength() || series.AwayWins >= series.SeriesLength() {
		series.IsComplete = true
	}
	return series
}

// findSeries locates a series by id across every round slice in bracket.
func findSeries(bracket *core.PlayoffBracket, id core.SeriesID) (*core.PlayoffSeries, *[]core.PlayoffSeries) {
	groups := []*[]core.PlayoffSeries{
		&bracket.PlayInGames, &bracket.FirstRound, &bracket.ConferenceSemis,
		&bracket.ConferenceFinals, &bracket.NBAFinals,
	}
	for _, g := range groups {
		for i := range *g {
			if (*g)[i].ID == id {
				return &(*g)[i], g
			}
		}
	}
	return nil, nil
}

// ApplyGameResult records a played game's outcome into its series within
// bracket, then advances the bracket if the round has now completed.
func ApplyGameResult(bracket *core.PlayoffBracket, seriesID core.SeriesID, game core.Game) error {
	series, group := findSeries(bracket, seriesID)
	if series == nil {
		return core.NewNotFoundError("playoff series", string(seriesID))
	}
	homeWon := game.HomeScore != nil && game.AwayScore != nil && *game.HomeScore > *game.AwayScore
	homeIsHigherSeed := game.HomeTeamID == series.HigherSeedTeamID
	higherSeedWon := homeWon == homeIsHigherSeed
	updated := RecordGameResult(*series, higherSeedWon)
	updated.GameIDs = append(updated.GameIDs, game.ID)
	*series = updated
	_ = group

	return maybeAdvanceRound(bracket)
}

// playInComplete reports whether all six play-in games exist and are
// finished.
func playInComplete(bracket *core.PlayoffBracket) bool {
	return len(bracket.PlayInGames) == 6 && allComplete(bracket.PlayInGames)
}

func allComplete(series []core.PlayoffSeries) bool {
	if len(series) == 0 {
		return false
	}
	for _, s := range series {
		if !s.IsComplete {
			return false
		}
	}
	return true
}

// maybeAdvanceRound generates the next round's series (or the second wave
// of play-in games) once the current round's prerequisites are satisfied.
func maybeAdvanceRound(bracket *core.PlayoffBracket) error {
	switch bracket.CurrentRound {
	case core.RoundPlayIn:
		if len(bracket.PlayInGames) == 4 && allComplete(bracket.PlayInGames) {
			generateSecondPlayInWave(bracket)
			return nil
		}
		if playInComplete(bracket) {
			generateFirstRound(bracket)
			bracket.CurrentRound = core.RoundFirst
		}
	case core.RoundFirst:
		if allComplete(bracket.FirstRound) && len(bracket.FirstRound) == 8 {
			generateConferenceSemis(bracket)
			bracket.CurrentRound = core.RoundSemis
		}
	case core.RoundSemis:
		if allComplete(bracket.ConferenceSemis) && len(bracket.ConferenceSemis) == 4 {
			generateConferenceFinals(bracket)
			bracket.CurrentRound = core.RoundConfFinal
		}
	case core.RoundConfFinal:
		if allComplete(bracket.ConferenceFinals) && len(bracket.ConferenceFinals) == 2 {
			generateFinals(bracket)
			bracket.CurrentRound = core.RoundFinals
		}
	case core.RoundFinals:
		if allComplete(bracket.NBAFinals) && len(bracket.NBAFinals) == 1 {
			bracket.CurrentRound = core.RoundComplete
		}
	}
	return nil
}

func generateSecondPlayInWave(bracket *core.PlayoffBracket) {
	for _, conf := range []core.Conference{core.ConferenceEast, core.ConferenceWest} {
		games := conferenceSeries(bracket.PlayInGames, conf)
		sevenEight, _ := seriesBySeeds(bracket, games, 7, 8)
		nineTen, _ := seriesBySeeds(bracket, games, 9, 10)

		loserSevenEight, _ := sevenEight.Loser()
		winnerNineTen, _ := nineTen.Winner()

		// The loser of 7v8 (originally seed 7 or 8) is the series' higher
		// seed; the winner of 9v10 is its lower seed regardless of its
		// original numeric seed.
		bracket.PlayInGames = append(bracket.PlayInGames, newSeries(conf, core.RoundPlayIn, loserSevenEight, winnerNineTen))
	}
}

func generateFirstRound(bracket *core.PlayoffBracket) {
	for _, conf := range []core.Conference{core.ConferenceEast, core.ConferenceWest} {
		games := conferenceSeries(bracket.PlayInGames, conf)
		sevenEight, _ := seriesBySeeds(bracket, games, 7, 8)
		secondWave, _ := findSecondWave(bracket, games, sevenEight)

		winnerSevenEight, _ := sevenEight.Winner()
		winnerSecondWave, _ := secondWave.Winner()

		// Final seed 7 is the winner of the original 7v8 game; final seed 8
		// is the winner of the second play-in game.
		finalSeven, finalEight := winnerSevenEight, winnerSecondWave

		byIdx := seedLookup(bracket.TeamSeedings, bracket.TeamConferences, conf)
		bracket.FirstRound = append(bracket.FirstRound,
			newSeries(conf, core.RoundFirst, byIdx[1], finalEight),
			newSeries(conf, core.RoundFirst, byIdx[4], byIdx[5]),
			newSeries(conf, core.RoundFirst, byIdx[3], byIdx[6]),
			newSeries(conf, core.RoundFirst, byIdx[2], finalSeven),
		)
	}
}

// findSecondWave returns the play-in game created after the first four,
// i.e. the one whose participants are not the original 7v8 matchup.
func findSecondWave(bracket *core.PlayoffBracket, games []core.PlayoffSeries, sevenEight core.PlayoffSeries) (core.PlayoffSeries, bool) {
	for _, s := range games {
		if s.ID != sevenEight.ID {
			hs, ls := bracket.TeamSeedings[s.HigherSeedTeamID], bracket.TeamSeedings[s.LowerSeedTeamID]
			if (hs == 9 && ls == 10) || (hs == 10 && ls == 9) {
				continue
			}
			return s, true
		}
	}
	return core.PlayoffSeries{}, false
}

func generateConferenceSemis(bracket *core.PlayoffBracket) {
	for _, conf := range []core.Conference{core.ConferenceEast, core.ConferenceWest} {
		games := conferenceSeries(bracket.FirstRound, conf)
		oneEight := matchupBySeedPair(bracket, games, 1)
		fourFive := matchupBySeedPair(bracket, games, 4)
		threeSix := matchupBySeedPair(bracket, games, 3)
		twoSeven := matchupBySeedPair(bracket, games, 2)

		w1, _ := oneEight.Winner()
		w2, _ := fourFive.Winner()
		w3, _ := threeSix.Winner()
		w4, _ := twoSeven.Winner()

		bracket.ConferenceSemis = append(bracket.ConferenceSemis,
			seedOrderedSeries(bracket, conf, core.RoundSemis, w1, w2),
			seedOrderedSeries(bracket, conf, core.RoundSemis, w3, w4),
		)
	}
}

// matchupBySeedPair finds the first-round game seeded by the top seed's
// original numeric seed (1, 2, 3 or 4), identifying the matchup the way
// it was generated in generateFirstRound.
func matchupBySeedPair(bracket *core.PlayoffBracket, games []core.PlayoffSeries, topSeed int) core.PlayoffSeries {
	for _, s := range games {
		if bracket.TeamSeedings[s.HigherSeedTeamID] == topSeed {
			return s
		}
	}
	return core.PlayoffSeries{}
}

func generateConferenceFinals(bracket *core.PlayoffBracket) {
	for _, conf := range []core.Conference{core.ConferenceEast, core.ConferenceWest} {
		games := conferenceSeries(bracket.ConferenceSemis, conf)
		if len(games) != 2 {
			continue
		}
		w1, _ := games[0].Winner()
		w2, _ := games[1].Winner()
		bracket.ConferenceFinals = append(bracket.ConferenceFinals, seedOrderedSeries(bracket, conf, core.RoundConfFinal, w1, w2))
	}
}

func generateFinals(bracket *core.PlayoffBracket) {
	if len(bracket.ConferenceFinals) != 2 {
		return
	}
	east, _ := bracket.ConferenceFinals[0].Winner()
	west, _ := bracket.ConferenceFinals[1].Winner()
	if bracket.ConferenceFinals[0].Conference != core.ConferenceEast {
		east, west = west, east
	}
	bracket.NBAFinals = append(bracket.NBAFinals, seedOrderedSeries(bracket, core.ConferenceFinal, core.RoundFinals, east, west))
}

// seedOrderedSeries builds a series between a and b with the higher
// regular-season seed (lower numeric seed) as HigherSeedTeamID, granting
// it home court.
func seedOrderedSeries(bracket *core.PlayoffBracket, conf core.Conference, round core.Round, a, b core.TeamID) core.PlayoffSeries {
	if bracket.TeamSeedings[a] <= bracket.TeamSeedings[b] {
		return newSeries(conf, round, a, b)
	}
	return newSeries(conf, round, b, a)
}

// IsEliminated reports whether teamID has lost a completed series
// anywhere in the bracket. Being "between rounds" (won the last series,
// next round not yet generated) is not elimination.
func IsEliminated(bracket *core.PlayoffBracket, teamID core.TeamID) bool {
	for _, group := range [][]core.PlayoffSeries{
		bracket.PlayInGames, bracket.FirstRound, bracket.ConferenceSemis,
		bracket.ConferenceFinals, bracket.NBAFinals,
	} {
		for _, s := range group {
			if !s.IsComplete {
				continue
			}
			loser, ok := s.Loser()
			if ok && loser == teamID {
				return true
			}
		}
	}
	return false
}

// Champion returns the NBA Finals winner once the bracket is complete.
func Champion(bracket *core.PlayoffBracket) (core.TeamID, bool) {
	if bracket.CurrentRound != core.RoundComplete || len(bracket.NBAFinals) != 1 {
		return "", false
	}
	return bracket.NBAFinals[0].Winner()
}
