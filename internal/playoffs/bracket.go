// Package playoffs implements the postseason state machine (C9): play-in
// eligibility and construction, round advancement, the 2-2-1-1-1
// home-court sequence, elimination semantics, and SimulateRestOfPlayoffs.
package playoffs

import "hoopsleague.dev/league/internal/core"

// MissedPlayoffs reports whether userSeed places the user's team outside
// the play-in picture. StartPostSeason leaves the bracket unbuilt for a
// missed user; season.EnsureBracket builds it anyway so the league bracket
// can still be advanced to a champion (§4.8 scenario 3: "the operation
// still completes and returns a champion").
func MissedPlayoffs(userSeed int) bool {
	return userSeed > core.MaxPlayInSeed
}

// seedLookup inverts a conference's seedings for fast seed->team lookups.
func seedLookup(seeds map[core.TeamID]int, conferences map[core.TeamID]core.Conference, conf core.Conference) map[int]core.TeamID {
	out := make(map[int]core.TeamID)
	for id, s := range seeds {
		if conferences[id] == conf {
			out[s] = id
		}
	}
	return out
}

// BuildBracket constructs the initial bracket: four play-in series (7v8
// and 9v10 per conference). It fails with InvalidSeeding if either
// conference is missing any of seeds 7-10.
func BuildBracket(seasonID string, seeds map[core.TeamID]int, conferences map[core.TeamID]core.Conference) (*core.PlayoffBracket, error) {
	bracket := &core.PlayoffBracket{
		SeasonID:        seasonID,
		TeamSeedings:    cloneSeeds(seeds),
		TeamConferences: cloneConferences(conferences),
		CurrentRound:    core.RoundPlayIn,
	}

	for _, conf := range []core.Conference{core.ConferenceEast, core.ConferenceWest} {
		byIdx := seedLookup(seeds, conferences, conf)
		for _, s := range []int{7, 8, 9, 10} {
			if _, ok := byIdx[s]; !ok {
				return nil, core.NewInvalidSeedingError(conf, "missing seed in play-in range 7-10")
			}
		}
		bracket.PlayInGames = append(bracket.PlayInGames,
			newSeries(conf, core.RoundPlayIn, byIdx[7], byIdx[8]),
			newSeries(conf, core.RoundPlayIn, byIdx[9], byIdx[10]),
		)
	}
	return bracket, nil
}

func newSeries(conf core.Conference, round core.Round, higher, lower core.TeamID) core.PlayoffSeries {
	return core.PlayoffSeries{
		ID:               core.NewSeriesID(),
		HigherSeedTeamID: higher,
		LowerSeedTeamID:  lower,
		Conference:       conf,
		Round:            round,
	}
}

func cloneSeeds(seeds map[core.TeamID]int) map[core.TeamID]int {
	out := make(map[core.TeamID]int, len(seeds))
	for k, v := range seeds {
		out[k] = v
	}
	return out
}

func cloneConferences(conferences map[core.TeamID]core.Conference) map[core.TeamID]core.Conference {
	out := make(map[core.TeamID]core.Conference, len(conferences))
	for k, v := range conferences {
		out[k] = v
	}
	return out
}
