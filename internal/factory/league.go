package factory

import (
	"math/rand"

	"hoopsleague.dev/league/internal/core"
)

// franchise is a fixed (city, nickname) pair used to seed a league's 30
// teams. Names are invented, not drawn from any real league.
type franchise struct {
	city, name string
}

var franchises = []franchise{
	{"Ashford", "Comets"}, {"Belmont", "Foxes"}, {"Carrow", "Hawks"}, {"Dunmore", "Tide"},
	{"Easton", "Sentinels"}, {"Fairview", "Miners"}, {"Glenhaven", "Rangers"}, {"Harlow", "Vanguard"},
	{"Ironwood", "Blaze"}, {"Jasperton", "Wolves"}, {"Kingston", "Stallions"}, {"Lakecrest", "Current"},
	{"Meridian", "Atlas"}, {"Norwich", "Falcons"}, {"Oakhurst", "Timber"}, {"Prescott", "Aviators"},
	{"Quarry Hill", "Granite"}, {"Ridgeland", "Summit"}, {"Sutterfield", "Lynx"}, {"Thornbury", "Cyclones"},
	{"Union City", "Pioneers"}, {"Vernridge", "Echo"}, {"Westbrook", "Mariners"}, {"Ashgrove", "Sparks"},
	{"Brighton Falls", "Anchors"}, {"Carterville", "Vortex"}, {"Deerfield", "Rush"}, {"Elmridge", "Sentries"},
	{"Fenwick", "Marauders"}, {"Graystone", "Keepers"},
}

// GenerateLeague builds core.LeagueSize teams deterministically from seed.
func GenerateLeague(seed int64) []core.Team {
	rnd := rand.New(rand.NewSource(seed))
	teams := make([]core.Team, 0, len(franchises))
	for _, f := range franchises {
		teams = append(teams, GenerateTeam(rnd, f.city, f.name))
	}
	return teams
}

// AssignConferences splits teams into two conferences of equal size by
// franchise order: the first half is core.ConferenceEast, the second half
// is core.ConferenceWest. Conference membership is not itself a Team
// field (only standings/playoffs need it), so callers needing it — the
// HTTP surface, the season manager — hold this map alongside the roster.
func AssignConferences(teams []core.Team) map[core.TeamID]core.Conference {
	out := make(map[core.TeamID]core.Conference, len(teams))
	half := len(teams) / 2
	for i, t := range teams {
		if i < half {
			out[t.ID] = core.ConferenceEast
		} else {
			out[t.ID] = core.ConferenceWest
		}
	}
	return out
}
