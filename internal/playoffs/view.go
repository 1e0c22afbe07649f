package playoffs

import "hoopsleague.dev/league/internal/core"

// SeriesView is a display-ready projection of one PlayoffSeries.
type SeriesView struct {
	Round      core.Round      `json:"round"`
	Conference core.Conference `json:"conference"`
	HigherSeed core.TeamID     `json:"higherSeedTeamId"`
	LowerSeed  core.TeamID     `json:"lowerSeedTeamId"`
	HomeWins   int             `json:"homeWins"`
	AwayWins   int             `json:"awayWins"`
	IsComplete bool            `json:"isComplete"`
}

// BracketView is the seed-grid-plus-series-status read model the HTTP
// surface and CLI `league status` command render; it is a pure projection
// of core.PlayoffBracket, not itself part of persisted state.
type BracketView struct {
	CurrentRound       core.Round   `json:"currentRound"`
	PlayIn             []SeriesView `json:"playIn"`
	FirstRound         []SeriesView `json:"firstRound"`
	Semis              []SeriesView `json:"semis"`
	ConfFinals         []SeriesView `json:"confFinals"`
	Finals             []SeriesView `json:"finals"`
	Champion           *core.TeamID `json:"champion,omitempty"`
	UserMissedPlayoffs bool         `json:"userMissedPlayoffs"`
	UserEliminated     bool         `json:"userEliminated"`
}

func toSeriesView(series []core.PlayoffSeries) []SeriesView {
	out := make([]SeriesView, 0, len(series))
	for _, s := range series {
		out = append(out, SeriesView{
			Round:      s.Round,
			Conference: s.Conference,
			HigherSeed: s.HigherSeedTeamID,
			LowerSeed:  s.LowerSeedTeamID,
			HomeWins:   s.HomeWins,
			AwayWins:   s.AwayWins,
			IsComplete: s.IsComplete,
		})
	}
	return out
}

// BuildBracketView projects bracket into its display read model, reporting
// whether userTeamID missed the playoffs entirely or was eliminated along
// the way.
func BuildBracketView(bracket *core.PlayoffBracket, userTeamID core.TeamID) BracketView {
	view := BracketView{
		CurrentRound: bracket.CurrentRound,
		PlayIn:       toSeriesView(bracket.PlayInGames),
		FirstRound:   toSeriesView(bracket.FirstRound),
		Semis:        toSeriesView(bracket.ConferenceSemis),
		ConfFinals:   toSeriesView(bracket.ConferenceFinals),
		Finals:       toSeriesView(bracket.NBAFinals),
	}
	if champ, ok := Champion(bracket); ok {
		view.Champion = &champ
	}
	if seed, ok := bracket.TeamSeedings[userTeamID]; ok {
		view.UserMissedPlayoffs = MissedPlayoffs(seed)
	} else {
		view.UserMissedPlayoffs = true
	}
	view.UserEliminated = IsEliminated(bracket, userTeamID)
	return view
}
