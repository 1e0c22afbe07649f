// Package httpapi is the thin, swagger-documented HTTP surface over the
// core API (§6): league lifecycle, team reads/writes, simulation, cached
// standings/bracket views, and the save store. It plays the role the
// teacher's internal/api package plays over its repositories, but here
// the "repository" is an in-memory League held by Engine rather than a
// SQL-backed one, since Teams and Season are runtime simulation state,
// not persisted entities in their own right — only whole-league snapshots
// are persisted, through internal/store.
package httpapi

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"hoopsleague.dev/league/internal/cache"
	"hoopsleague.dev/league/internal/core"
	"hoopsleague.dev/league/internal/factory"
	"hoopsleague.dev/league/internal/gameservice"
	"hoopsleague.dev/league/internal/playoffs"
	"hoopsleague.dev/league/internal/schedule"
	"hoopsleague.dev/league/internal/season"
	"hoopsleague.dev/league/internal/standings"
	"hoopsleague.dev/league/internal/store"
)

// League is one process-wide LeagueState value: a team roster, the
// conference each team belongs to, and the season that tracks games and
// stats against them. A League is mutated only through Engine's methods,
// which hold Engine.mu for the duration of the mutation.
type League struct {
	ID          string
	Teams       map[core.TeamID]core.Team
	TeamOrder   []core.TeamID
	Conferences map[core.TeamID]core.Conference
	Season      *core.Season
}

// GetTeam satisfies gameservice.TeamLookup, re-reading the roster fresh
// from the League on every call so a rotation edit between games is
// never stale.
func (l *League) GetTeam(id core.TeamID) (core.Team, error) {
	t, ok := l.Teams[id]
	if !ok {
		return core.Team{}, core.NewNotFoundError("team", string(id))
	}
	return t, nil
}

func (l *League) nameOf(id core.TeamID) string {
	t, ok := l.Teams[id]
	if !ok {
		return string(id)
	}
	return t.FullName()
}

var _ gameservice.TeamLookup = (*League)(nil)

// Engine holds every in-memory League the process knows about, keyed by
// a generated league id, plus the save store and the cached view helper
// shared across leagues. A single mutex serializes every mutation; this
// is a single-user local app with no concurrent writers to arbitrate
// between, so a coarse lock is simplicity over throughput, not a
// shortcut around a real contention problem.
type Engine struct {
	mu      sync.Mutex
	leagues map[string]*League
	store   store.Store
	views   *cache.ViewCache
}

// NewEngine builds an Engine backed by st for persistence and views for
// cached standings/bracket reads.
func NewEngine(st store.Store, views *cache.ViewCache) *Engine {
	return &Engine{
		leagues: make(map[string]*League),
		store:   st,
		views:   views,
	}
}

func (e *Engine) league(id string) (*League, error) {
	lg, ok := e.leagues[id]
	if !ok {
		return nil, core.NewNotFoundError("league", id)
	}
	return lg, nil
}

// InitializeLeague builds 30 teams and a regular-season schedule from
// req.Seed (a zero Seed is replaced by a clock-derived one), registers the
// resulting League, and returns it. An empty UserTeamID defaults to the
// first generated team.
func (e *Engine) InitializeLeague(req InitLeagueRequest) (*League, error) {
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	teams := factory.GenerateLeague(seed)
	conferences := factory.AssignConferences(teams)

	teamIDs := make([]core.TeamID, len(teams))
	teamsByID := make(map[core.TeamID]core.Team, len(teams))
	for i, t := range teams {
		teamIDs[i] = t.ID
		teamsByID[t.ID] = t
	}

	userTeamID := req.UserTeamID
	if userTeamID == "" {
		userTeamID = teamIDs[0]
	} else if _, ok := teamsByID[userTeamID]; !ok {
		return nil, core.NewNotFoundError("team", string(userTeamID))
	}

	leagueSchedule, err := schedule.Generate(teamIDs, core.GamesPerTeam, seed, time.Now())
	if err != nil {
		return nil, err
	}

	year := req.Year
	if year == 0 {
		year = time.Now().Year()
	}

	s := &core.Season{
		ID:             uuid.NewString(),
		Year:           year,
		UserTeamID:     userTeamID,
		Games:          schedule.UserGames(leagueSchedule, userTeamID),
		LeagueSchedule: leagueSchedule,
		SeasonStats:    make(map[core.PlayerID]*core.PlayerSeasonStats),
	}

	lg := &League{
		ID:          uuid.NewString(),
		Teams:       teamsByID,
		TeamOrder:   teamIDs,
		Conferences: conferences,
		Season:      s,
	}

	e.mu.Lock()
	e.leagues[lg.ID] = lg
	e.mu.Unlock()
	return lg, nil
}

// ListTeams returns leagueID's teams in generation order.
func (e *Engine) ListTeams(leagueID string) ([]core.Team, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	lg, err := e.league(leagueID)
	if err != nil {
		return nil, err
	}
	out := make([]core.Team, len(lg.TeamOrder))
	for i, id := range lg.TeamOrder {
		out[i] = lg.Teams[id]
	}
	return out, nil
}

// GetTeam returns a single team from leagueID's roster.
func (e *Engine) GetTeam(leagueID string, teamID core.TeamID) (core.Team, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	lg, err := e.league(leagueID)
	if err != nil {
		return core.Team{}, err
	}
	return lg.GetTeam(teamID)
}

// UpdateTeam atomically replaces a team record after re-validating its
// invariants; an invalid replacement is rejected and the stored team is
// left untouched.
func (e *Engine) UpdateTeam(leagueID string, team core.Team) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	lg, err := e.league(leagueID)
	if err != nil {
		return err
	}
	if _, ok := lg.Teams[team.ID]; !ok {
		return core.NewNotFoundError("team", string(team.ID))
	}
	if err := core.ValidateTeam(team); err != nil {
		return err
	}
	lg.Teams[team.ID] = team
	return nil
}

// simulateSeriesGame plays one playoff game and folds its result into
// lg.Season's stats, but does not apply it to the bracket; callers decide
// whether to apply immediately (SimulateNextGame) or let
// playoffs.SimulateRestOfPlayoffs apply it as part of its own loop.
func (e *Engine) simulateSeriesGame(lg *League, seriesID core.SeriesID, home, away core.TeamID) (core.Game, error) {
	shell := core.Game{
		ID:            core.NewGameID(),
		HomeTeamID:    home,
		AwayTeamID:    away,
		ScheduledDate: time.Now(),
		SeriesID:      &seriesID,
	}
	played, err := gameservice.SimulateOne(lg, shell, nil)
	if err != nil {
		return core.Game{}, err
	}
	season.RecordGameResult(lg.Season, played)
	return played, nil
}

// userSeriesInCurrentRound finds the incomplete series in bracket's
// current round that userTeamID participates in, if any.
func userSeriesInCurrentRound(bracket *core.PlayoffBracket, round core.Round, userTeamID core.TeamID) (core.PlayoffSeries, bool) {
	for _, s := range roundGroup(bracket, round) {
		if s.IsComplete {
			continue
		}
		if s.HigherSeedTeamID == userTeamID || s.LowerSeedTeamID == userTeamID {
			return s, true
		}
	}
	return core.PlayoffSeries{}, false
}

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

// SimulateNextGame plays the next game for leagueID's user team: a single
// regular-season game while the season is pre-postseason, or the next
// game in the user's current playoff series once it is. In the playoff
// branch, every other incomplete series sharing the current round is
// also advanced by one game, so the bracket never lags behind the user's
// own progress.
func (e *Engine) SimulateNextGame(leagueID string) (core.Game, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	lg, err := e.league(leagueID)
	if err != nil {
		return core.Game{}, err
	}
	userTeamID := lg.Season.UserTeamID

	if !lg.Season.IsPostSeason {
		next, ok := season.NextUnplayedGameForUser(lg.Season)
		if !ok {
			return core.Game{}, core.NewNothingToSimulateError(userTeamID, "every regular-season game already played")
		}
		played, err := gameservice.SimulateOne(lg, next, nil)
		if err != nil {
			return core.Game{}, err
		}
		season.RecordGameResult(lg.Season, played)
		return played, nil
	}

	bracket := lg.Season.Bracket
	if bracket == nil {
		return core.Game{}, core.NewNothingToSimulateError(userTeamID, "user missed the playoffs; no bracket to advance")
	}
	if bracket.CurrentRound == core.RoundComplete {
		return core.Game{}, core.NewNothingToSimulateError(userTeamID, "playoffs already complete")
	}
	userSeries, ok := userSeriesInCurrentRound(bracket, bracket.CurrentRound, userTeamID)
	if !ok {
		reason := "user has no series in the current round"
		if playoffs.IsEliminated(bracket, userTeamID) {
			reason = "user was eliminated from the playoffs"
		} else if season.UserMissedPlayoffs(lg.Season, userTeamID) {
			reason = "user missed the playoffs"
		}
		return core.Game{}, core.NewNothingToSimulateError(userTeamID, reason)
	}

	gameNumber := playoffs.NextGameNumber(userSeries)
	home, away := playoffs.HomeCourt(userSeries, gameNumber)
	userGame, err := e.simulateSeriesGame(lg, userSeries.ID, home, away)
	if err != nil {
		return core.Game{}, err
	}
	if err := playoffs.ApplyGameResult(bracket, userSeries.ID, userGame); err != nil {
		return core.Game{}, err
	}

	for _, s := range roundGroup(bracket, bracket.CurrentRound) {
		if s.ID == userSeries.ID || s.IsComplete {
			continue
		}
		gn := playoffs.NextGameNumber(s)
		h, a := playoffs.HomeCourt(s, gn)
		played, err := e.simulateSeriesGame(lg, s.ID, h, a)
		if err != nil {
			return core.Game{}, err
		}
		_ = playoffs.ApplyGameResult(bracket, s.ID, played)
	}

	return userGame, nil
}

// SimulateRemainingRegularSeason plays every unplayed regular-season game
// in leagueID's league schedule, then starts the postseason the instant
// every one of them has been played.
func (e *Engine) SimulateRemainingRegularSeason(leagueID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	lg, err := e.league(leagueID)
	if err != nil {
		return err
	}

	var unplayed []core.Game
	for _, g := range lg.Season.LeagueSchedule {
		if !g.IsPlayed {
			unplayed = append(unplayed, g)
		}
	}
	played, err := gameservice.SimulateBatch(lg, unplayed, nil)
	if err != nil {
		return err
	}
	for _, g := range played {
		season.RecordGameResult(lg.Season, g)
	}

	if season.IsRegularSeasonComplete(lg.Season) && !lg.Season.IsPostSeason {
		if err := season.StartPostSeason(lg.Season, lg.Conferences, lg.nameOf); err != nil {
			return err
		}
	}
	return nil
}

// PlayoffResult reports the outcome of advancing a league's bracket to
// its champion, alongside whether the user's own team ever took part.
type PlayoffResult struct {
	Champion           core.TeamID
	UserMissedPlayoffs bool
	UserEliminated     bool
}

// SimulateRestOfPlayoffs advances leagueID's bracket until it completes,
// starting the postseason first if the regular season has already
// finished but no bracket exists yet. The league bracket is advanced to a
// champion even when the user's own team missed the playoffs (§4.8
// scenario 3); the result reports that separately.
func (e *Engine) SimulateRestOfPlayoffs(leagueID string) (PlayoffResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	lg, err := e.league(leagueID)
	if err != nil {
		return PlayoffResult{}, err
	}

	if !lg.Season.IsPostSeason {
		if !season.IsRegularSeasonComplete(lg.Season) {
			return PlayoffResult{}, core.NewNothingToSimulateError(lg.Season.UserTeamID, "regular season still in progress")
		}
		if err := season.StartPostSeason(lg.Season, lg.Conferences, lg.nameOf); err != nil {
			return PlayoffResult{}, err
		}
	}
	if lg.Season.Bracket == nil {
		if _, err := season.EnsureBracket(lg.Season, lg.Conferences, lg.nameOf); err != nil {
			return PlayoffResult{}, err
		}
	}

	userMissed := season.UserMissedPlayoffs(lg.Season, lg.Season.UserTeamID)

	champion, err := playoffs.SimulateRestOfPlayoffs(lg.Season.Bracket, func(seriesID core.SeriesID, home, away core.TeamID, _ int) (core.Game, error) {
		return e.simulateSeriesGame(lg, seriesID, home, away)
	})
	if err != nil {
		return PlayoffResult{}, err
	}

	return PlayoffResult{
		Champion:           champion,
		UserMissedPlayoffs: userMissed,
		UserEliminated:     playoffs.IsEliminated(lg.Season.Bracket, lg.Season.UserTeamID),
	}, nil
}

// Standings returns leagueID's cached standings view, computing it fresh
// on a cache miss.
func (e *Engine) Standings(ctx context.Context, leagueID string) (standings.View, error) {
	e.mu.Lock()
	lg, err := e.league(leagueID)
	e.mu.Unlock()
	if err != nil {
		return standings.View{}, err
	}

	return e.views.Standings(ctx, lg.Season.ID, func() (standings.View, error) {
		e.mu.Lock()
		defer e.mu.Unlock()
		return standings.BuildView(lg.Season.LeagueSchedule, lg.Conferences, lg.nameOf), nil
	})
}

// Bracket returns leagueID's cached playoff bracket view. It fails with
// NotFoundError while no bracket is attached: before the postseason, and
// in a postseason where the user's team missed the playoffs until
// SimulateRestOfPlayoffs builds one.
func (e *Engine) Bracket(ctx context.Context, leagueID string) (playoffs.BracketView, error) {
	e.mu.Lock()
	lg, err := e.league(leagueID)
	e.mu.Unlock()
	if err != nil {
		return playoffs.BracketView{}, err
	}
	if lg.Season.Bracket == nil {
		return playoffs.BracketView{}, core.NewNotFoundError("bracket", leagueID)
	}

	return e.views.Bracket(ctx, lg.Season.ID, func() (playoffs.BracketView, error) {
		e.mu.Lock()
		defer e.mu.Unlock()
		return playoffs.BuildBracketView(lg.Season.Bracket, lg.Season.UserTeamID), nil
	})
}

// SaveLeague snapshots leagueID's full state into the save store under
// name.
func (e *Engine) SaveLeague(leagueID string, name core.SaveName) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	lg, err := e.league(leagueID)
	if err != nil {
		return err
	}

	teams := make([]core.Team, len(lg.TeamOrder))
	for i, id := range lg.TeamOrder {
		teams[i] = lg.Teams[id]
	}

	record := store.SaveRecord{
		SchemaVersion: store.CurrentSchemaVersion,
		Name:          name,
		UserTeamID:    lg.Season.UserTeamID,
		Teams:         teams,
		Season:        *lg.Season,
	}
	if err := e.store.Save(name, record); err != nil {
		return err
	}
	return e.views.InvalidateSeason(context.Background())
}

// LoadLeague restores a saved snapshot into a fresh in-memory League and
// registers it. Conference membership is not itself part of SaveRecord;
// it is recomputed from the saved team order via factory.AssignConferences,
// which is deterministic in team-slice order and so reproduces the
// original split exactly.
func (e *Engine) LoadLeague(name core.SaveName) (*League, error) {
	record, err := e.store.Load(name)
	if err != nil {
		return nil, err
	}

	teamsByID := make(map[core.TeamID]core.Team, len(record.Teams))
	teamIDs := make([]core.TeamID, len(record.Teams))
	for i, t := range record.Teams {
		teamsByID[t.ID] = t
		teamIDs[i] = t.ID
	}
	conferences := factory.AssignConferences(record.Teams)

	s := record.Season
	lg := &League{
		ID:          uuid.NewString(),
		Teams:       teamsByID,
		TeamOrder:   teamIDs,
		Conferences: conferences,
		Season:      &s,
	}

	e.mu.Lock()
	e.leagues[lg.ID] = lg
	e.mu.Unlock()
	return lg, nil
}

// ListSaves returns every save slot's metadata.
func (e *Engine) ListSaves() ([]store.SaveMeta, error) {
	return e.store.List()
}

// DeleteSave removes a save slot.
func (e *Engine) DeleteSave(name core.SaveName) error {
	return e.store.Delete(name)
}
