package httpapi

import (
	"encoding/json"
	"net/http"

	"hoopsleague.dev/league/internal/core"
)

// Registrar is anything that can add its endpoints to a mux.
type Registrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

// LeagueRoutes exposes the league lifecycle, team, simulation, and
// cached-view endpoints over Engine.
type LeagueRoutes struct {
	engine *Engine
}

// NewLeagueRoutes builds the league route group.
func NewLeagueRoutes(engine *Engine) *LeagueRoutes {
	return &LeagueRoutes{engine: engine}
}

func (lr *LeagueRoutes) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/leagues", lr.handleInitializeLeague)
	mux.HandleFunc("GET /v1/leagues/{id}/teams", lr.handleListTeams)
	mux.HandleFunc("GET /v1/leagues/{id}/teams/{tid}", lr.handleGetTeam)
	mux.HandleFunc("PUT /v1/leagues/{id}/teams/{tid}", lr.handleUpdateTeam)
	mux.HandleFunc("POST /v1/leagues/{id}/simulate/next", lr.handleSimulateNext)
	mux.HandleFunc("POST /v1/leagues/{id}/simulate/season", lr.handleSimulateSeason)
	mux.HandleFunc("POST /v1/leagues/{id}/simulate/playoffs", lr.handleSimulatePlayoffs)
	mux.HandleFunc("GET /v1/leagues/{id}/standings", lr.handleStandings)
	mux.HandleFunc("GET /v1/leagues/{id}/bracket", lr.handleBracket)
}

// handleInitializeLeague godoc
// @Summary Initialize a league
// @Description Generates 30 teams and a regular-season schedule from an optional seed
// @Tags leagues
// @Accept json
// @Produce json
// @Param body body InitLeagueRequest false "Seed, year, and user team id"
// @Success 201 {object} LeagueStateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /leagues [post]
func (lr *LeagueRoutes) handleInitializeLeague(w http.ResponseWriter, r *http.Request) {
	var req InitLeagueRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeBadRequest(w, "invalid request body: "+err.Error())
			return
		}
	}

	lg, err := lr.engine.InitializeLeague(req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, LeagueStateResponse{
		ID:         lg.ID,
		Season:     *lg.Season,
		UserTeamID: lg.Season.UserTeamID,
		TeamIDs:    lg.TeamOrder,
	})
}

// handleListTeams godoc
// @Summary List a league's teams
// @Tags leagues
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {array} core.Team
// @Failure 404 {object} ErrorResponse
// @Router /leagues/{id}/teams [get]
func (lr *LeagueRoutes) handleListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := lr.engine.ListTeams(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

// handleGetTeam godoc
// @Summary Get one team
// @Tags leagues
// @Produce json
// @Param id path string true "League ID"
// @Param tid path string true "Team ID"
// @Success 200 {object} core.Team
// @Failure 404 {object} ErrorResponse
// @Router /leagues/{id}/teams/{tid} [get]
func (lr *LeagueRoutes) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := lr.engine.GetTeam(r.PathValue("id"), core.TeamID(r.PathValue("tid")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, team)
}

// handleUpdateTeam godoc
// @Summary Replace a team
// @Description All-or-nothing replacement; rejected with InvalidTeam/InvalidRotation if the new record fails roster/rotation invariants
// @Tags leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Param tid path string true "Team ID"
// @Param body body core.Team true "Replacement team"
// @Success 200 {object} core.Team
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /leagues/{id}/teams/{tid} [put]
func (lr *LeagueRoutes) handleUpdateTeam(w http.ResponseWriter, r *http.Request) {
	var team core.Team
	if err := json.NewDecoder(r.Body).Decode(&team); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	team.ID = core.TeamID(r.PathValue("tid"))

	if err := lr.engine.UpdateTeam(r.PathValue("id"), team); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, team)
}

// handleSimulateNext godoc
// @Summary Simulate the user's next game
// @Tags leagues
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {object} core.Game
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /leagues/{id}/simulate/next [post]
func (lr *LeagueRoutes) handleSimulateNext(w http.ResponseWriter, r *http.Request) {
	game, err := lr.engine.SimulateNextGame(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// handleSimulateSeason godoc
// @Summary Simulate the rest of the regular season
// @Tags leagues
// @Produce json
// @Param id path string true "League ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /leagues/{id}/simulate/season [post]
func (lr *LeagueRoutes) handleSimulateSeason(w http.ResponseWriter, r *http.Request) {
	if err := lr.engine.SimulateRemainingRegularSeason(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type championResponse struct {
	Champion           core.TeamID `json:"champion"`
	UserMissedPlayoffs bool        `json:"userMissedPlayoffs"`
	UserEliminated     bool        `json:"userEliminated"`
}

// handleSimulatePlayoffs godoc
// @Summary Simulate the rest of the playoffs
// @Tags leagues
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {object} championResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /leagues/{id}/simulate/playoffs [post]
func (lr *LeagueRoutes) handleSimulatePlayoffs(w http.ResponseWriter, r *http.Request) {
	result, err := lr.engine.SimulateRestOfPlayoffs(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, championResponse{
		Champion:           result.Champion,
		UserMissedPlayoffs: result.UserMissedPlayoffs,
		UserEliminated:     result.UserEliminated,
	})
}

// handleStandings godoc
// @Summary Conference standings
// @Tags leagues
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {object} standings.View
// @Failure 404 {object} ErrorResponse
// @Router /leagues/{id}/standings [get]
func (lr *LeagueRoutes) handleStandings(w http.ResponseWriter, r *http.Request) {
	view, err := lr.engine.Standings(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// handleBracket godoc
// @Summary Playoff bracket view
// @Tags leagues
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {object} playoffs.BracketView
// @Failure 404 {object} ErrorResponse
// @Router /leagues/{id}/bracket [get]
func (lr *LeagueRoutes) handleBracket(w http.ResponseWriter, r *http.Request) {
	view, err := lr.engine.Bracket(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// SaveRoutes exposes the save-store CRUD endpoints over Engine.
type SaveRoutes struct {
	engine *Engine
}

// NewSaveRoutes builds the save route group.
func NewSaveRoutes(engine *Engine) *SaveRoutes {
	return &SaveRoutes{engine: engine}
}

func (sr *SaveRoutes) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/saves", sr.handleList)
	mux.HandleFunc("PUT /v1/saves/{name}", sr.handleSave)
	mux.HandleFunc("GET /v1/saves/{name}", sr.handleLoad)
	mux.HandleFunc("DELETE /v1/saves/{name}", sr.handleDelete)
}

// handleList godoc
// @Summary List saves
// @Tags saves
// @Produce json
// @Success 200 {array} store.SaveMeta
// @Failure 500 {object} ErrorResponse
// @Router /saves [get]
func (sr *SaveRoutes) handleList(w http.ResponseWriter, r *http.Request) {
	saves, err := sr.engine.ListSaves()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saves)
}

// handleSave godoc
// @Summary Snapshot a league into a save slot
// @Tags saves
// @Accept json
// @Produce json
// @Param name path string true "Save name"
// @Param body body SaveRequestBody true "Which in-memory league to snapshot"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /saves/{name} [put]
func (sr *SaveRoutes) handleSave(w http.ResponseWriter, r *http.Request) {
	var body SaveRequestBody
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	if err := sr.engine.SaveLeague(body.LeagueID, core.SaveName(r.PathValue("name"))); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleLoad godoc
// @Summary Load a save slot into a fresh in-memory league
// @Tags saves
// @Produce json
// @Param name path string true "Save name"
// @Success 200 {object} LeagueStateResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /saves/{name} [get]
func (sr *SaveRoutes) handleLoad(w http.ResponseWriter, r *http.Request) {
	lg, err := sr.engine.LoadLeague(core.SaveName(r.PathValue("name")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LeagueStateResponse{
		ID:         lg.ID,
		Season:     *lg.Season,
		UserTeamID: lg.Season.UserTeamID,
		TeamIDs:    lg.TeamOrder,
	})
}

// handleDelete godoc
// @Summary Delete a save slot
// @Tags saves
// @Param name path string true "Save name"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /saves/{name} [delete]
func (sr *SaveRoutes) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := sr.engine.DeleteSave(core.SaveName(r.PathValue("name"))); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
