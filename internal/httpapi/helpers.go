package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"

	"hoopsleague.dev/league/internal/core"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	data, err := json.Marshal(v)
	if err != nil {
		log.Errorf("writeJSON marshal error: %v", err)
		return
	}

	if _, err := w.Write(data); err != nil {
		log.Errorf("writeJSON write error: %v", err)
	}
}

func writeInternalServerError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}

// writeError maps a domain error to its HTTP status code. Unlike the
// teacher's version, the default branch calls writeInternalServerError
// rather than itself.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case core.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case core.IsInvalidTeam(err), core.IsInvalidRotation(err), core.IsInvalidSeeding(err), core.IsScheduleInfeasible(err):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case core.IsNothingToSimulate(err):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	case core.IsSchemaMismatch(err):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		writeInternalServerError(w, err)
	}
}

func decodeJSON(r *http.Request, dest any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dest)
}
