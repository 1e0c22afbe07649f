package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"hoopsleague.dev/league/internal/cache"
	"hoopsleague.dev/league/internal/store"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	engine := NewEngine(fs, cache.NewViewCache(nil))
	return newMux(NewLeagueRoutes(engine), NewSaveRoutes(engine))
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestMux(t)
	w := doJSON(t, mux, http.MethodGet, "/v1/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Equal(t, "ok", resp.Status)
}

func TestLeagueLifecycleOverHTTP(t *testing.T) {
	mux := newTestMux(t)

	w := doJSON(t, mux, http.MethodPost, "/v1/leagues", InitLeagueRequest{Seed: 11})
	require.Equal(t, http.StatusCreated, w.Code)

	var created LeagueStateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	require.Len(t, created.TeamIDs, 30)

	w = doJSON(t, mux, http.MethodGet, "/v1/leagues/"+created.ID+"/teams", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, mux, http.MethodPost, "/v1/leagues/"+created.ID+"/simulate/next", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, mux, http.MethodGet, "/v1/leagues/"+created.ID+"/standings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, mux, http.MethodGet, "/v1/leagues/"+created.ID+"/bracket", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeagueNotFoundReturns404(t *testing.T) {
	mux := newTestMux(t)
	w := doJSON(t, mux, http.MethodGet, "/v1/leagues/nope/teams", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaveStoreEndpointsOverHTTP(t *testing.T) {
	mux := newTestMux(t)

	w := doJSON(t, mux, http.MethodPost, "/v1/leagues", InitLeagueRequest{Seed: 21})
	require.Equal(t, http.StatusCreated, w.Code)
	var created LeagueStateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))

	w = doJSON(t, mux, http.MethodPut, "/v1/saves/my-save", SaveRequestBody{LeagueID: created.ID})
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = doJSON(t, mux, http.MethodGet, "/v1/saves", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, mux, http.MethodGet, "/v1/saves/my-save", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, mux, http.MethodDelete, "/v1/saves/my-save", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, mux, http.MethodGet, "/v1/saves/my-save", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
