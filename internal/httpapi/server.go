// Package httpapi provides HTTP handlers for the league simulator.
//
// @title Hoops League API
// @description.markdown
// @version 1.0
// @BasePath /v1
//
// @contact.name API Support
//
// @license.name MPL-2.0
// @license.url https://opensource.org/license/mpl-2-0
//
// @tag.name leagues
// @tag.description League lifecycle, teams, simulation, and cached views
//
// @tag.name saves
// @tag.description Save-store CRUD
package httpapi

import (
	_ "expvar"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	"hoopsleague.dev/league/internal/cache"
	"hoopsleague.dev/league/internal/config"
	"hoopsleague.dev/league/internal/echo"
	"hoopsleague.dev/league/internal/middleware"
	"hoopsleague.dev/league/internal/store"
)

// Server wraps the fully-wired mux plus its middleware chain.
type Server struct {
	handler http.Handler
}

// NewServer builds the Engine from st and a ViewCache over redisClient
// (nil disables caching), registers every route group, and wraps the mux
// in the teacher's middleware stack: request logging, per-IP rate
// limiting, expvar metrics, and trace-id propagation, innermost first.
func NewServer(cfg *config.Config, st store.Store, redisClient *redis.Client) *Server {
	echo.Info("Initializing engine...")

	var cacheClient *cache.Client
	if cfg.Cache.Enabled && redisClient != nil {
		cacheClient = cache.NewClient(redisClient, cache.Config{
			App:     "hoopsleague",
			Env:     "dev",
			Version: cfg.Cache.Version,
			Enabled: cfg.Cache.Enabled,
			TTLs: cache.TTLConfig{
				Entity: time.Duration(cfg.Cache.TTLs.Entity) * time.Second,
				List:   time.Duration(cfg.Cache.TTLs.List) * time.Second,
			},
		})
	}
	views := cache.NewViewCache(cacheClient)
	engine := NewEngine(st, views)

	echo.Info("Registering routes...")
	mux := newMux(
		NewLeagueRoutes(engine),
		NewSaveRoutes(engine),
	)

	logger := log.Default()
	rateLimiter := middleware.NewRateLimiter(redisClient, cfg.Server.DebugMode, 120)

	handler := middleware.Logger(logger)(mux)
	handler = rateLimiter.Middleware(handler)
	handler = middleware.MetricsMiddleware(nil)(handler)
	handler = middleware.TraceMiddleware(handler)

	return &Server{handler: handler}
}

// newMux wires every registrar into one mux plus the health check,
// swagger docs, and expvar endpoints.
func newMux(registrars ...Registrar) *http.ServeMux {
	mux := http.NewServeMux()
	for _, r := range registrars {
		r.RegisterRoutes(mux)
	}

	// @Summary Health check
	// @Tags leagues
	// @Produce json
	// @Success 200 {object} HealthResponse
	// @Router /health [get]
	mux.HandleFunc("GET /v1/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	})

	mux.HandleFunc("/docs/", httpSwagger.WrapHandler)
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/", http.StatusMovedPermanently)
	})
	mux.Handle("GET /debug/vars", http.DefaultServeMux)

	return mux
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
