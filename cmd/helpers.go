package cmd

import (
	"context"
	"fmt"
	"time"

	"hoopsleague.dev/league/internal/cache"
	"hoopsleague.dev/league/internal/config"
	"hoopsleague.dev/league/internal/httpapi"
	"hoopsleague.dev/league/internal/store"
)

// openEngine loads configuration and opens the configured save store, then
// wraps it in an Engine with no-op view caching — CLI invocations are
// single-shot processes, so there is nothing long-lived for a cache to
// save work across.
func openEngine(ctx context.Context, configPath string) (*httpapi.Engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return httpapi.NewEngine(st, cache.NewViewCache(nil)), nil
}

func formatTTL(ttl time.Duration) string {
	if ttl < 0 {
		return "No expiry"
	}
	if ttl < time.Minute {
		return fmt.Sprintf("%ds", int(ttl.Seconds()))
	}
	if ttl < time.Hour {
		return fmt.Sprintf("%dm", int(ttl.Minutes()))
	}
	return fmt.Sprintf("%.1fh", ttl.Hours())
}
