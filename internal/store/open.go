package store

import (
	"context"
	"fmt"

	"hoopsleague.dev/league/internal/config"
)

// Open constructs the Store selected by cfg.Backend ("file" or
// "postgres"). Unknown backends are treated as a configuration error, not
// a storage failure, since no I/O was attempted.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Backend {
	case "", "file":
		return NewFileStore(cfg.Dir)
	case "postgres":
		return ConnectPostgres(ctx, cfg.URL)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
