package cache

import (
	"context"

	"hoopsleague.dev/league/internal/playoffs"
	"hoopsleague.dev/league/internal/standings"
)

// ViewCache wraps the generic list-cache helpers with the two derived,
// cacheable read models the HTTP surface and CLI render most often:
// league standings and the playoff bracket. Both are pure projections
// recomputed cheaply from a Season, but caching them avoids recomputing a
// full conference sort/seed pass on every request while a season is in
// progress.
type ViewCache struct {
	standings *ListCacheHelper
	bracket   *ListCacheHelper
}

// NewViewCache builds a ViewCache over client, or a no-op cache if client
// is nil (e.g., caching disabled / no Redis configured).
func NewViewCache(client *Client) *ViewCache {
	return &ViewCache{
		standings: NewListCacheHelper(client, "standings"),
		bracket:   NewListCacheHelper(client, "bracket"),
	}
}

// Standings returns the cached standings.View for seasonID, computing and
// caching it via compute on a miss.
func (v *ViewCache) Standings(ctx context.Context, seasonID string, compute func() (standings.View, error)) (standings.View, error) {
	params := map[string]string{"season": seasonID}

	var view standings.View
	if v.standings.Get(ctx, params, &view) {
		return view, nil
	}

	view, err := compute()
	if err != nil {
		return standings.View{}, err
	}
	_ = v.standings.Set(ctx, params, view)
	return view, nil
}

// Bracket returns the cached playoffs.BracketView for seasonID, computing
// and caching it via compute on a miss.
func (v *ViewCache) Bracket(ctx context.Context, seasonID string, compute func() (playoffs.BracketView, error)) (playoffs.BracketView, error) {
	params := map[string]string{"season": seasonID}

	var view playoffs.BracketView
	if v.bracket.Get(ctx, params, &view) {
		return view, nil
	}

	view, err := compute()
	if err != nil {
		return playoffs.BracketView{}, err
	}
	_ = v.bracket.Set(ctx, params, view)
	return view, nil
}

// InvalidateSeason drops every cached standings/bracket view, for all
// seasons. Engine.SaveLeague calls it after each save; recording a game
// result does not call it, so a cached view can lag a simulated game
// until its list TTL expires.
func (v *ViewCache) InvalidateSeason(ctx context.Context) error {
	if _, err := v.standings.InvalidateAll(ctx); err != nil {
		return err
	}
	if _, err := v.bracket.InvalidateAll(ctx); err != nil {
		return err
	}
	return nil
}
