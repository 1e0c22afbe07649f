package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopsleague.dev/league/internal/standings"
)

func TestViewCacheComputesOnMissWithNoClient(t *testing.T) {
	vc := NewViewCache(nil)
	calls := 0

	view, err := vc.Standings(context.Background(), "season-1", func() (standings.View, error) {
		calls++
		return standings.View{East: standings.ConferenceTable{Conference: "East"}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, standings.ConferenceTable{Conference: "East"}, view.East)

	_, err = vc.Standings(context.Background(), "season-1", func() (standings.View, error) {
		calls++
		return standings.View{}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "no-op cache should recompute every call")
}

func TestHashParamsStableAcrossKeyOrder(t *testing.T) {
	a := HashParams(map[string]string{"season": "season-1", "conference": "East"})
	b := HashParams(map[string]string{"conference": "East", "season": "season-1"})
	assert.Equal(t, a, b)
}
