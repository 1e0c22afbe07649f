package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopsleague.dev/league/internal/core"
)

func TestAffinityBounded(t *testing.T) {
	extreme := core.Attributes{Shooting: 100, PostShooting: 100, ThreePoint: 100, BallHandling: 100,
		Passing: 100, Rebounding: 100, Defense: 100, Speed: 100, Blocks: 100, Steals: 100}
	for _, pos := range core.Positions {
		score := Affinity(pos, extreme, 85)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestBestPositionTieBreaksByPreferenceOrder(t *testing.T) {
	flat := core.Attributes{}
	got := BestPosition(flat, 74)
	assert.Equal(t, core.PositionPG, got)
}

func TestBestPositionFavorsCenterProfile(t *testing.T) {
	bigMan := core.Attributes{PostShooting: 85, Rebounding: 90, Defense: 80, Blocks: 90}
	got := BestPosition(bigMan, 84)
	assert.Equal(t, core.PositionC, got)
}

func TestRegistryCounts(t *testing.T) {
	counts := map[core.Position]int{}
	for _, r := range Registry {
		counts[r.Position]++
	}
	require.Len(t, Registry, 16)
	assert.Equal(t, 4, counts[core.PositionPG])
	assert.Equal(t, 3, counts[core.PositionSG])
	assert.Equal(t, 3, counts[core.PositionSF])
	assert.Equal(t, 3, counts[core.PositionPF])
	assert.Equal(t, 3, counts[core.PositionC])
}

func TestByID(t *testing.T) {
	role, ok := ByID("stretch-five")
	require.True(t, ok)
	assert.Equal(t, core.PositionC, role.Position)
	assert.Greater(t, role.Modifiers.ThreePointAttempt(), 1.0)

	_, ok = ByID("nonexistent")
	assert.False(t, ok)
}
