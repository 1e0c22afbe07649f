package simulate

import "hoopsleague.dev/league/internal/core"

// EffectiveRotation returns team.Rotation if set, or a default rotation
// that plays only the five starters the full 48 minutes each (240 total),
// matching §4.4's "5 starters x 48 if none" fallback.
func EffectiveRotation(team core.Team) core.RotationConfig {
	if team.Rotation != nil {
		return *team.Rotation
	}

	byID := make(map[core.PlayerID]core.Player, len(team.Players))
	for _, p := range team.Players {
		byID[p.ID] = p
	}

	minutes := make(map[core.PlayerID]int, core.StarterCount)
	chart := make([]core.DepthChartEntry, 0, core.StarterCount)
	for _, id := range team.Starters {
		minutes[id] = core.MinutesPerGame
		slot := core.RotationSlot(byID[id].Position)
		chart = append(chart, core.DepthChartEntry{PlayerID: id, Slot: slot, Depth: 1})
	}

	return core.RotationConfig{
		RotationSize: core.StarterCount,
		Minutes:      minutes,
		DepthChart:   chart,
	}
}

// slotCandidates groups a rotation's depth chart entries by slot, sorted
// by ascending depth (depth 1 first).
func slotCandidates(rotation core.RotationConfig) map[core.RotationSlot][]core.DepthChartEntry {
	out := make(map[core.RotationSlot][]core.DepthChartEntry)
	for _, entry := range rotation.DepthChart {
		out[entry.Slot] = append(out[entry.Slot], entry)
	}
	for slot := range out {
		entries := out[slot]
		for i := 1; i < len(entries); i++ {
			for j := i; j > 0 && entries[j].Depth < entries[j-1].Depth; j-- {
				entries[j], entries[j-1] = entries[j-1], entries[j]
			}
		}
		out[slot] = entries
	}
	return out
}
