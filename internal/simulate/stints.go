package simulate

import "hoopsleague.dev/league/internal/core"

// NumStints is the number of equal possession-share stints a game is
// partitioned into for lineup-cycling purposes.
const NumStints = 8

// teamLineupState tracks one team's rotation bookkeeping across a game:
// allocated minutes per player, minutes accrued so far, and the current
// on-court five keyed by slot.
type teamLineupState struct {
	rotation   core.RotationConfig
	candidates map[core.RotationSlot][]core.DepthChartEntry
	allocated  map[core.PlayerID]float64
	accrued    map[core.PlayerID]float64
	onCourt    map[core.RotationSlot]core.PlayerID
}

func newTeamLineupState(team core.Team) *teamLineupState {
	rotation := EffectiveRotation(team)
	allocated := make(map[core.PlayerID]float64, len(rotation.Minutes))
	for id, m := range rotation.Minutes {
		allocated[id] = float64(m)
	}
	return &teamLineupState{
		rotation:   rotation,
		candidates: slotCandidates(rotation),
		allocated:  allocated,
		accrued:    make(map[core.PlayerID]float64),
		onCourt:    make(map[core.RotationSlot]core.PlayerID, len(core.RotationSlots)),
	}
}

// advanceStint recomputes the on-court five. At stint 0 the depth-1 player
// fills every slot (starters start); afterward each slot is filled by the
// rotation candidate for that slot whose accrued minutes sit furthest
// below their allocation.
func (s *teamLineupState) advanceStint(stintIndex int) {
	for _, slot := range core.RotationSlots {
		candidates := s.candidates[slot]
		if len(candidates) == 0 {
			continue
		}
		if stintIndex == 0 {
			s.onCourt[slot] = candidates[0].PlayerID
			continue
		}
		s.onCourt[slot] = s.furthestBehind(candidates)
	}
}

func (s *teamLineupState) furthestBehind(candidates []core.DepthChartEntry) core.PlayerID {
	best := candidates[0].PlayerID
	bestGap := s.allocated[best] - s.accrued[best]
	for _, c := range candidates[1:] {
		gap := s.allocated[c.PlayerID] - s.accrued[c.PlayerID]
		if gap > bestGap {
			best, bestGap = c.PlayerID, gap
		}
	}
	return best
}

// onCourtIDs returns the five on-court player ids in core.RotationSlots
// order.
func (s *teamLineupState) onCourtIDs() [5]core.PlayerID {
	var ids [5]core.PlayerID
	for i, slot := range core.RotationSlots {
		ids[i] = s.onCourt[slot]
	}
	return ids
}

// accrueMinutes adds minutesPerPossession to every on-court player's
// accrued total, modeling minutes distributed proportionally to
// possessions played while on the floor.
func (s *teamLineupState) accrueMinutes(minutesPerPossession float64) {
	for _, id := range s.onCourt {
		s.accrued[id] += minutesPerPossession
	}
}
