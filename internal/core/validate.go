package core

// ValidateTeam enforces the Team invariants: exactly RosterSize players
// with unique ids, exactly StarterCount starters, and every starter id
// drawn from the roster. update_team callers run this before accepting a
// replacement team record (all-or-nothing replacement, never partial).
func ValidateTeam(t Team) error {
	if len(t.Players) != RosterSize {
		return NewInvalidTeamError(t.ID, "roster must have exactly 15 players")
	}
	seen := make(map[PlayerID]bool, len(t.Players))
	for _, p := range t.Players {
		if seen[p.ID] {
			return NewInvalidTeamError(t.ID, "duplicate player id in roster")
		}
		seen[p.ID] = true
	}
	if len(t.Starters) != StarterCount {
		return NewInvalidTeamError(t.ID, "must have exactly 5 starters")
	}
	for _, s := range t.Starters {
		if !seen[s] {
			return NewInvalidTeamError(t.ID, "starter must be a roster player")
		}
	}
	if t.Rotation != nil {
		if err := ValidateRotation(t, *t.Rotation); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRotation enforces RotationConfig's invariants against the
// owning team t: rotationSize in [5,12]; minutes sum to TotalTeamMinutes;
// every rostered active player has positive minutes; every slot has
// exactly one depth-1 entry and no duplicate (slot, depth) pair; and the
// depth-1 entries match the team's starter set exactly.
func ValidateRotation(t Team, r RotationConfig) error {
	if r.RotationSize < 5 || r.RotationSize > 12 {
		return NewInvalidRotationError(t.ID, "rotationSize must be in [5,12]")
	}

	rostered := make(map[PlayerID]bool, len(t.Players))
	for _, p := range t.Players {
		rostered[p.ID] = true
	}

	totalMinutes := 0
	for pid, mins := range r.Minutes {
		if !rostered[pid] {
			return NewInvalidRotationError(t.ID, "minutes assigned to a non-roster player")
		}
		if mins <= 0 {
			return NewInvalidRotationError(t.ID, "active player minutes must be positive")
		}
		totalMinutes += mins
	}
	if totalMinutes != TotalTeamMinutes {
		return NewInvalidRotationError(t.ID, "minutes must sum to 240")
	}

	type slotDepth struct {
		slot  RotationSlot
		depth int
	}
	seenSlotDepth := map[slotDepth]bool{}
	depthOne := map[RotationSlot]PlayerID{}
	for _, e := range r.DepthChart {
		sd := slotDepth{e.Slot, e.Depth}
		if seenSlotDepth[sd] {
			return NewInvalidRotationError(t.ID, "duplicate (slot, depth) entry in depth chart")
		}
		seenSlotDepth[sd] = true
		if e.Depth == 1 {
			depthOne[e.Slot] = e.PlayerID
		}
	}

	for _, slot := range RotationSlots {
		if _, ok := depthOne[slot]; !ok {
			return NewInvalidRotationError(t.ID, "every slot must have a depth-1 entry")
		}
	}

	starterSet := make(map[PlayerID]bool, len(t.Starters))
	for _, s := range t.Starters {
		starterSet[s] = true
	}
	if len(depthOne) != len(starterSet) {
		return NewInvalidRotationError(t.ID, "depth-1 entries must equal the starter set")
	}
	for _, pid := range depthOne {
		if !starterSet[pid] {
			return NewInvalidRotationError(t.ID, "depth-1 entries must equal the starter set")
		}
	}

	return nil
}
