package position

import "hoopsleague.dev/league/internal/core"

// EventModifiers are probability multipliers a role archetype contributes to
// possession resolution. A zero value field is treated as 1.0 (no effect)
// by the per-event accessor methods below; only archetypes that actually
// shift an event carry a non-1.0 entry.
type EventModifiers struct {
	TurnoverMult          float64
	AssistMult            float64
	ShotAttemptMult       float64
	ThreePointAttemptMult float64
	FoulDrawnMult         float64
	ReboundMult           float64
	BlockMult             float64
	StealMult             float64
}

func m(v float64) float64 {
	if v == 0 {
		return 1.0
	}
	return v
}

// Turnover, Assist, ShotAttempt, ThreePointAttempt, FoulDrawn, Rebound,
// Block and Steal return the effective multiplier for each event,
// defaulting unset fields to 1.0.
func (e EventModifiers) Turnover() float64          { return m(e.TurnoverMult) }
func (e EventModifiers) Assist() float64            { return m(e.AssistMult) }
func (e EventModifiers) ShotAttempt() float64       { return m(e.ShotAttemptMult) }
func (e EventModifiers) ThreePointAttempt() float64 { return m(e.ThreePointAttemptMult) }
func (e EventModifiers) FoulDrawn() float64         { return m(e.FoulDrawnMult) }
func (e EventModifiers) Rebound() float64           { return m(e.ReboundMult) }
func (e EventModifiers) Block() float64             { return m(e.BlockMult) }
func (e EventModifiers) Steal() float64              { return m(e.StealMult) }

// RoleArchetype is a named template of attribute weights (for fit scoring)
// and event modifiers (for possession resolution). Assignment onto a
// Player is persisted by ID only; all behavior is looked up through the
// registry, never subclassed.
type RoleArchetype struct {
	ID        string
	Position  core.Position
	Modifiers EventModifiers
}

// Registry is the fixed set of 16 role archetypes: 4 PG, 3 SG, 3 SF, 3 PF,
// 3 C.
var Registry = []RoleArchetype{
	{ID: "floor-general", Position: core.PositionPG, Modifiers: EventModifiers{AssistMult: 1.25, ShotAttemptMult: 0.90, TurnoverMult: 0.90}},
	{ID: "combo-guard", Position: core.PositionPG, Modifiers: EventModifiers{ShotAttemptMult: 1.15, ThreePointAttemptMult: 1.10}},
	{ID: "sixth-man", Position: core.PositionPG, Modifiers: EventModifiers{ShotAttemptMult: 1.20, AssistMult: 0.95}},
	{ID: "glue-guy", Position: core.PositionPG, Modifiers: EventModifiers{AssistMult: 1.10, StealMult: 1.10, TurnoverMult: 0.95}},

	{ID: "three-and-d-wing", Position: core.PositionSG, Modifiers: EventModifiers{ThreePointAttemptMult: 1.20, FoulDrawnMult: 0.95}},
	{ID: "microwave-scorer", Position: core.PositionSG, Modifiers: EventModifiers{ShotAttemptMult: 1.30, AssistMult: 0.85}},
	{ID: "lockdown-defender", Position: core.PositionSG, Modifiers: EventModifiers{StealMult: 1.25, FoulDrawnMult: 0.90}},

	{ID: "two-way-wing", Position: core.PositionSF, Modifiers: EventModifiers{StealMult: 1.10, BlockMult: 1.10}},
	{ID: "slasher", Position: core.PositionSF, Modifiers: EventModifiers{ShotAttemptMult: 1.15, ThreePointAttemptMult: 0.80, FoulDrawnMult: 1.15}},
	{ID: "defensive-stopper", Position: core.PositionSF, Modifiers: EventModifiers{StealMult: 1.20, BlockMult: 1.15, ShotAttemptMult: 0.90}},

	{ID: "stretch-four", Position: core.PositionPF, Modifiers: EventModifiers{ThreePointAttemptMult: 1.35, ReboundMult: 0.90}},
	{ID: "pick-and-pop-big", Position: core.PositionPF, Modifiers: EventModifiers{ThreePointAttemptMult: 1.20, AssistMult: 1.10}},
	{ID: "post-hub", Position: core.PositionPF, Modifiers: EventModifiers{AssistMult: 1.15, ShotAttemptMult: 0.95}},

	{ID: "stretch-five", Position: core.PositionC, Modifiers: EventModifiers{ThreePointAttemptMult: 1.50, ReboundMult: 0.90, BlockMult: 0.90}},
	{ID: "rim-runner", Position: core.PositionC, Modifiers: EventModifiers{ShotAttemptMult: 1.15, ReboundMult: 1.10}},
	{ID: "paint-anchor", Position: core.PositionC, Modifiers: EventModifiers{BlockMult: 1.30, ReboundMult: 1.15, ShotAttemptMult: 0.85}},
}

// ByID looks up a registered role archetype; ok is false for an unknown or
// empty id.
func ByID(id string) (RoleArchetype, bool) {
	for _, r := range Registry {
		if r.ID == id {
			return r, true
		}
	}
	return RoleArchetype{}, false
}

// FitScore scores attrs/heightIn against role's position profile; it is
// identical to Affinity since a role's attribute fit always matches its
// base position's ideal profile.
func FitScore(role RoleArchetype, attrs core.Attributes, heightIn int) float64 {
	return Affinity(role.Position, attrs, heightIn)
}

// ForPosition returns every registered archetype for pos.
func ForPosition(pos core.Position) []RoleArchetype {
	var out []RoleArchetype
	for _, r := range Registry {
		if r.Position == pos {
			out = append(out, r)
		}
	}
	return out
}
