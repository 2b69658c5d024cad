package sim

import "github.com/vovakirdan/tui-cube/internal/core"

// CollisionEvent is emitted once per collected target.
type CollisionEvent struct {
	Tick     uint64
	TargetID int
	Pos      core.Vec2
	Score    int // score after this collection
}

// CheckCount verifies that TargetCount matches the live target set.
func CheckCount(st *RoundState) error {
	if st.TargetCount != len(st.Targets) {
		return violation(st, "target count does not match live targets")
	}
	return nil
}

// Collect removes every target the player overlaps this tick, adding one to
// Score and taking one from TargetCount for each. Only targets are scanned;
// the player is never tested against itself. emit may be nil.
//
// It returns the number of targets collected. On an *InvariantViolation the
// state is left as it was before the call.
func Collect(st *RoundState, emit func(CollisionEvent)) (int, error) {
	hits := 0
	for _, t := range st.Targets {
		if core.Overlaps(st.Player.Pos, st.Player.Half, t.Pos, t.Half) {
			hits++
		}
	}
	if hits == 0 {
		return 0, nil
	}
	if st.TargetCount-hits < 0 {
		return 0, violation(st, "target count would go negative")
	}

	live := st.Targets[:0]
	for _, t := range st.Targets {
		if !core.Overlaps(st.Player.Pos, st.Player.Half, t.Pos, t.Half) {
			live = append(live, t)
			continue
		}
		st.Score++
		st.TargetCount--
		if emit != nil {
			emit(CollisionEvent{Tick: st.Tick, TargetID: t.ID, Pos: t.Pos, Score: st.Score})
		}
	}
	// Drop references held past the new length.
	for i := len(live); i < len(st.Targets); i++ {
		st.Targets[i] = Target{}
	}
	st.Targets = live

	return hits, nil
}
