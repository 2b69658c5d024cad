package sim

import (
	"errors"
	"fmt"
)

// ErrInvariant is matched by every *InvariantViolation via errors.Is.
var ErrInvariant = errors.New("sim: invariant violation")

// InvariantViolation reports bookkeeping that no longer matches the target
// set. It is fatal to the Scheduler that produced it.
type InvariantViolation struct {
	Tick        uint64
	Rule        string
	TargetCount int
	LiveTargets int
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("sim: invariant violation at tick %d: %s (target count %d, live targets %d)",
		e.Tick, e.Rule, e.TargetCount, e.LiveTargets)
}

// Is makes errors.Is(err, ErrInvariant) succeed.
func (e *InvariantViolation) Is(target error) bool {
	return target == ErrInvariant
}

func violation(st *RoundState, rule string) *InvariantViolation {
	return &InvariantViolation{
		Tick:        st.Tick,
		Rule:        rule,
		TargetCount: st.TargetCount,
		LiveTargets: len(st.Targets),
	}
}
