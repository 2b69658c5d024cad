package sim

import "time"

// Clock supplies the time a tick is evaluated at. ok is false when no
// reading is available; the Scheduler then skips the clock check and the
// Spawner for that tick.
type Clock interface {
	Now() (now time.Time, ok bool)
}

// WallClock reads the system clock.
type WallClock struct{}

// Now returns time.Now, which carries a monotonic reading.
func (WallClock) Now() (time.Time, bool) {
	return time.Now(), true
}

// StepClock is a simulated clock that only moves when told to. Hosts that
// want rounds measured in ticks rather than wall time advance it by the tick
// duration before each Advance.
type StepClock struct {
	now time.Time
}

// NewStepClock starts a simulated clock at start.
func NewStepClock(start time.Time) *StepClock {
	return &StepClock{now: start}
}

// Now returns the simulated time.
func (c *StepClock) Now() (time.Time, bool) {
	return c.now, true
}

// Advance moves the simulated time forward by d.
func (c *StepClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Elapsed returns how long the current wave has been running at now. Before
// the first wave it is 0. WaveStart may legitimately be the zero time when
// the clock starts there, so only Wave tells whether a wave exists.
func Elapsed(st *RoundState, now time.Time) time.Duration {
	if st.Wave == 0 {
		return 0
	}
	return now.Sub(st.WaveStart)
}

// CheckClock moves the round to Loss when the wave has outlived the round
// duration with targets still on the field. The comparison is strict: a
// wave that is exactly RoundDuration old is still alive. Returns true on the
// transition.
func CheckClock(st *RoundState, now time.Time, p Params) bool {
	if st.Status != StatusActive || st.Wave == 0 {
		return false
	}
	if Elapsed(st, now) > p.RoundDuration && st.TargetCount > 0 {
		st.Status = StatusLoss
		return true
	}
	return false
}

// SecondsLeft is the whole seconds remaining in the current wave at now,
// floored and never negative. Before the first wave it is the full duration.
func SecondsLeft(st *RoundState, now time.Time, p Params) int {
	left := p.RoundDuration - Elapsed(st, now)
	if left < 0 {
		return 0
	}
	return int(left / time.Second)
}
