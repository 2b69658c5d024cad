package sim

import (
	"fmt"
	"time"
)

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithSeed seeds the spawner RNG. Equal seeds and inputs give equal rounds.
func WithSeed(seed int64) Option {
	return func(s *Scheduler) {
		s.seed = seed
	}
}

// WithClock replaces the default WallClock.
func WithClock(c Clock) Option {
	return func(s *Scheduler) {
		s.clock = c
	}
}

// WithCollisionHandler registers fn to receive every CollisionEvent.
func WithCollisionHandler(fn func(CollisionEvent)) Option {
	return func(s *Scheduler) {
		s.onCollect = fn
	}
}

// TickResult describes what one Advance call did.
type TickResult struct {
	Status    Status
	Collected int  // targets collected this tick
	Spawned   bool // a new wave was spawned this tick
}

// Scheduler owns a RoundState and advances it one fixed tick at a time.
// It is not safe for concurrent use; hosts call Advance and Snapshot from
// a single goroutine.
type Scheduler struct {
	params    Params
	state     *RoundState
	clock     Clock
	spawner   *Spawner
	onCollect func(CollisionEvent)
	seed      int64
	fault     error
}

// NewScheduler validates p and creates a round in the Active state with no
// targets. The first Advance spawns wave one.
func NewScheduler(p Params, opts ...Option) (*Scheduler, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s := &Scheduler{
		params: p,
		state:  NewRoundState(p),
		clock:  WallClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.spawner = NewSpawner(s.seed)
	return s, nil
}

// Params returns the tuning the round was created with.
func (s *Scheduler) Params() Params {
	return s.params
}

// Err returns the fault that stopped the scheduler, if any.
func (s *Scheduler) Err() error {
	return s.fault
}

// Advance runs one tick: Movement, then the Collision/Scoring step, then the
// round clock check, then the Spawner. A nil input skips Movement. A clock
// without a reading skips the clock check and the Spawner.
//
// Once the round is lost, Advance returns StatusLoss and changes nothing.
// After an invariant violation every call returns that same error.
func (s *Scheduler) Advance(in *Input) (TickResult, error) {
	st := s.state
	if s.fault != nil {
		return TickResult{Status: st.Status}, s.fault
	}
	if st.Status == StatusLoss {
		return TickResult{Status: StatusLoss}, nil
	}

	st.Tick++

	if in != nil {
		Move(st, *in, s.params)
	}

	if err := CheckCount(st); err != nil {
		return s.fail(err)
	}
	collected, err := Collect(st, s.onCollect)
	if err != nil {
		return s.fail(err)
	}
	if err := CheckCount(st); err != nil {
		return s.fail(err)
	}

	res := TickResult{Status: StatusActive, Collected: collected}

	now, ok := s.clock.Now()
	if !ok {
		return res, nil
	}
	st.Now = now

	// A loss detected here must not be masked by the respawn below.
	if CheckClock(st, now, s.params) {
		res.Status = StatusLoss
		return res, nil
	}

	res.Spawned = s.spawner.Spawn(st, now, s.params)
	return res, nil
}

func (s *Scheduler) fail(err error) (TickResult, error) {
	s.fault = fmt.Errorf("advance: %w", err)
	return TickResult{Status: s.state.Status}, s.fault
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Tick        uint64
	Wave        int
	Score       int
	TargetCount int
	Status      Status
	Faulted     bool
	Player      Player
	Targets     []Target
	SecondsLeft int
	Elapsed     time.Duration
}

// Snapshot derives the renderer view from the last tick's clock reading.
func (s *Scheduler) Snapshot() Snapshot {
	st := s.state
	targets := make([]Target, len(st.Targets))
	copy(targets, st.Targets)

	return Snapshot{
		Tick:        st.Tick,
		Wave:        st.Wave,
		Score:       st.Score,
		TargetCount: st.TargetCount,
		Status:      st.Status,
		Faulted:     s.fault != nil,
		Player:      st.Player,
		Targets:     targets,
		SecondsLeft: SecondsLeft(st, st.Now, s.params),
		Elapsed:     Elapsed(st, st.Now),
	}
}
