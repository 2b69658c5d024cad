package sim

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-cube/internal/core"
)

var half = core.V(30, 30)

const eps = 1e-6

func TestInputDirection(t *testing.T) {
	tests := []struct {
		name     string
		in       Input
		expected core.Vec2
	}{
		{"none", Input{}, core.V(0, 0)},
		{"up", Input{Up: true}, core.V(0, 1)},
		{"down", Input{Down: true}, core.V(0, -1)},
		{"left", Input{Left: true}, core.V(-1, 0)},
		{"right", Input{Right: true}, core.V(1, 0)},
		{"diagonal", Input{Up: true, Right: true}, core.V(1, 1)},
		{"up and down cancel", Input{Up: true, Down: true}, core.V(0, 0)},
		{"left and right cancel", Input{Left: true, Right: true}, core.V(0, 0)},
		{"all four cancel", Input{Up: true, Down: true, Left: true, Right: true}, core.V(0, 0)},
		{"cancel one axis only", Input{Up: true, Down: true, Left: true}, core.V(-1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Direction(); got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestMoveOneTick(t *testing.T) {
	p := DefaultParams()
	st := NewRoundState(p)

	Move(st, Input{Right: true, Down: true}, p)

	// 240 units/s over 1/60 s is exactly 4 units per axis.
	if st.Player.Pos.X != 4 || st.Player.Pos.Y != -54 {
		t.Errorf("Player at %v after one tick, expected (4, -54)", st.Player.Pos)
	}
}

func TestTickRateAndStepLength(t *testing.T) {
	tests := []struct {
		tick time.Duration
		rate float64
	}{
		{time.Second / 60, 60},
		{time.Second / 144, 144},
		{time.Second / 7, 7},
		{25 * time.Millisecond, 40},
		{300 * time.Millisecond, 10.0 / 3},
		{0, 0},
	}
	for _, tc := range tests {
		p := DefaultParams()
		p.TickDuration = tc.tick
		if got := p.TickRate(); math.Abs(got-tc.rate) > eps {
			t.Errorf("TickRate() for %v = %v, expected %v", tc.tick, got, tc.rate)
		}
	}

	p := DefaultParams()
	if got := p.StepLength(); got != 4 {
		t.Errorf("StepLength() = %v, expected exactly 4", got)
	}

	st := NewRoundState(p)
	for i := 0; i < 600; i++ {
		Move(st, Input{Right: true}, p)
	}
	if st.Player.Pos.X != 2400 {
		t.Errorf("600 ticks at 240 u/s should cover exactly 2400 units, got %v", st.Player.Pos.X)
	}
}

func TestMoveUnclampedLeavesField(t *testing.T) {
	p := DefaultParams()
	st := NewRoundState(p)

	for i := 0; i < 600; i++ {
		Move(st, Input{Left: true}, p)
	}
	if st.Player.Pos.X > -2000 {
		t.Errorf("Unclamped player should keep going, x = %f", st.Player.Pos.X)
	}
}

func TestMoveClamped(t *testing.T) {
	p := DefaultParams()
	p.Clamp = true
	st := NewRoundState(p)

	for i := 0; i < 600; i++ {
		Move(st, Input{Left: true, Up: true}, p)
	}
	if st.Player.Pos.X != -930 || st.Player.Pos.Y != 510 {
		t.Errorf("Clamped player at %v, expected (-930, 510)", st.Player.Pos)
	}
}

func liveState(targets ...core.Vec2) *RoundState {
	st := &RoundState{Player: Player{Pos: core.V(0, 0), Half: half}}
	for i, pos := range targets {
		st.Targets = append(st.Targets, Target{ID: i + 1, Pos: pos, Half: half})
	}
	st.TargetCount = len(st.Targets)
	return st
}

func TestCollectAllOverlapsInOneTick(t *testing.T) {
	st := liveState(core.V(0, 0), core.V(59, 0), core.V(61, 0), core.V(-20, 40))

	var events []CollisionEvent
	n, err := Collect(st, func(ev CollisionEvent) { events = append(events, ev) })
	if err != nil {
		t.Fatalf("Collect() failed: %v", err)
	}

	if n != 3 {
		t.Errorf("Expected 3 collected, got %d", n)
	}
	if st.Score != 3 || st.TargetCount != 1 {
		t.Errorf("Expected score 3 and 1 target left, got score=%d count=%d", st.Score, st.TargetCount)
	}
	if len(st.Targets) != 1 || st.Targets[0].Pos != core.V(61, 0) {
		t.Errorf("Only the target at (61, 0) should survive, got %+v", st.Targets)
	}
	if len(events) != 3 {
		t.Errorf("Expected 3 collision events, got %d", len(events))
	}
}

func TestCollectNothing(t *testing.T) {
	st := liveState(core.V(200, 0))

	n, err := Collect(st, nil)
	if err != nil || n != 0 {
		t.Fatalf("Collect() = %d, %v; expected 0, nil", n, err)
	}
	if st.Score != 0 || st.TargetCount != 1 {
		t.Errorf("State should be unchanged, got score=%d count=%d", st.Score, st.TargetCount)
	}
}

func TestCollectRefusesNegativeCount(t *testing.T) {
	st := liveState(core.V(0, 0), core.V(10, 0))
	st.TargetCount = 1

	_, err := Collect(st, nil)
	if !errors.Is(err, ErrInvariant) {
		t.Fatalf("Expected ErrInvariant, got %v", err)
	}
	if st.TargetCount != 1 || st.Score != 0 || len(st.Targets) != 2 {
		t.Errorf("State should be untouched on violation, got count=%d score=%d live=%d",
			st.TargetCount, st.Score, len(st.Targets))
	}
}

func TestSpawnerInclusiveBounds(t *testing.T) {
	p := DefaultParams()
	p.Spawn = SpawnArea{MinX: 0, MaxX: 1, MinY: -1, MaxY: -1}
	p.WaveSize = 1
	sp := NewSpawner(5)

	seenX := map[float64]bool{}
	for i := 0; i < 200; i++ {
		st := NewRoundState(p)
		sp.Spawn(st, time.Time{}, p)
		pos := st.Targets[0].Pos
		if pos.Y != -1 {
			t.Fatalf("y should always be -1, got %f", pos.Y)
		}
		seenX[pos.X] = true
	}
	if !seenX[0] || !seenX[1] || len(seenX) != 2 {
		t.Errorf("Expected draws of exactly 0 and 1, got %v", seenX)
	}
}

func TestSpawnerOnlyWhenCleared(t *testing.T) {
	p := DefaultParams()
	sp := NewSpawner(1)
	st := liveState(core.V(100, 100))

	if sp.Spawn(st, time.Now(), p) {
		t.Error("Spawner should wait until the wave is cleared")
	}
	if st.TargetCount != 1 {
		t.Errorf("Target count changed to %d", st.TargetCount)
	}
}

func TestSpawnerAssignsUniqueIDs(t *testing.T) {
	p := DefaultParams()
	sp := NewSpawner(1)
	st := NewRoundState(p)

	ids := map[int]bool{}
	for wave := 0; wave < 3; wave++ {
		sp.Spawn(st, time.Now(), p)
		for _, tg := range st.Targets {
			ids[tg.ID] = true
		}
		st.Targets = nil
		st.TargetCount = 0
	}
	if len(ids) != 15 {
		t.Errorf("Expected 15 distinct target IDs over 3 waves, got %d", len(ids))
	}
	if st.Wave != 3 {
		t.Errorf("Expected wave counter 3, got %d", st.Wave)
	}
}

func TestSecondsLeftFloors(t *testing.T) {
	p := DefaultParams()
	start := time.Unix(1000, 0)
	st := &RoundState{WaveStart: start, Wave: 1}

	tests := []struct {
		elapsed  time.Duration
		expected int
	}{
		{0, 10},
		{1, 9},
		{500 * time.Millisecond, 9},
		{9*time.Second + 999*time.Millisecond, 0},
		{10 * time.Second, 0},
		{time.Hour, 0},
	}
	for _, tc := range tests {
		if got := SecondsLeft(st, start.Add(tc.elapsed), p); got != tc.expected {
			t.Errorf("SecondsLeft after %v = %d, expected %d", tc.elapsed, got, tc.expected)
		}
	}

	if got := SecondsLeft(&RoundState{}, start, p); got != 10 {
		t.Errorf("Before the first wave expected the full 10 seconds, got %d", got)
	}
}

func TestLastInstantCollectionIsNotLoss(t *testing.T) {
	clock := NewStepClock(time.Unix(0, 0))
	s, err := NewScheduler(DefaultParams(), WithClock(clock))
	if err != nil {
		t.Fatalf("NewScheduler() failed: %v", err)
	}

	// One target left, sitting on the player, and the wave already overdue.
	st := s.state
	st.Targets = []Target{{ID: 1, Pos: st.Player.Pos, Half: half}}
	st.TargetCount = 1
	st.WaveStart = time.Unix(0, 0)
	st.Wave = 1
	clock.Advance(11 * time.Second)

	res, err := s.Advance(&Input{})
	if err != nil {
		t.Fatalf("Advance() failed: %v", err)
	}
	if res.Status != StatusActive {
		t.Errorf("Collecting the last target on the deadline tick must not lose, got %v", res.Status)
	}
	if res.Collected != 1 || !res.Spawned {
		t.Errorf("Expected the last target collected and a respawn, got %+v", res)
	}
}

func TestInvariantViolationFaultsScheduler(t *testing.T) {
	s, err := NewScheduler(DefaultParams(), WithClock(NewStepClock(time.Unix(0, 0))))
	if err != nil {
		t.Fatalf("NewScheduler() failed: %v", err)
	}
	if _, err := s.Advance(nil); err != nil {
		t.Fatalf("Advance() failed: %v", err)
	}

	s.state.TargetCount = 7

	_, err = s.Advance(nil)
	if !errors.Is(err, ErrInvariant) {
		t.Fatalf("Expected ErrInvariant, got %v", err)
	}
	var iv *InvariantViolation
	if !errors.As(err, &iv) {
		t.Fatalf("Expected *InvariantViolation, got %T", err)
	}
	if iv.Tick != 2 || iv.TargetCount != 7 || iv.LiveTargets != 5 {
		t.Errorf("Violation context = %+v, expected tick 2, count 7, live 5", iv)
	}

	tick := s.Snapshot().Tick
	if _, again := s.Advance(&Input{Up: true}); again != err {
		t.Errorf("Faulted scheduler should keep returning the same error, got %v", again)
	}
	if s.Snapshot().Tick != tick || !s.Snapshot().Faulted {
		t.Error("Faulted scheduler must not advance")
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		ok     bool
	}{
		{"defaults", func(*Params) {}, true},
		{"zero tick", func(p *Params) { p.TickDuration = 0 }, false},
		{"negative speed", func(p *Params) { p.Speed = -1 }, false},
		{"negative extent", func(p *Params) { p.HalfExtent.X = -1 }, false},
		{"no targets", func(p *Params) { p.WaveSize = 0 }, false},
		{"inverted spawn", func(p *Params) { p.Spawn.MinX = 700 }, false},
		{"zero round", func(p *Params) { p.RoundDuration = 0 }, false},
		{"clamp into tiny field", func(p *Params) { p.Clamp = true; p.Field = core.V(10, 10) }, false},
		{"tiny field without clamp", func(p *Params) { p.Field = core.V(10, 10) }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			err := p.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Validate() = %v, expected ErrInvalidParams", err)
			}
		})
	}
}
