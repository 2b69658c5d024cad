package sim

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-cube/internal/core"
)

// Spawner creates a new wave whenever the field has been cleared.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner with a deterministic RNG.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// Spawn performs a wave reset when TargetCount is zero: the round clock
// restarts at now and WaveSize targets are placed uniformly inside the spawn
// area. Returns true if a wave was spawned.
func (s *Spawner) Spawn(st *RoundState, now time.Time, p Params) bool {
	if st.TargetCount != 0 {
		return false
	}

	st.WaveStart = now
	st.Wave++
	for i := 0; i < p.WaveSize; i++ {
		st.nextID++
		st.Targets = append(st.Targets, Target{
			ID:   st.nextID,
			Pos:  s.randomPos(p.Spawn),
			Half: p.HalfExtent,
		})
		st.TargetCount++
	}
	return true
}

// randomPos draws each axis independently with inclusive integer bounds.
func (s *Spawner) randomPos(a SpawnArea) core.Vec2 {
	x := a.MinX + s.rng.Intn(a.MaxX-a.MinX+1)
	y := a.MinY + s.rng.Intn(a.MaxY-a.MinY+1)
	return core.V(float64(x), float64(y))
}
