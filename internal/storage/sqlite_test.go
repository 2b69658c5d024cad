package storage

import (
	"sync"
	"testing"
	"time"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, r RoundRecord) {
	t.Helper()
	if _, err := store.SaveRound(r); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
}

func TestStoreStartsEmpty(t *testing.T) {
	store := openStore(t)

	rounds, err := store.TopRounds("", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("New store should be empty, got %d rounds", len(rounds))
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openStore(t)
	b := openStore(t)

	save(t, a, RoundRecord{Player: "ann", GameID: "cube", Score: 7})

	high, err := b.HighScore("cube")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("A second store must not see the first one's rounds, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openStore(t)

	save(t, store, RoundRecord{Player: "ann", GameID: "cube", Score: 10, Waves: 3, Ticks: 1800})
	save(t, store, RoundRecord{Player: "bob", GameID: "cube", Score: 5, Waves: 2, Ticks: 900})
	save(t, store, RoundRecord{Player: "bob", GameID: "cube", Score: 20, Waves: 5, Ticks: 2400})
	save(t, store, RoundRecord{Player: "ann", GameID: "cube_walled", Score: 50, Waves: 11})

	rounds, err := store.TopRounds("cube", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}

	expected := []int{20, 10, 5}
	for i, r := range rounds {
		if r.Score != expected[i] {
			t.Errorf("Round %d score = %d, expected %d", i, r.Score, expected[i])
		}
	}
	if rounds[0].Player != "bob" || rounds[0].Waves != 5 || rounds[0].Ticks != 2400 {
		t.Errorf("Top round = %+v", rounds[0])
	}
	if rounds[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be filled in")
	}

	all, err := store.TopRounds("", 10)
	if err != nil {
		t.Fatalf("TopRounds(all) failed: %v", err)
	}
	if len(all) != 4 || all[0].GameID != "cube_walled" {
		t.Errorf("Expected 4 rounds led by cube_walled, got %+v", all)
	}
}

func TestTopRoundsLimitAndTies(t *testing.T) {
	store := openStore(t)

	for i := 0; i < 15; i++ {
		save(t, store, RoundRecord{Player: "p", GameID: "cube", Score: 3})
	}

	rounds, err := store.TopRounds("cube", 0)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 10 {
		t.Errorf("Default limit should be 10, got %d", len(rounds))
	}
	for i := 1; i < len(rounds); i++ {
		if rounds[i-1].ID > rounds[i].ID {
			t.Error("Equal scores should keep insertion order")
		}
	}
}

func TestHighScoreAndPlayerBest(t *testing.T) {
	store := openStore(t)

	if high, err := store.HighScore("cube"); err != nil || high != 0 {
		t.Errorf("HighScore() on empty board = %d, %v", high, err)
	}

	save(t, store, RoundRecord{Player: "ann", GameID: "cube", Score: 8})
	save(t, store, RoundRecord{Player: "bob", GameID: "cube", Score: 12})

	if high, _ := store.HighScore("cube"); high != 12 {
		t.Errorf("HighScore() = %d, expected 12", high)
	}
	if best, _ := store.PlayerBest("ann", "cube"); best != 8 {
		t.Errorf("PlayerBest(ann) = %d, expected 8", best)
	}
	if best, _ := store.PlayerBest("carol", "cube"); best != 0 {
		t.Errorf("PlayerBest(carol) = %d, expected 0", best)
	}
}

func TestStats(t *testing.T) {
	store := openStore(t)

	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	save(t, store, RoundRecord{Player: "a", GameID: "cube", Score: 10, Waves: 3, CreatedAt: when})
	save(t, store, RoundRecord{Player: "a", GameID: "cube", Score: 20, Waves: 5, CreatedAt: when.Add(time.Minute)})

	stats, err := store.Stats("cube")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 2 || stats.HighScore != 20 || stats.AvgScore != 15 || stats.TotalWaves != 8 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if !stats.LastPlayed.Equal(when.Add(time.Minute)) {
		t.Errorf("LastPlayed = %v, expected %v", stats.LastPlayed, when.Add(time.Minute))
	}

	empty, err := store.Stats("cube_walled")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Rounds != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for an unplayed variant: %+v", empty)
	}
}

func TestConcurrentSaves(t *testing.T) {
	store := openStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if _, err := store.SaveRound(RoundRecord{Player: "ssh", GameID: "cube", Score: score}); err != nil {
				t.Errorf("SaveRound() failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	stats, err := store.Stats("cube")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 8 {
		t.Errorf("Expected 8 rounds, got %d", stats.Rounds)
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2026, 3, 1, 12, 1, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
	}{
		{"aggregate string", "2026-03-01 12:01:00 +0000 UTC"},
		{"aggregate bytes", []byte("2026-03-01 12:01:00 +0000 UTC")},
		{"fractional seconds", "2026-03-01 12:01:00.000000000 +0000 UTC"},
		{"sqlite text", "2026-03-01 12:01:00"},
		{"rfc3339", "2026-03-01T12:01:00Z"},
		{"time value", want},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTime(tc.in); !got.Equal(want) {
				t.Errorf("parseTime(%v) = %v, expected %v", tc.in, got, want)
			}
		})
	}

	if got := parseTime(nil); !got.IsZero() {
		t.Errorf("parseTime(nil) = %v, expected zero time", got)
	}
}
