package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-cube/internal/storage"
)

func TestScoreboardShowsLastPlayed(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	when := time.Date(2026, 3, 1, 12, 1, 0, 0, time.UTC)
	if _, err := store.SaveRound(storage.RoundRecord{Player: "ann", GameID: "scripted", Score: 7, Waves: 2, CreatedAt: when}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	view := NewScoreboardModel(store, 120, 30).View()

	for _, want := range []string{"1 rounds", "best 7", "last " + when.Local().Format("15:04"), "ann"} {
		if !strings.Contains(view, want) {
			t.Errorf("Scoreboard view missing %q", want)
		}
	}
}
