package game

import (
	"testing"
	"time"
)

func TestCurrentPhase(t *testing.T) {
	end := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		cfg       Config
		now       time.Time
		wantPhase Phase
		wantSecs  int
	}{
		{"round just opened", WinGame, end.Add(-120 * time.Second), PhaseBetting, 60},
		{"mid betting", WinGame, end.Add(-90 * time.Second), PhaseBetting, 30},
		{"last betting second", WinGame, end.Add(-61 * time.Second), PhaseBetting, 1},
		{"lockout boundary", WinGame, end.Add(-60 * time.Second), PhaseLocked, 60},
		{"mid lockout", WinGame, end.Add(-30 * time.Second), PhaseLocked, 30},
		{"round end", WinGame, end, PhaseEnded, 0},
		{"past end", WinGame, end.Add(5 * time.Second), PhaseEnded, 0},
		{"haruf betting", Haruf, end.Add(-60 * time.Second), PhaseBetting, 50},
		{"haruf lockout", Haruf, end.Add(-10 * time.Second), PhaseLocked, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phase, secs := tt.cfg.CurrentPhase(tt.now, end)
			if phase != tt.wantPhase || secs != tt.wantSecs {
				t.Errorf("CurrentPhase() = %v, %d; want %v, %d", phase, secs, tt.wantPhase, tt.wantSecs)
			}
		})
	}
}

func TestSettlementDue(t *testing.T) {
	end := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		now           time.Time
		roundID       int64
		lastProcessed int64
		want          bool
	}{
		{"round still running", end.Add(-time.Second), 100, 99, false},
		{"ended and unprocessed", end, 100, 99, true},
		{"long past end, unprocessed", end.Add(time.Hour), 100, 99, true},
		{"already processed", end.Add(time.Second), 100, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SettlementDue(tt.now, end, tt.roundID, tt.lastProcessed); got != tt.want {
				t.Errorf("SettlementDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextRoundID(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if got := NextRoundID(now, 0); got != now.UnixMilli() {
		t.Errorf("NextRoundID from zero = %d, want %d", got, now.UnixMilli())
	}

	// Clock stepping backwards must not reuse or shrink ids.
	current := now.UnixMilli() + 5000
	if got := NextRoundID(now, current); got != current+1 {
		t.Errorf("NextRoundID with stale clock = %d, want %d", got, current+1)
	}

	// Successive ids stay strictly increasing even with a frozen clock.
	id := NextRoundID(now, 0)
	for i := 0; i < 5; i++ {
		next := NextRoundID(now, id)
		if next <= id {
			t.Fatalf("round id not monotonic: %d then %d", id, next)
		}
		id = next
	}
}
