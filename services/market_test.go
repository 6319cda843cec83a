package services

import (
	"testing"
	"time"
)

func TestMarketDayID(t *testing.T) {
	tests := []struct {
		in   time.Time
		want int64
	}{
		{time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local), 20260301},
		{time.Date(2026, 3, 1, 23, 59, 59, 0, time.Local), 20260301},
		{time.Date(2026, 12, 31, 12, 0, 0, 0, time.Local), 20261231},
	}
	for _, tt := range tests {
		if got := marketDayID(tt.in); got != tt.want {
			t.Errorf("marketDayID(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMarketGameKey(t *testing.T) {
	if got := marketGameKey("GALI"); got != "market:GALI" {
		t.Errorf("marketGameKey = %q", got)
	}
}

// A stake's round id and a result's day key come from the same function,
// so a same-day publication always finds the day's stakes and the
// duplicate check always sees an earlier result for that day.
func TestMarketDayKeysAgree(t *testing.T) {
	morning := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	evening := time.Date(2026, 3, 1, 21, 30, 0, 0, time.Local)
	if marketDayID(morning) != marketDayID(evening) {
		t.Errorf("same-day keys differ: %d vs %d", marketDayID(morning), marketDayID(evening))
	}
	nextDay := time.Date(2026, 3, 2, 0, 0, 1, 0, time.Local)
	if marketDayID(evening) == marketDayID(nextDay) {
		t.Error("keys collide across days")
	}
}
