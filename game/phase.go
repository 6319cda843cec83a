package game

import "time"

type Phase string

const (
	PhaseBetting Phase = "betting"
	PhaseLocked  Phase = "locked"
	PhaseEnded   Phase = "ended"
)

// CurrentPhase derives the round phase from the clock. During betting the
// returned seconds count down to the lockout; during lockout they count
// down to the round end.
func (c Config) CurrentPhase(now, roundEndsAt time.Time) (Phase, int) {
	remaining := roundEndsAt.Sub(now)
	if remaining <= 0 {
		return PhaseEnded, 0
	}
	secs := int(remaining / time.Second)
	if remaining <= c.Lockout {
		return PhaseLocked, secs
	}
	return PhaseBetting, secs - int(c.Lockout/time.Second)
}

// SettlementDue reports whether the round identified by roundID still
// needs settling: its end time has passed and no claimant has recorded it
// as processed yet.
func SettlementDue(now, roundEndsAt time.Time, roundID, lastProcessed int64) bool {
	if now.Before(roundEndsAt) {
		return false
	}
	return lastProcessed != roundID
}

// NextRoundID derives the successor round identity from the wall clock,
// kept strictly greater than the current one so round ids stay monotonic
// even if the clock steps backwards.
func NextRoundID(now time.Time, current int64) int64 {
	id := now.UnixMilli()
	if id <= current {
		id = current + 1
	}
	return id
}
