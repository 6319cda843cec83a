package models

import (
	"testing"
	"time"
)

func TestSessionBeforeCreate(t *testing.T) {
	s := Session{UserID: 1}
	if err := s.BeforeCreate(nil); err != nil {
		t.Fatal(err)
	}
	if len(s.SID) != 36 {
		t.Errorf("SID length = %d, want 36", len(s.SID))
	}
	if s.ExpiresAt.IsZero() {
		t.Error("expiry not defaulted")
	}
	if got := time.Until(s.ExpiresAt); got < SessionTTL-time.Minute || got > SessionTTL {
		t.Errorf("default expiry %v from now, want about %v", got, SessionTTL)
	}

	// An explicit expiry is kept.
	custom := time.Now().Add(time.Hour)
	s2 := Session{UserID: 1, ExpiresAt: custom}
	if err := s2.BeforeCreate(nil); err != nil {
		t.Fatal(err)
	}
	if !s2.ExpiresAt.Equal(custom) {
		t.Errorf("expiry overwritten: %v", s2.ExpiresAt)
	}
}

func TestSessionExpired(t *testing.T) {
	live := Session{ExpiresAt: time.Now().Add(time.Minute)}
	if live.Expired() {
		t.Error("future expiry reported expired")
	}
	dead := Session{ExpiresAt: time.Now().Add(-time.Minute)}
	if !dead.Expired() {
		t.Error("past expiry reported live")
	}
}
