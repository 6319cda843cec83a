package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionTTL is how long a login token stays valid.
const SessionTTL = 7 * 24 * time.Hour

// Session is a bearer login token; SID is what the client sends back as
// X-Session-Token.
type Session struct {
	gorm.Model
	SID       string    `gorm:"size:36;uniqueIndex;not null"`
	UserID    uint      `gorm:"index"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ExpiresAt time.Time `gorm:"index"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) (err error) {
	s.SID = strings.ToLower(uuid.New().String())
	if s.ExpiresAt.IsZero() {
		s.ExpiresAt = time.Now().Add(SessionTTL)
	}
	return nil
}

// Expired reports whether the token is past its expiry.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
