package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	WinnerPendingApproval = "pending_approval"
	WinnerAnnounced       = "announced"
)

// Winner is a queued winning-balance credit. Settlement never writes user
// balances directly; it creates a Winner row which an admin announces,
// crediting WinningBalance exactly once.
type Winner struct {
	gorm.Model

	UserID   uint            `gorm:"index" json:"user_id"`
	GameName string          `gorm:"size:64" json:"game_name"`
	RoundID  int64           `gorm:"index" json:"round_id"`
	Prize    decimal.Decimal `gorm:"type:numeric(12,2)" json:"prize"`
	Status   string          `gorm:"size:24;index;default:pending_approval" json:"status"`
}
