package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RouletteBet is a single-spin wager. There is no shared round: the debit,
// the draw and the outcome are committed in one transaction.
type RouletteBet struct {
	gorm.Model

	UserID  uint            `gorm:"index" json:"user_id"`
	BetType string          `gorm:"size:16" json:"bet_type"` // "17", "red", "1st12", "col2", ...
	Amount  decimal.Decimal `gorm:"type:numeric(12,2)" json:"amount"`

	Outcome string          `gorm:"size:4" json:"outcome"` // "0".."36" or "00"
	Status  string          `gorm:"size:16;index" json:"status"`
	Payout  decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"payout"`

	BetInfo datatypes.JSON `gorm:"type:jsonb" json:"bet_info"`
}
