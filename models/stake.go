package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StakePending = "pending"
	StakeWon     = "won"
	StakeLost    = "lost"
)

// Stake is one wagered amount on one outcome within one round. Created at
// placement, after the balance debit in the same transaction, and mutated
// exactly once at settlement.
type Stake struct {
	gorm.Model

	UserID  uint   `gorm:"index" json:"user_id"`
	Game    string `gorm:"size:32;index:idx_game_round" json:"game"`
	RoundID int64  `gorm:"index:idx_game_round" json:"round_id"`

	// Selection is the chosen outcome: 1-12 for the win game, 0-99 for
	// haruf and fixed-number markets.
	Selection int             `json:"selection"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2)" json:"amount"`

	Status string          `gorm:"size:16;index;default:pending" json:"status"`
	Payout decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"payout"`

	RefID string `gorm:"size:64;index" json:"ref_id"`
}
