package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	Phone    string `gorm:"uniqueIndex;size:16" json:"phone"`
	Name     string `gorm:"size:64" json:"name"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	// Balance is the spendable wallet, funded by approved top-ups and
	// staked from. WinningBalance is credited only by announced winners
	// and is the only balance eligible for withdrawal.
	Balance        decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"balance"`
	WinningBalance decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"winning_balance"`

	Stakes       []Stake           `gorm:"foreignKey:UserID"`
	Transactions []UserTransaction `gorm:"foreignKey:UserID"`
}

type UserTransaction struct {
	gorm.Model

	UserID  uint   `gorm:"index"`
	TrxType string `gorm:"size:24;index"` // stake, payout, deposit, withdraw, refund

	Amount        decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"amount"`
	BalanceBefore decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"balance_before"`
	BalanceAfter  decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"balance_after"`

	Note  string `gorm:"size:255"`
	RefID string `gorm:"size:64;index"`
}
