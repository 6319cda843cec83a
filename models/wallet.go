package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// TopUp is a deposit request. The user's balance is untouched until an
// admin approves the request.
type TopUp struct {
	gorm.Model

	UserID  uint            `gorm:"index" json:"user_id"`
	Amount  decimal.Decimal `gorm:"type:numeric(12,2)" json:"amount"`
	Message string          `gorm:"size:500" json:"message"`

	Status       string `gorm:"size:16;index;default:pending" json:"status"`
	AdminComment string `gorm:"size:255" json:"admin_comment"`
}

// Withdrawal debits WinningBalance at submission time; rejection refunds
// it. Details holds the UPI id or bank account fields as submitted.
type Withdrawal struct {
	gorm.Model

	UserID  uint            `gorm:"index" json:"user_id"`
	Amount  decimal.Decimal `gorm:"type:numeric(12,2)" json:"amount"`
	Method  string          `gorm:"size:16" json:"method"` // upi or bank
	Details datatypes.JSON  `gorm:"type:jsonb" json:"details"`

	Status string `gorm:"size:16;index;default:pending" json:"status"`
}
