package services

import (
	"errors"
	"time"

	"matka/database"
	"matka/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	minTopUp      = 50
	maxTopUp      = 1_000_000
	minWithdrawal = 100

	withdrawalCooldown = 4 * time.Hour
)

// RequestTopUp records a deposit request for admin review. No balance is
// touched until approval.
func RequestTopUp(userID uint, amount decimal.Decimal, message string) (*models.TopUp, error) {
	amount = amount.Round(2)
	if amount.LessThan(decimal.NewFromInt(minTopUp)) || amount.GreaterThan(decimal.NewFromInt(maxTopUp)) {
		return nil, ErrInvalidAmount
	}
	topUp := models.TopUp{
		UserID:  userID,
		Amount:  amount,
		Message: message,
		Status:  models.RequestPending,
	}
	if err := database.DB.Create(&topUp).Error; err != nil {
		return nil, err
	}
	return &topUp, nil
}

// ResolveTopUp approves or rejects a pending deposit. Approval credits the
// spendable balance in the same transaction that flips the request status,
// guarded so a double click cannot credit twice.
func ResolveTopUp(topUpID uint, approve bool, reason string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var topUp models.TopUp
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&topUp, topUpID).Error; err != nil {
			return ErrNotPending
		}
		if topUp.Status != models.RequestPending {
			return ErrNotPending
		}

		status := models.RequestRejected
		if approve {
			status = models.RequestApproved
		}
		res := tx.Model(&topUp).
			Where("status = ?", models.RequestPending).
			Updates(map[string]any{"status": status, "admin_comment": reason})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotPending
		}

		if !approve {
			return nil
		}
		return creditBalance(tx, topUp.UserID, topUp.Amount, "balance", "deposit", "Top-up approved")
	})
}

// RequestWithdrawal debits the winning balance up front and queues the
// request; rejection refunds it. Minimum 100, one request per 4 hours.
func RequestWithdrawal(userID uint, amount decimal.Decimal, method string, details []byte) (*models.Withdrawal, error) {
	amount = amount.Round(2)
	if amount.LessThan(decimal.NewFromInt(minWithdrawal)) {
		return nil, ErrInvalidAmount
	}

	var withdrawal models.Withdrawal
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND is_active = true", userID).First(&user).Error; err != nil {
			return ErrAccountNotFound
		}

		// Cooldown check runs under the user row lock so two concurrent
		// requests serialize; the second sees the first's row.
		var last models.Withdrawal
		err := tx.Where("user_id = ?", userID).Order("created_at DESC").First(&last).Error
		if err == nil && time.Since(last.CreatedAt) < withdrawalCooldown {
			return ErrOnCooldown
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if user.WinningBalance.LessThan(amount) {
			return ErrInsufficientFunds
		}

		before := user.WinningBalance
		user.WinningBalance = user.WinningBalance.Sub(amount)
		if err := tx.Model(&user).Update("winning_balance", user.WinningBalance).Error; err != nil {
			return err
		}

		entry := models.UserTransaction{
			UserID:        user.ID,
			TrxType:       "withdraw",
			Amount:        amount,
			BalanceBefore: before,
			BalanceAfter:  user.WinningBalance,
			Note:          "Withdrawal requested (" + method + ")",
			RefID:         uuid.New().String(),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		withdrawal = models.Withdrawal{
			UserID:  userID,
			Amount:  amount,
			Method:  method,
			Details: details,
			Status:  models.RequestPending,
		}
		return tx.Create(&withdrawal).Error
	})
	if err != nil {
		return nil, err
	}
	return &withdrawal, nil
}

// ResolveWithdrawal finalizes a pending withdrawal. The amount was already
// debited at request time, so approval only flips the status; rejection
// refunds the winning balance.
func ResolveWithdrawal(withdrawalID uint, approve bool) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var withdrawal models.Withdrawal
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&withdrawal, withdrawalID).Error; err != nil {
			return ErrNotPending
		}
		if withdrawal.Status != models.RequestPending {
			return ErrNotPending
		}

		status := models.RequestRejected
		if approve {
			status = models.RequestApproved
		}
		res := tx.Model(&withdrawal).
			Where("status = ?", models.RequestPending).
			Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotPending
		}

		if approve {
			return nil
		}
		return creditBalance(tx, withdrawal.UserID, withdrawal.Amount,
			"winning_balance", "refund", "Withdrawal rejected")
	})
}

// AnnounceWinner credits a pending winner's prize to their winning
// balance exactly once.
func AnnounceWinner(winnerID uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var winner models.Winner
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&winner, winnerID).Error; err != nil {
			return ErrNotPending
		}
		if winner.Status != models.WinnerPendingApproval {
			return ErrNotPending
		}

		res := tx.Model(&winner).
			Where("status = ?", models.WinnerPendingApproval).
			Update("status", models.WinnerAnnounced)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotPending
		}

		return creditBalance(tx, winner.UserID, winner.Prize,
			"winning_balance", "payout", "Prize: "+winner.GameName)
	})
}

// creditBalance locks the user row and applies a credit to the named
// balance column, recording the ledger entry. Must run inside a
// transaction.
func creditBalance(tx *gorm.DB, userID uint, amount decimal.Decimal, column, trxType, note string) error {
	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&user, userID).Error; err != nil {
		return ErrAccountNotFound
	}

	var before decimal.Decimal
	if column == "winning_balance" {
		before = user.WinningBalance
	} else {
		before = user.Balance
	}
	after := before.Add(amount)

	if err := tx.Model(&user).Update(column, after).Error; err != nil {
		return err
	}

	entry := models.UserTransaction{
		UserID:        user.ID,
		TrxType:       trxType,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		Note:          note,
		RefID:         uuid.New().String(),
	}
	return tx.Create(&entry).Error
}
