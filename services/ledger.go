package services

import (
	"errors"
	"fmt"
	"time"

	"matka/database"
	"matka/game"
	"matka/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlaceStake debits the bettor and records one stake on the game's current
// round. The debit and the stake insert commit together or not at all; the
// round phase check runs against the server clock inside the same
// transaction, so a client cannot bet into a locked or ended round.
func PlaceStake(userID uint, cfg game.Config, selection int, amount decimal.Decimal) (*models.Stake, error) {
	if !cfg.ValidSelection(selection) {
		return nil, ErrInvalidSelection
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	amount = amount.Round(2)

	var stake models.Stake
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var state models.GameState
		if err := tx.Where("game = ?", cfg.Key).First(&state).Error; err != nil {
			return ErrRoundClosed
		}
		if phase, _ := cfg.CurrentPhase(time.Now(), state.RoundEndsAt); phase != game.PhaseBetting {
			return ErrRoundClosed
		}

		user, err := debitBalance(tx, userID, amount,
			fmt.Sprintf("Stake on %s (%d)", cfg.Name, selection))
		if err != nil {
			return err
		}

		stake = models.Stake{
			UserID:    user.ID,
			Game:      cfg.Key,
			RoundID:   state.RoundID,
			Selection: selection,
			Amount:    amount,
			Status:    models.StakePending,
			RefID:     uuid.New().String(),
		}
		return tx.Create(&stake).Error
	})
	if err != nil {
		return nil, err
	}
	return &stake, nil
}

// PlaceHarufStakes expands a haruf slip (straight plus andar/bahar digit
// bets) into per-outcome stakes and debits the total in the same
// transaction as all inserts. The expanded rows share one ref id.
func PlaceHarufStakes(userID uint, straight, andar, bahar map[int]decimal.Decimal) ([]models.Stake, decimal.Decimal, error) {
	cfg := game.Haruf
	perOutcome, total, err := game.ExpandHaruf(straight, andar, bahar)
	if err != nil {
		return nil, decimal.Zero, ErrInvalidSelection
	}

	var stakes []models.Stake
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var state models.GameState
		if err := tx.Where("game = ?", cfg.Key).First(&state).Error; err != nil {
			return ErrRoundClosed
		}
		if phase, _ := cfg.CurrentPhase(time.Now(), state.RoundEndsAt); phase != game.PhaseBetting {
			return ErrRoundClosed
		}

		user, err := debitBalance(tx, userID, total, "Haruf slip")
		if err != nil {
			return err
		}

		refID := uuid.New().String()
		stakes = make([]models.Stake, 0, len(perOutcome))
		for selection, amount := range perOutcome {
			stakes = append(stakes, models.Stake{
				UserID:    user.ID,
				Game:      cfg.Key,
				RoundID:   state.RoundID,
				Selection: selection,
				Amount:    amount,
				Status:    models.StakePending,
				RefID:     refID,
			})
		}
		return tx.Create(&stakes).Error
	})
	if err != nil {
		return nil, decimal.Zero, err
	}
	return stakes, total, nil
}

// debitBalance locks the user row, verifies funds, applies the debit and
// writes the ledger entry. Must be called inside a transaction.
func debitBalance(tx *gorm.DB, userID uint, amount decimal.Decimal, note string) (*models.User, error) {
	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND is_active = true", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if user.Balance.LessThan(amount) {
		return nil, ErrInsufficientFunds
	}

	before := user.Balance
	user.Balance = user.Balance.Sub(amount)
	if err := tx.Model(&user).Update("balance", user.Balance).Error; err != nil {
		return nil, err
	}

	entry := models.UserTransaction{
		UserID:        user.ID,
		TrxType:       "stake",
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  user.Balance,
		Note:          note,
		RefID:         uuid.New().String(),
	}
	if err := tx.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
