package services

import (
	"encoding/json"

	"matka/database"
	"matka/game"
	"matka/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Spin plays one roulette bet: debit, draw and outcome commit together.
// A winning bet queues its prize through the pending-approval winner
// record like every other game; the wheel never writes balances itself.
func Spin(userID uint, betType string, amount decimal.Decimal, rng game.Rand) (*models.RouletteBet, error) {
	if !game.ValidRouletteBet(betType) {
		return nil, ErrInvalidSelection
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	amount = amount.Round(2)

	var bet models.RouletteBet
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		user, err := debitBalance(tx, userID, amount, "Roulette bet ("+betType+")")
		if err != nil {
			return err
		}

		outcome := game.SpinWheel(rng)
		multiplier, won := game.EvaluateRoulette(betType, outcome)

		bet = models.RouletteBet{
			UserID:  user.ID,
			BetType: betType,
			Amount:  amount,
			Outcome: outcome,
			Status:  models.StakeLost,
		}
		if won {
			bet.Status = models.StakeWon
			bet.Payout = amount.Mul(decimal.NewFromInt(multiplier)).Round(2)
		}
		info, _ := json.Marshal(map[string]any{"bet_type": betType, "outcome": outcome})
		bet.BetInfo = info

		if err := tx.Create(&bet).Error; err != nil {
			return err
		}

		if won {
			winner := models.Winner{
				UserID:   user.ID,
				GameName: "Roulette",
				Prize:    bet.Payout,
				Status:   models.WinnerPendingApproval,
			}
			return tx.Create(&winner).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &bet, nil
}
