package game

import (
	"matka/models"

	"github.com/shopspring/decimal"
)

// Distribute marks every pending stake in place as won or lost against the
// winning outcome and returns the aggregate credit owed per user. Won
// stakes pay amount times the game multiplier; lost stakes pay zero.
// Stakes already settled are left untouched and excluded from the credits.
func Distribute(stakes []models.Stake, winning int, multiplier int64) map[uint]decimal.Decimal {
	mult := decimal.NewFromInt(multiplier)
	credits := make(map[uint]decimal.Decimal)

	for i := range stakes {
		s := &stakes[i]
		if s.Status != models.StakePending {
			continue
		}
		if s.Selection == winning {
			s.Status = models.StakeWon
			s.Payout = s.Amount.Mul(mult).Round(2)
			credits[s.UserID] = credits[s.UserID].Add(s.Payout)
		} else {
			s.Status = models.StakeLost
			s.Payout = decimal.Zero
		}
	}
	return credits
}

// StakeTotals sums pending stake amounts per outcome, the decider's input.
func StakeTotals(stakes []models.Stake) map[int]decimal.Decimal {
	totals := make(map[int]decimal.Decimal)
	for _, s := range stakes {
		if s.Status != models.StakePending {
			continue
		}
		totals[s.Selection] = totals[s.Selection].Add(s.Amount)
	}
	return totals
}
