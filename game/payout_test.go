package game

import (
	"testing"

	"matka/models"

	"github.com/shopspring/decimal"
)

func TestDistribute(t *testing.T) {
	stakes := []models.Stake{
		{UserID: 1, Selection: 3, Amount: amt(100), Status: models.StakePending},
		{UserID: 1, Selection: 3, Amount: amt(50), Status: models.StakePending},
		{UserID: 2, Selection: 3, Amount: amt(20), Status: models.StakePending},
		{UserID: 3, Selection: 7, Amount: amt(500), Status: models.StakePending},
		{UserID: 4, Selection: 3, Amount: amt(999), Status: models.StakeLost},
	}

	credits := Distribute(stakes, 3, 10)

	if !stakes[0].Payout.Equal(amt(1000)) || stakes[0].Status != models.StakeWon {
		t.Errorf("stake 0: payout %s status %s", stakes[0].Payout, stakes[0].Status)
	}
	if !stakes[3].Payout.Equal(decimal.Zero) || stakes[3].Status != models.StakeLost {
		t.Errorf("losing stake: payout %s status %s", stakes[3].Payout, stakes[3].Status)
	}
	if stakes[4].Status != models.StakeLost {
		t.Errorf("settled stake touched: status %s", stakes[4].Status)
	}

	// Winning stakes aggregate per user.
	if !credits[1].Equal(amt(1500)) {
		t.Errorf("user 1 credit = %s, want 1500", credits[1])
	}
	if !credits[2].Equal(amt(200)) {
		t.Errorf("user 2 credit = %s, want 200", credits[2])
	}
	if _, ok := credits[3]; ok {
		t.Error("losing user received a credit")
	}
	if _, ok := credits[4]; ok {
		t.Error("already settled stake produced a credit")
	}
}

func TestDistributeConservation(t *testing.T) {
	stakes := []models.Stake{
		{UserID: 1, Selection: 8, Amount: decimal.NewFromFloat(33.33), Status: models.StakePending},
		{UserID: 2, Selection: 8, Amount: decimal.NewFromFloat(0.01), Status: models.StakePending},
		{UserID: 3, Selection: 2, Amount: amt(70), Status: models.StakePending},
	}

	credits := Distribute(stakes, 8, 10)

	wonTotal := decimal.Zero
	for _, s := range stakes {
		if s.Status == models.StakeWon {
			wonTotal = wonTotal.Add(s.Amount)
		}
	}
	creditTotal := decimal.Zero
	for _, c := range credits {
		creditTotal = creditTotal.Add(c)
	}
	want := wonTotal.Mul(amt(10))
	if !creditTotal.Equal(want) {
		t.Errorf("credited %s, want multiplier times won stakes %s", creditTotal, want)
	}
}

func TestStakeTotals(t *testing.T) {
	stakes := []models.Stake{
		{Selection: 1, Amount: amt(10), Status: models.StakePending},
		{Selection: 1, Amount: amt(15), Status: models.StakePending},
		{Selection: 2, Amount: amt(40), Status: models.StakePending},
		{Selection: 1, Amount: amt(99), Status: models.StakeWon},
	}

	totals := StakeTotals(stakes)
	if !totals[1].Equal(amt(25)) {
		t.Errorf("outcome 1 total = %s, want 25", totals[1])
	}
	if !totals[2].Equal(amt(40)) {
		t.Errorf("outcome 2 total = %s, want 40", totals[2])
	}
	if len(totals) != 2 {
		t.Errorf("totals has %d outcomes, want 2", len(totals))
	}
}
