package services

import (
	"errors"
	"time"

	"matka/database"
	"matka/game"
	"matka/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettleOutcome reports what one settlement attempt did. Claimed is false
// when the round is still running or another caller already advanced it;
// both are normal negative results, not errors.
type SettleOutcome struct {
	Claimed        bool
	RoundID        int64
	WinningOutcome int
	StakeCount     int
	WinnerCount    int
}

// SettleDue settles the game's round if its end time has passed. The
// claim, the outcome decision, the stake updates, the winner records and
// the round advance all commit in one transaction holding the game-state
// row lock, so exactly one caller settles any given round.
func SettleDue(cfg game.Config, now time.Time, rng game.Rand) (*SettleOutcome, error) {
	out := &SettleOutcome{}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var state models.GameState
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("game = ?", cfg.Key).First(&state).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// First boot for this game: publish the opening round.
			state = models.GameState{
				Game:        cfg.Key,
				RoundID:     now.UnixMilli(),
				RoundEndsAt: now.Add(cfg.RoundTotal),
			}
			return tx.Create(&state).Error
		}
		if err != nil {
			return err
		}

		if !game.SettlementDue(now, state.RoundEndsAt, state.RoundID, state.LastRoundProcessed) {
			return nil
		}
		round := state.RoundID

		var stakes []models.Stake
		if err := tx.Where("game = ? AND round_id = ? AND status = ?",
			cfg.Key, round, models.StakePending).Find(&stakes).Error; err != nil {
			return err
		}

		winning := cfg.DecideOutcome(game.StakeTotals(stakes), rng)
		credits := game.Distribute(stakes, winning, cfg.Multiplier)

		for i := range stakes {
			res := tx.Model(&stakes[i]).
				Where("status = ?", models.StakePending).
				Updates(map[string]any{
					"status": stakes[i].Status,
					"payout": stakes[i].Payout,
				})
			if res.Error != nil {
				return res.Error
			}
		}

		result := models.RoundResult{
			Game:           cfg.Key,
			RoundID:        round,
			WinningOutcome: winning,
			StakeCount:     len(stakes),
		}
		if err := tx.Create(&result).Error; err != nil {
			return err
		}

		for userID, prize := range credits {
			winner := models.Winner{
				UserID:   userID,
				GameName: cfg.Name,
				RoundID:  round,
				Prize:    prize,
				Status:   models.WinnerPendingApproval,
			}
			if err := tx.Create(&winner).Error; err != nil {
				return err
			}
		}

		// Advance the round. The conditional write is the claim guard: a
		// competing settler that slipped past the row lock would find
		// last_round_processed already moved and change nothing.
		res := tx.Model(&models.GameState{}).
			Where("id = ? AND last_round_processed <> ?", state.ID, round).
			Updates(map[string]any{
				"round_id":             game.NextRoundID(now, round),
				"round_ends_at":        now.Add(cfg.RoundTotal),
				"last_round_processed": round,
				"last_winning_outcome": winning,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotPending
		}

		out.Claimed = true
		out.RoundID = round
		out.WinningOutcome = winning
		out.StakeCount = len(stakes)
		out.WinnerCount = len(credits)
		return nil
	})

	if errors.Is(err, ErrNotPending) {
		// Another settler won the claim; the whole attempt rolled back.
		return &SettleOutcome{}, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
