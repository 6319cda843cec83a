package models

import (
	"time"

	"gorm.io/gorm"
)

// GameState is the singleton round document for one clock-driven game.
// LastRoundProcessed is the settlement guard: the row lock taken while
// advancing it is the mutual-exclusion point that prevents double
// settlement of a round.
type GameState struct {
	gorm.Model

	Game               string    `gorm:"uniqueIndex;size:32" json:"game"`
	RoundID            int64     `gorm:"index" json:"round_id"`
	RoundEndsAt        time.Time `json:"round_ends_at"`
	LastRoundProcessed int64     `gorm:"default:0" json:"last_round_processed"`
	LastWinningOutcome *int      `json:"last_winning_outcome"`
}

// RoundResult is the published outcome of a settled round, kept for
// result-chart history.
type RoundResult struct {
	gorm.Model

	Game           string `gorm:"size:32;index:idx_result_game_round,unique" json:"game"`
	RoundID        int64  `gorm:"index:idx_result_game_round,unique" json:"round_id"`
	WinningOutcome int    `json:"winning_outcome"`
	StakeCount     int    `json:"stake_count"`
}
