package game

import (
	"time"

	"matka/database"
	"matka/game"
	"matka/helpers"
	"matka/models"

	"github.com/gofiber/fiber/v2"
)

func currentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals("user").(models.User)
	return user, ok
}

// RoundState reports the current round, its phase and the countdown for
// one of the clock-driven games.
func RoundState(c *fiber.Ctx) error {
	cfg, ok := game.ConfigByKey(c.Params("game"))
	if !ok {
		return helpers.JSONError(c, "UNKNOWN_GAME")
	}

	var state models.GameState
	if err := database.DB.Where("game = ?", cfg.Key).First(&state).Error; err != nil {
		// The scheduler publishes the opening round on its first tick.
		return helpers.JSONError(c, "GAME_NOT_READY")
	}

	phase, secondsLeft := cfg.CurrentPhase(time.Now(), state.RoundEndsAt)

	return helpers.JSONSuccess(c, "Round state", fiber.Map{
		"game":                 cfg.Key,
		"round_id":             state.RoundID,
		"round_ends_at":        state.RoundEndsAt,
		"phase":                phase,
		"seconds_left":         secondsLeft,
		"last_winning_outcome": state.LastWinningOutcome,
	})
}
