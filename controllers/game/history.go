package game

import (
	"matka/database"
	"matka/game"
	"matka/helpers"
	"matka/models"

	"github.com/gofiber/fiber/v2"
)

// MyStakes returns the caller's betting history, optionally filtered by
// game key.
func MyStakes(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	query := database.DB.Where("user_id = ?", user.ID)
	if g := c.Query("game"); g != "" {
		query = query.Where("game = ?", g)
	}

	var stakes []models.Stake
	if err := query.Order("created_at DESC").Limit(100).Find(&stakes).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_STAKES")
	}
	return helpers.JSONSuccess(c, "Stakes", stakes)
}

// RoundResults returns the result chart for one clock-driven game.
func RoundResults(c *fiber.Ctx) error {
	cfg, ok := game.ConfigByKey(c.Params("game"))
	if !ok {
		return helpers.JSONError(c, "UNKNOWN_GAME")
	}

	var results []models.RoundResult
	if err := database.DB.Where("game = ?", cfg.Key).
		Order("round_id DESC").Limit(30).Find(&results).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_RESULTS")
	}
	return helpers.JSONSuccess(c, "Round results", results)
}
