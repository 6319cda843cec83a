package game

import (
	"matka/database"
	"matka/game"
	"matka/helpers"
	"matka/models"
	"matka/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type SpinRequest struct {
	BetType string          `json:"bet_type"`
	Amount  decimal.Decimal `json:"amount"`
}

// Spin plays one roulette bet and returns the drawn outcome.
func Spin(c *fiber.Ctx) error {
	var req SpinRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	user, ok := currentUser(c)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	bet, err := services.Spin(user.ID, req.BetType, req.Amount, game.Secure)
	if err != nil {
		return betError(c, err)
	}

	return helpers.JSONSuccess(c, "Spin resolved", fiber.Map{
		"bet_id":   bet.ID,
		"bet_type": bet.BetType,
		"outcome":  bet.Outcome,
		"status":   bet.Status,
		"payout":   bet.Payout,
	})
}

// RecentRouletteOutcomes returns the last drawn numbers for display.
func RecentRouletteOutcomes(c *fiber.Ctx) error {
	var bets []models.RouletteBet
	if err := database.DB.Order("created_at DESC").Limit(10).Find(&bets).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_OUTCOMES")
	}

	outcomes := make([]string, 0, len(bets))
	for _, b := range bets {
		outcomes = append(outcomes, b.Outcome)
	}
	return helpers.JSONSuccess(c, "Recent outcomes", outcomes)
}
