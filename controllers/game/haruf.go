package game

import (
	"matka/helpers"
	"matka/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// HarufBetRequest carries one slip: straight bets keyed by two-digit
// outcome, andar/bahar bets keyed by digit position.
type HarufBetRequest struct {
	Straight map[int]decimal.Decimal `json:"straight"`
	Andar    map[int]decimal.Decimal `json:"andar"`
	Bahar    map[int]decimal.Decimal `json:"bahar"`
}

// PlaceHarufBets expands the slip into per-outcome stakes and debits the
// total in one shot.
func PlaceHarufBets(c *fiber.Ctx) error {
	var req HarufBetRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	user, ok := currentUser(c)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	stakes, total, err := services.PlaceHarufStakes(user.ID, req.Straight, req.Andar, req.Bahar)
	if err != nil {
		return betError(c, err)
	}

	return helpers.JSONSuccess(c, "Bets placed successfully", fiber.Map{
		"round_id":     stakes[0].RoundID,
		"stake_count":  len(stakes),
		"total_amount": total,
		"ref_id":       stakes[0].RefID,
	})
}
