package game

import (
	"matka/database"
	"matka/helpers"
	"matka/models"
	"matka/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// ListMarkets returns the active fixed-number markets with their latest
// published result.
func ListMarkets(c *fiber.Ctx) error {
	var markets []models.Market
	if err := database.DB.Where("is_active = true").Order("name").Find(&markets).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_MARKETS")
	}

	out := make([]fiber.Map, 0, len(markets))
	for _, m := range markets {
		entry := fiber.Map{
			"id":          m.ID,
			"name":        m.Name,
			"result_time": m.ResultTime,
		}
		var last models.MarketResult
		if err := database.DB.Where("market_id = ?", m.ID).
			Order("result_date DESC").First(&last).Error; err == nil {
			entry["last_result"] = last.Number
			entry["last_result_date"] = last.ResultDate
		}
		out = append(out, entry)
	}

	return helpers.JSONSuccess(c, "Markets", out)
}

type MarketBetRequest struct {
	Number int             `json:"number"`
	Amount decimal.Decimal `json:"amount"`
}

// PlaceMarketBet stakes on a 0-99 number for today's result of a market.
func PlaceMarketBet(c *fiber.Ctx) error {
	var req MarketBetRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	user, ok := currentUser(c)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	marketID, err := c.ParamsInt("id")
	if err != nil || marketID <= 0 {
		return helpers.JSONError(c, "INVALID_MARKET_ID")
	}

	stake, err := services.PlaceMarketStake(user.ID, uint(marketID), req.Number, req.Amount)
	if err != nil {
		return betError(c, err)
	}

	return helpers.JSONSuccess(c, "Bet placed successfully", fiber.Map{
		"stake_id":  stake.ID,
		"market_id": marketID,
		"number":    stake.Selection,
		"amount":    stake.Amount,
	})
}

// MarketResults returns the last 30 published results for one market.
func MarketResults(c *fiber.Ctx) error {
	marketID, err := c.ParamsInt("id")
	if err != nil || marketID <= 0 {
		return helpers.JSONError(c, "INVALID_MARKET_ID")
	}

	var results []models.MarketResult
	if err := database.DB.Where("market_id = ?", marketID).
		Order("result_date DESC").Limit(30).Find(&results).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_RESULTS")
	}
	return helpers.JSONSuccess(c, "Market results", results)
}
