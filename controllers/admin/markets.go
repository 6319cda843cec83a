package admin

import (
	"errors"

	"matka/helpers"
	"matka/services"

	"github.com/gofiber/fiber/v2"
)

type PublishResultRequest struct {
	Number int `json:"number"`
}

// PublishMarketResult records today's number for a fixed-number market
// and settles its pending stakes.
func PublishMarketResult(c *fiber.Ctx) error {
	var req PublishResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_MARKET_ID")
	}

	result, err := services.PublishMarketResult(uint(id), req.Number)
	switch {
	case errors.Is(err, services.ErrMarketNotFound):
		return helpers.JSONError(c, "MARKET_NOT_FOUND")
	case errors.Is(err, services.ErrInvalidSelection):
		return helpers.JSONError(c, "NUMBER_MUST_BE_0_TO_99")
	case errors.Is(err, services.ErrDuplicateResult):
		return helpers.JSONError(c, "RESULT_ALREADY_PUBLISHED_TODAY")
	case err != nil:
		return helpers.JSONError(c, "FAILED_TO_PUBLISH_RESULT")
	}

	return helpers.JSONSuccess(c, "Result published and stakes settled", fiber.Map{
		"market_id":   result.MarketID,
		"market_name": result.MarketName,
		"number":      result.Number,
		"result_date": result.ResultDate,
	})
}
