package game

import (
	"errors"

	"matka/game"
	"matka/helpers"
	"matka/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var minWinGameStake = decimal.NewFromInt(10)

type WinGameBetRequest struct {
	Number int             `json:"number"`
	Amount decimal.Decimal `json:"amount"`
}

// PlaceWinGameBet stakes on one number of the 1-to-12 win game.
func PlaceWinGameBet(c *fiber.Ctx) error {
	var req WinGameBetRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	user, ok := currentUser(c)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	if req.Amount.LessThan(minWinGameStake) {
		return helpers.JSONError(c, "MINIMUM_BET_IS_10")
	}

	stake, err := services.PlaceStake(user.ID, game.WinGame, req.Number, req.Amount)
	if err != nil {
		return betError(c, err)
	}

	return helpers.JSONSuccess(c, "Bet placed successfully", fiber.Map{
		"stake_id": stake.ID,
		"round_id": stake.RoundID,
		"number":   stake.Selection,
		"amount":   stake.Amount,
	})
}

func betError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrInvalidSelection),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrRoundClosed),
		errors.Is(err, services.ErrAccountNotFound),
		errors.Is(err, services.ErrMarketNotFound):
		return helpers.JSONError(c, err.Error())
	}
	return helpers.JSONError(c, "FAILED_TO_PLACE_BET")
}
