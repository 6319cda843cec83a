package wallet

import (
	"errors"
	"strings"

	"matka/database"
	"matka/helpers"
	"matka/models"
	"matka/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type TopUpRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Message string          `json:"message"`
}

// RequestTopUp queues a deposit for admin review. The payment message is
// mandatory: it is the operator's only link to the actual transfer.
func RequestTopUp(c *fiber.Ctx) error {
	var req TopUpRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	user, ok := currentUser(c)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	if strings.TrimSpace(req.Message) == "" {
		return helpers.JSONError(c, "PAYMENT_MESSAGE_REQUIRED")
	}

	topUp, err := services.RequestTopUp(user.ID, req.Amount, strings.TrimSpace(req.Message))
	if errors.Is(err, services.ErrInvalidAmount) {
		return helpers.JSONError(c, "AMOUNT_MUST_BE_50_TO_1000000")
	}
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_SUBMIT_TOPUP")
	}

	return helpers.JSONSuccess(c, "Top-up submitted for approval", fiber.Map{
		"topup_id": topUp.ID,
		"amount":   topUp.Amount,
		"status":   topUp.Status,
	})
}

// MyTopUps lists the caller's deposit requests.
func MyTopUps(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	var topUps []models.TopUp
	if err := database.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").Limit(50).Find(&topUps).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_TOPUPS")
	}
	return helpers.JSONSuccess(c, "Top-ups", topUps)
}
