package admin

import (
	"errors"

	"matka/database"
	"matka/helpers"
	"matka/models"
	"matka/services"

	"github.com/gofiber/fiber/v2"
)

// ListWithdrawals returns withdrawal requests, newest first.
func ListWithdrawals(c *fiber.Ctx) error {
	query := database.DB.Order("created_at DESC").Limit(200)
	if s := c.Query("status"); s != "" {
		query = query.Where("status = ?", s)
	}

	var withdrawals []models.Withdrawal
	if err := query.Find(&withdrawals).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_WITHDRAWALS")
	}
	return helpers.JSONSuccess(c, "Withdrawals", withdrawals)
}

type ResolveWithdrawalRequest struct {
	Action string `json:"action"` // approved or rejected
}

// ResolveWithdrawal finalizes a pending withdrawal; rejection refunds the
// held winning balance.
func ResolveWithdrawal(c *fiber.Ctx) error {
	var req ResolveWithdrawalRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_WITHDRAWAL_ID")
	}

	switch req.Action {
	case models.RequestApproved, models.RequestRejected:
	default:
		return helpers.JSONError(c, "ACTION_MUST_BE_APPROVED_OR_REJECTED")
	}

	err = services.ResolveWithdrawal(uint(id), req.Action == models.RequestApproved)
	if errors.Is(err, services.ErrNotPending) {
		return helpers.JSONError(c, "WITHDRAWAL_ALREADY_PROCESSED")
	}
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_RESOLVE_WITHDRAWAL")
	}

	return helpers.JSONSuccess(c, "Withdrawal "+req.Action, fiber.Map{"withdrawal_id": id})
}
