package admin

import (
	"errors"

	"matka/database"
	"matka/helpers"
	"matka/models"
	"matka/services"

	"github.com/gofiber/fiber/v2"
)

// ListTopUps returns deposit requests, newest first, optionally filtered
// by status.
func ListTopUps(c *fiber.Ctx) error {
	query := database.DB.Order("created_at DESC").Limit(200)
	if s := c.Query("status"); s != "" {
		query = query.Where("status = ?", s)
	}

	var topUps []models.TopUp
	if err := query.Find(&topUps).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_TOPUPS")
	}
	return helpers.JSONSuccess(c, "Top-ups", topUps)
}

type ResolveTopUpRequest struct {
	Action string `json:"action"` // approved or rejected
	Reason string `json:"reason"`
}

// ResolveTopUp approves or rejects a pending deposit; approval credits
// the user's spendable balance.
func ResolveTopUp(c *fiber.Ctx) error {
	var req ResolveTopUpRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_TOPUP_ID")
	}

	switch req.Action {
	case models.RequestApproved, models.RequestRejected:
	default:
		return helpers.JSONError(c, "ACTION_MUST_BE_APPROVED_OR_REJECTED")
	}
	if req.Action == models.RequestRejected && req.Reason == "" {
		return helpers.JSONError(c, "REJECTION_REASON_REQUIRED")
	}

	err = services.ResolveTopUp(uint(id), req.Action == models.RequestApproved, req.Reason)
	if errors.Is(err, services.ErrNotPending) {
		return helpers.JSONError(c, "TOPUP_ALREADY_PROCESSED")
	}
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_RESOLVE_TOPUP")
	}

	return helpers.JSONSuccess(c, "Top-up "+req.Action, fiber.Map{"topup_id": id})
}
