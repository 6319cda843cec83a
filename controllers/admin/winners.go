package admin

import (
	"errors"

	"matka/database"
	"matka/helpers"
	"matka/models"
	"matka/services"

	"github.com/gofiber/fiber/v2"
)

// ListWinners returns settlement-queued winner records, newest first.
func ListWinners(c *fiber.Ctx) error {
	query := database.DB.Order("created_at DESC").Limit(200)
	if s := c.Query("status"); s != "" {
		query = query.Where("status = ?", s)
	}

	var winners []models.Winner
	if err := query.Find(&winners).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_WINNERS")
	}
	return helpers.JSONSuccess(c, "Winners", winners)
}

// AnnounceWinner credits a pending winner's prize to their winning
// balance.
func AnnounceWinner(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_WINNER_ID")
	}

	err = services.AnnounceWinner(uint(id))
	if errors.Is(err, services.ErrNotPending) {
		return helpers.JSONError(c, "WINNER_ALREADY_PROCESSED")
	}
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_ANNOUNCE_WINNER")
	}

	return helpers.JSONSuccess(c, "Winner announced and credited", fiber.Map{"winner_id": id})
}
