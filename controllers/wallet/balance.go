package wallet

import (
	"matka/database"
	"matka/helpers"
	"matka/models"

	"github.com/gofiber/fiber/v2"
)

func currentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals("user").(models.User)
	return user, ok
}

// Balance returns both wallets plus the recent ledger.
func Balance(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	var entries []models.UserTransaction
	if err := database.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").Limit(50).Find(&entries).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_TRANSACTIONS")
	}

	return helpers.JSONSuccess(c, "Balance retrieved successfully", fiber.Map{
		"balance":         helpers.Money(user.Balance),
		"winning_balance": helpers.Money(user.WinningBalance),
		"transactions":    entries,
	})
}
