package admin

import (
	"matka/database"
	"matka/helpers"
	"matka/models"

	"github.com/gofiber/fiber/v2"
)

// ListUsers returns users with pagination and an optional phone search.
func ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := database.DB.Model(&models.User{})
	if search := c.Query("search"); search != "" {
		query = query.Where("phone LIKE ? OR name LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).Find(&users).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_USERS")
	}

	return helpers.JSONSuccess(c, "Users", fiber.Map{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// ListRoundStakes returns all stakes of one round of one game, the view
// the console uses to inspect a round before or after settlement.
func ListRoundStakes(c *fiber.Ctx) error {
	gameKey := c.Query("game")
	roundID := c.QueryInt("round_id")
	if gameKey == "" || roundID <= 0 {
		return helpers.JSONError(c, "GAME_AND_ROUND_ID_REQUIRED")
	}

	var stakes []models.Stake
	if err := database.DB.Where("game = ? AND round_id = ?", gameKey, roundID).
		Order("created_at").Find(&stakes).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_STAKES")
	}
	return helpers.JSONSuccess(c, "Stakes", stakes)
}
