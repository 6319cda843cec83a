package middlewares

import (
	"matka/database"
	"matka/helpers"
	"matka/models"

	"github.com/gofiber/fiber/v2"
)

func UserAuthMiddleware(c *fiber.Ctx) error {
	sid := c.Get("X-Session-Token")
	if sid == "" {
		return helpers.JSONError(c, "SESSION_TOKEN_REQUIRED")
	}

	var session models.Session
	if err := database.DB.Preload("User").Where("sid = ?", sid).First(&session).Error; err != nil {
		return helpers.JSONError(c, "INVALID_SESSION")
	}
	if session.Expired() {
		return helpers.JSONError(c, "SESSION_EXPIRED")
	}
	if !session.User.IsActive {
		return helpers.JSONError(c, "ACCOUNT_DISABLED")
	}

	c.Locals("user", session.User)
	return c.Next()
}
