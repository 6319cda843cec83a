package user

import (
	"errors"
	"strings"
	"time"

	"matka/database"
	"matka/helpers"
	"matka/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	phone := strings.TrimSpace(req.Phone)
	if len(phone) < 10 {
		return helpers.JSONError(c, "INVALID_PHONE")
	}

	var existing models.User
	if err := database.DB.Where("phone = ?", phone).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "USER_ALREADY_EXISTS")
	}

	user := models.User{
		Phone:    phone,
		Name:     strings.TrimSpace(req.Name),
		IsActive: true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_REGISTER_USER")
	}

	session, err := openSession(user.ID)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_SESSION")
	}

	return helpers.JSONSuccess(c, "User registered successfully", fiber.Map{
		"user_id":       user.ID,
		"phone":         user.Phone,
		"session_token": session.SID,
		"expires_at":    session.ExpiresAt,
	})
}

type LoginRequest struct {
	Phone string `json:"phone"`
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	var user models.User
	err := database.DB.Where("phone = ? AND is_active = true", strings.TrimSpace(req.Phone)).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JSONError(c, "USER_NOT_FOUND")
	}
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOGIN")
	}

	session, err := openSession(user.ID)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_SESSION")
	}

	return helpers.JSONSuccess(c, "Logged in successfully", fiber.Map{
		"user_id":       user.ID,
		"session_token": session.SID,
		"expires_at":    session.ExpiresAt,
	})
}

func openSession(userID uint) (*models.Session, error) {
	session := models.Session{
		UserID:    userID,
		ExpiresAt: time.Now().Add(models.SessionTTL),
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}
