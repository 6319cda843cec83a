package wallet

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"matka/database"
	"matka/helpers"
	"matka/models"
	"matka/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var upiPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+$`)

type WithdrawRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"` // upi or bank

	UpiID         string `json:"upi_id"`
	AccountNumber string `json:"account_number"`
	IfscCode      string `json:"ifsc_code"`
	BankName      string `json:"bank_name"`
}

// RequestWithdrawal queues a payout from the winning balance. The amount
// is held immediately; rejection returns it.
func RequestWithdrawal(c *fiber.Ctx) error {
	var req WithdrawRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	user, ok := currentUser(c)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	var details map[string]string
	switch req.Method {
	case "upi":
		if !upiPattern.MatchString(req.UpiID) {
			return helpers.JSONError(c, "INVALID_UPI_ID")
		}
		details = map[string]string{"upi_id": req.UpiID}
	case "bank":
		if strings.TrimSpace(req.AccountNumber) == "" || strings.TrimSpace(req.IfscCode) == "" {
			return helpers.JSONError(c, "BANK_DETAILS_REQUIRED")
		}
		details = map[string]string{
			"account_number": req.AccountNumber,
			"ifsc_code":      req.IfscCode,
			"bank_name":      req.BankName,
		}
	default:
		return helpers.JSONError(c, "INVALID_METHOD")
	}

	detailsJSON, _ := json.Marshal(details)
	withdrawal, err := services.RequestWithdrawal(user.ID, req.Amount, req.Method, detailsJSON)
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		return helpers.JSONError(c, "MINIMUM_WITHDRAWAL_IS_100")
	case errors.Is(err, services.ErrInsufficientFunds):
		return helpers.JSONError(c, "INSUFFICIENT_WINNING_BALANCE")
	case errors.Is(err, services.ErrOnCooldown):
		return helpers.JSONError(c, "ONE_WITHDRAWAL_PER_4_HOURS")
	case err != nil:
		return helpers.JSONError(c, "FAILED_TO_SUBMIT_WITHDRAWAL")
	}

	return helpers.JSONSuccess(c, "Withdrawal submitted for approval", fiber.Map{
		"withdrawal_id": withdrawal.ID,
		"amount":        withdrawal.Amount,
		"status":        withdrawal.Status,
	})
}

// MyWithdrawals lists the caller's withdrawal requests.
func MyWithdrawals(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	var withdrawals []models.Withdrawal
	if err := database.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").Limit(50).Find(&withdrawals).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_WITHDRAWALS")
	}
	return helpers.JSONSuccess(c, "Withdrawals", withdrawals)
}
