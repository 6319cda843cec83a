package helpers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func JSONSuccess(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JSONError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}

// Money normalizes an amount to the two decimal places the balance
// columns carry.
func Money(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}
