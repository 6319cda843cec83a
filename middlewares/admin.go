package middlewares

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"os"

	"github.com/gofiber/fiber/v2"
)

// AdminAuth guards the console endpoints with an HMAC signature over the
// admin code, keyed by the shared secret.
func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		signature := c.Get("X-Admin-Signature")
		if signature == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "SIGNATURE_REQUIRED",
			})
		}

		adminCode := os.Getenv("ADMIN_CODE")
		adminSecret := os.Getenv("ADMIN_SECRET")

		h := hmac.New(sha256.New, []byte(adminSecret))
		h.Write([]byte(adminCode + adminSecret))
		expected := hex.EncodeToString(h.Sum(nil))

		if subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "INVALID_SIGNATURE",
			})
		}

		return c.Next()
	}
}
