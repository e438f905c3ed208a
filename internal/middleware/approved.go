package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-backend/internal/config"
	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/models"
)

// RequireApproved blocks protected operations for accounts whose status is
// not approved. Admins bypass the gate. The comparison is whitespace-trimmed
// and case-insensitive.
func RequireApproved(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := UserFrom(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if user.Role == models.RoleAdmin {
			return c.Next()
		}

		status := strings.ToLower(strings.TrimSpace(string(user.Status)))
		if status == string(models.StatusApproved) {
			return c.Next()
		}

		var msg string
		if status == string(models.StatusRejected) {
			msg = "Access denied. Your account was rejected"
			if user.RejectionReason != nil && *user.RejectionReason != "" {
				msg += ": " + *user.RejectionReason
			}
			msg += ". If you believe this is a mistake, contact " + cfg.SupportEmail + "."
		} else {
			msg = "Your account is pending approval. You'll get access once an admin approves it. Email: " + cfg.SupportEmail
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": msg,
			"status":  status,
		})
	}
}
