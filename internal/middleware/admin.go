package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/models"
)

// AdminRequired gates the moderation surface on the DB-resolved role.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := UserFrom(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		if user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admins only",
			})
		}
		return c.Next()
	}
}
