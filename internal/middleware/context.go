package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/models"
	"gorm.io/gorm"
)

const currentUserKey = "currentUser"

// CurrentUser re-reads the token's user from the database on every request,
// so a status change takes effect on the next call without a new login.
func CurrentUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid claims",
			})
		}

		idValue, ok := claims["id"].(float64)
		if !ok || idValue < 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid claims",
			})
		}

		var user models.User
		if err := db.First(&user, "id = ?", uint(idValue)).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}

		c.Locals(currentUserKey, &user)
		return c.Next()
	}
}

// UserFrom returns the resolved user, or nil outside the protected chain.
func UserFrom(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}

// SetUser is a test hook for handlers that expect a resolved user.
func SetUser(c *fiber.Ctx, user *models.User) {
	c.Locals(currentUserKey, user)
}
