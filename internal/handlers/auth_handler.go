package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Email and password are required",
		})
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid credentials",
			})
		}
		var notApproved *services.NotApprovedError
		if errors.As(err, &notApproved) {
			return c.Status(fiber.StatusForbidden).JSON(dto.NotApprovedResponse{
				Code:            notApproved.Code,
				Message:         notApprovedMessage(notApproved.Code),
				RejectionReason: notApproved.RejectionReason,
				Status:          string(notApproved.Status),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Server error",
		})
	}

	return c.JSON(resp)
}

// Logout is stateless; the client discards its token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: "Logged out"})
}

func notApprovedMessage(code string) string {
	switch code {
	case services.CodeAccountPending:
		return "Your account is pending approval."
	case services.CodeAccountRejected:
		return "Your account was rejected."
	default:
		return "Your account is not approved yet."
	}
}
