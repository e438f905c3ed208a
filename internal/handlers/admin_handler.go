package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/services"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.adminService.Summary()
	if err != nil {
		return serverError(c)
	}
	return c.JSON(summary)
}

func (h *AdminHandler) ListInternships(c *fiber.Ctx) error {
	rows, err := h.adminService.ListInternships(c.QueryInt("limit", services.DefaultListLimit))
	if err != nil {
		return serverError(c)
	}
	return c.JSON(rows)
}

func (h *AdminHandler) ListApplications(c *fiber.Ctx) error {
	rows, err := h.adminService.ListApplications(c.QueryInt("limit", services.DefaultListLimit))
	if err != nil {
		return serverError(c)
	}
	return c.JSON(rows)
}

func (h *AdminHandler) ApproveInternship(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid internship id")
	}
	return h.respondTransition(c, h.adminService.ApproveInternship(id))
}

func (h *AdminHandler) RejectInternship(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid internship id")
	}
	var req dto.AdminRejectRequest
	_ = c.BodyParser(&req) // reason is optional
	return h.respondTransition(c, h.adminService.RejectInternship(id, req.Reason))
}

func (h *AdminHandler) ApproveApplication(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid application id")
	}
	return h.respondTransition(c, h.adminService.ApproveApplication(id))
}

func (h *AdminHandler) RejectApplication(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid application id")
	}
	var req dto.AdminRejectRequest
	_ = c.BodyParser(&req)
	return h.respondTransition(c, h.adminService.RejectApplication(id, req.Reason))
}

func (h *AdminHandler) respondTransition(c *fiber.Ctx, err error) error {
	if err != nil {
		if errors.Is(err, services.ErrNotFoundOrProcessed) {
			return badRequest(c, "Not found or already processed")
		}
		return serverError(c)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	rows, err := h.adminService.ListUsers()
	if err != nil {
		return serverError(c)
	}
	return c.JSON(rows)
}

func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}
	row, err := h.adminService.GetUserByID(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		return serverError(c)
	}
	return c.JSON(row)
}

func (h *AdminHandler) GetApplication(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid application id")
	}
	row, err := h.adminService.GetApplicationByID(id)
	if err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			return notFound(c, "Application not found")
		}
		return serverError(c)
	}
	return c.JSON(row)
}

func (h *AdminHandler) GetInternship(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid internship id")
	}
	row, err := h.adminService.GetInternshipByID(id)
	if err != nil {
		if errors.Is(err, services.ErrInternshipNotFound) {
			return notFound(c, "Internship not found")
		}
		return serverError(c)
	}
	return c.JSON(row)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: msg})
}

func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Server error",
	})
}
