package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/services"
	"github.com/internlink/internlink-backend/internal/validation"
)

type InternshipHandler struct {
	internshipService *services.InternshipService
}

func NewInternshipHandler(internshipService *services.InternshipService) *InternshipHandler {
	return &InternshipHandler{internshipService: internshipService}
}

func (h *InternshipHandler) Create(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return unauthorized(c)
	}

	var req dto.CreateInternshipRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return badRequest(c, validation.Message(err))
	}

	id, err := h.internshipService.Create(user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmployerNotFound) {
			return forbidden(c, "Employer not found")
		}
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateInternshipResponse{
		Message:      "Internship created successfully",
		InternshipID: id,
	})
}

// GetAll is the public directory: approved postings only, no auth.
func (h *InternshipHandler) GetAll(c *fiber.Ctx) error {
	rows, err := h.internshipService.PublicList()
	if err != nil {
		return serverError(c)
	}
	return c.JSON(fiber.Map{"internships": rows})
}

func (h *InternshipHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	internship, err := h.internshipService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrInternshipNotFound) {
			return notFound(c, "Not found")
		}
		return serverError(c)
	}
	return c.JSON(internship)
}

func (h *InternshipHandler) Update(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return unauthorized(c)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	var req dto.UpdateInternshipRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	internship, err := h.internshipService.Update(user.ID, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmployerNotFound):
			return forbidden(c, "Employer not found")
		case errors.Is(err, services.ErrNotInternshipOwner):
			return forbidden(c, "You do not own this internship")
		default:
			return serverError(c)
		}
	}
	return c.JSON(fiber.Map{
		"message":    "Internship updated",
		"internship": internship,
	})
}
