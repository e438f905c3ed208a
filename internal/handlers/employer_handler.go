package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/models"
	"github.com/internlink/internlink-backend/internal/services"
	"github.com/internlink/internlink-backend/internal/storage"
	"github.com/internlink/internlink-backend/internal/validation"
)

type EmployerHandler struct {
	employerService *services.EmployerService
	authService     *services.AuthService
	store           *storage.Store
}

func NewEmployerHandler(employerService *services.EmployerService, authService *services.AuthService, store *storage.Store) *EmployerHandler {
	return &EmployerHandler{employerService: employerService, authService: authService, store: store}
}

// Register accepts a multipart form with an optional company logo. The
// display name may arrive as company_name, full_name or name.
func (h *EmployerHandler) Register(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("company_name"))
	if name == "" {
		name = strings.TrimSpace(c.FormValue("full_name"))
	}
	if name == "" {
		name = strings.TrimSpace(c.FormValue("name"))
	}

	req := dto.EmployerRegisterRequest{
		Name:        name,
		Email:       c.FormValue("email"),
		Password:    c.FormValue("password"),
		Location:    c.FormValue("location"),
		Description: c.FormValue("description"),
	}
	if err := validation.Struct(&req); err != nil {
		return badRequest(c, "Missing required fields")
	}

	logo, err := saveOptionalUpload(h.store, c, "logo")
	if err != nil {
		return uploadError(c, err)
	}

	userID, err := h.employerService.Register(&req, logo)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return badRequest(c, "Email already exists")
		}
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{
		Message: "Employer registered successfully",
		UserID:  userID,
	})
}

func (h *EmployerHandler) ApproveApplication(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return unauthorized(c)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid application id")
	}

	if err := h.employerService.ApproveApplication(user.ID, id); err != nil {
		return h.mapOwnershipError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Application approved successfully"})
}

func (h *EmployerHandler) RejectApplication(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return unauthorized(c)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid application id")
	}

	var req dto.RejectRequest
	_ = c.BodyParser(&req)

	if err := h.employerService.RejectApplication(user.ID, id, req.Reason); err != nil {
		if errors.Is(err, services.ErrReasonRequired) {
			return badRequest(c, "Rejection reason is required")
		}
		return h.mapOwnershipError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Application rejected successfully"})
}

func (h *EmployerHandler) ListInternshipApplications(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return unauthorized(c)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid internship id")
	}

	rows, err := h.employerService.ListInternshipApplications(user.ID, id)
	if err != nil {
		return h.mapOwnershipError(c, err)
	}
	return c.JSON(rows)
}

func (h *EmployerHandler) MyInternships(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return unauthorized(c)
	}
	rows, err := h.employerService.ListMyInternships(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrEmployerNotFound) {
			return notFound(c, "Employer not found")
		}
		return serverError(c)
	}
	return c.JSON(fiber.Map{"internships": rows})
}

func (h *EmployerHandler) Dashboard(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return unauthorized(c)
	}
	data, err := h.employerService.Dashboard(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrEmployerNotFound) {
			return notFound(c, "Employer not found")
		}
		return serverError(c)
	}
	return c.JSON(fiber.Map{
		"message": "Employer dashboard data retrieved",
		"data":    data,
	})
}

func (h *EmployerHandler) UpdateProfile(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return unauthorized(c)
	}

	req := dto.UpdateEmployerProfileRequest{
		Name:        c.FormValue("name"),
		Email:       c.FormValue("email"),
		Location:    c.FormValue("location"),
		Description: c.FormValue("description"),
	}

	logo, err := saveOptionalUpload(h.store, c, "company_logo")
	if err != nil {
		return uploadError(c, err)
	}

	profile, err := h.employerService.UpdateProfile(user.ID, &req, logo)
	if err != nil {
		if errors.Is(err, services.ErrEmailInUse) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "Email already in use",
			})
		}
		if errors.Is(err, services.ErrEmployerNotFound) {
			return notFound(c, "Employer not found")
		}
		return serverError(c)
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (h *EmployerHandler) ChangePassword(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return unauthorized(c)
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.authService.ChangePassword(user.ID, models.RoleEmployer, &req); err != nil {
		return mapPasswordError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Password updated successfully"})
}

func (h *EmployerHandler) mapOwnershipError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrEmployerNotFound):
		return forbidden(c, "Employer not found")
	case errors.Is(err, services.ErrUnauthorizedApplication):
		return forbidden(c, "Unauthorized or invalid application")
	case errors.Is(err, services.ErrNotInternshipOwner):
		return forbidden(c, "You do not own this internship")
	default:
		return serverError(c)
	}
}

func mapPasswordError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return notFound(c, "User not found")
	case errors.Is(err, services.ErrWrongRole):
		return forbidden(c, "Forbidden for this role")
	default:
		return badRequest(c, err.Error())
	}
}

func forbidden(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: true, Message: msg})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
}
