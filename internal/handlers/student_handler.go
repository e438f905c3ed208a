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

type StudentHandler struct {
	studentService *services.StudentService
	authService    *services.AuthService
	store          *storage.Store
}

func NewStudentHandler(studentService *services.StudentService, authService *services.AuthService, store *storage.Store) *StudentHandler {
	return &StudentHandler{studentService: studentService, authService: authService, store: store}
}

// Register accepts a multipart form with optional cv (PDF) and profile_image
// uploads.
func (h *StudentHandler) Register(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("full_name"))
	if name == "" {
		name = strings.TrimSpace(c.FormValue("name"))
	}

	req := dto.StudentRegisterRequest{
		Name:       name,
		Email:      c.FormValue("email"),
		Password:   c.FormValue("password"),
		University: c.FormValue("university"),
		Major:      c.FormValue("major"),
	}
	if err := validation.Struct(&req); err != nil {
		return badRequest(c, "Missing required fields")
	}

	cv, err := saveOptionalUpload(h.store, c, "cv")
	if err != nil {
		return uploadError(c, err)
	}
	profileImage, err := saveOptionalUpload(h.store, c, "profile_image")
	if err != nil {
		return uploadError(c, err)
	}

	if _, err := h.studentService.Register(&req, cv, profileImage); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return badRequest(c, "Email already registered")
		}
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: "Account created. You can log in now.",
	})
}

func (h *StudentHandler) Apply(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return unauthorized(c)
	}

	var req dto.ApplyRequest
	_ = c.BodyParser(&req)
	if req.InternshipID < 1 {
		return badRequest(c, "Internship ID is required")
	}

	if err := h.studentService.Apply(user.ID, req.InternshipID); err != nil {
		if errors.Is(err, services.ErrStudentNotFound) {
			return notFound(c, "Student not found")
		}
		if errors.Is(err, services.ErrAlreadyApplied) {
			return badRequest(c, "Already applied to this internship")
		}
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: "Application submitted successfully",
	})
}

func (h *StudentHandler) Applications(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return unauthorized(c)
	}
	rows, err := h.studentService.Applications(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrStudentNotFound) {
			return notFound(c, "Student not found")
		}
		return serverError(c)
	}
	return c.JSON(fiber.Map{"applications": rows})
}

func (h *StudentHandler) Dashboard(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return unauthorized(c)
	}
	profile, err := h.studentService.Dashboard(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrStudentNotFound) {
			return notFound(c, "Student not found")
		}
		return serverError(c)
	}

	profile.CVLink = uploadURL(profile.CVLink)
	profile.ProfileImage = uploadURL(profile.ProfileImage)
	return c.JSON(fiber.Map{"profile": profile})
}

func (h *StudentHandler) UpdateProfile(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return unauthorized(c)
	}

	req := dto.UpdateStudentProfileRequest{
		Name:       c.FormValue("name"),
		Email:      c.FormValue("email"),
		University: c.FormValue("university"),
		Major:      c.FormValue("major"),
	}

	cv, err := saveOptionalUpload(h.store, c, "cv")
	if err != nil {
		return uploadError(c, err)
	}
	profileImage, err := saveOptionalUpload(h.store, c, "profile_image")
	if err != nil {
		return uploadError(c, err)
	}

	if err := h.studentService.UpdateProfile(user.ID, &req, cv, profileImage); err != nil {
		if errors.Is(err, services.ErrEmailInUse) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "Email already in use",
			})
		}
		return serverError(c)
	}
	return c.JSON(dto.MessageResponse{Message: "Profile updated"})
}

func (h *StudentHandler) ChangePassword(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return unauthorized(c)
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.authService.ChangePassword(user.ID, models.RoleStudent, &req); err != nil {
		return mapPasswordError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Password updated successfully"})
}

func uploadURL(name *string) *string {
	if name == nil || *name == "" {
		return name
	}
	url := "/uploads/" + *name
	return &url
}
