package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/internlink/internlink-backend/internal/config"
	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongRole          = errors.New("forbidden for this role")
)

// Account-status codes returned on a 403 login.
const (
	CodeAccountPending  = "ACCOUNT_PENDING"
	CodeAccountRejected = "ACCOUNT_REJECTED"
	CodeAccountBlocked  = "ACCOUNT_BLOCKED"
)

// NotApprovedError is returned for valid credentials on an account whose
// status is not approved. Admins never hit it.
type NotApprovedError struct {
	Code            string
	Status          models.Status
	RejectionReason *string
}

func (e *NotApprovedError) Error() string {
	return "account not approved: " + e.Code
}

var passwordLetter = regexp.MustCompile(`[A-Za-z]`)
var passwordDigit = regexp.MustCompile(`\d`)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Login verifies credentials, applies the account-status gate (admins bypass)
// and issues a signed token. Unknown email and wrong password produce the
// same ErrInvalidCredentials so user existence does not leak.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.checkAccountStatus(&user); err != nil {
		return nil, err
	}

	studentID, employerID, err := s.resolveProfileIDs(&user)
	if err != nil {
		return nil, err
	}

	token, err := s.signToken(&user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User: dto.UserPayload{
			ID:              user.ID,
			Name:            user.Name,
			Email:           user.Email,
			Role:            string(user.Role),
			Status:          string(user.Status),
			RejectionReason: user.RejectionReason,
			StudentID:       studentID,
			EmployerID:      employerID,
		},
	}, nil
}

func (s *AuthService) checkAccountStatus(user *models.User) error {
	if user.Role == models.RoleAdmin {
		return nil
	}
	switch models.Status(strings.ToLower(strings.TrimSpace(string(user.Status)))) {
	case models.StatusApproved:
		return nil
	case models.StatusPending:
		return &NotApprovedError{Code: CodeAccountPending, Status: user.Status}
	case models.StatusRejected:
		return &NotApprovedError{
			Code:            CodeAccountRejected,
			Status:          user.Status,
			RejectionReason: user.RejectionReason,
		}
	default:
		return &NotApprovedError{Code: CodeAccountBlocked, Status: user.Status}
	}
}

func (s *AuthService) resolveProfileIDs(user *models.User) (*uint, *uint, error) {
	switch user.Role {
	case models.RoleStudent:
		var student models.Student
		err := s.db.Select("id").Where("user_id = ?", user.ID).First(&student).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve student profile: %w", err)
		}
		return &student.ID, nil, nil
	case models.RoleEmployer:
		var employer models.Employer
		err := s.db.Select("id").Where("user_id = ?", user.ID).First(&employer).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve employer profile: %w", err)
		}
		return nil, &employer.ID, nil
	}
	return nil, nil, nil
}

func (s *AuthService) signToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":   user.ID,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.JWTExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ChangePassword rotates the caller's password after re-verifying the current
// one. expectedRole keeps the student and employer endpoints role-scoped.
func (s *AuthService) ChangePassword(userID uint, expectedRole models.Role, req *dto.ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmPassword == "" {
		return errors.New("all fields are required")
	}
	if req.NewPassword != req.ConfirmPassword {
		return errors.New("new passwords do not match")
	}
	if len(req.NewPassword) < 8 || !passwordLetter.MatchString(req.NewPassword) || !passwordDigit.MatchString(req.NewPassword) {
		return errors.New("password must be at least 8 characters and include letters and numbers")
	}
	if req.NewPassword == req.CurrentPassword {
		return errors.New("new password must be different")
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user.Role != expectedRole {
		return ErrWrongRole
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return errors.New("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.db.Model(&models.User{}).Where("id = ?", userID).Update("password", string(hash)).Error
}
