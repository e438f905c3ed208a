package services

import (
	"errors"
	"fmt"

	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrNotFoundOrProcessed = errors.New("not found or already processed")
	ErrInternshipNotFound  = errors.New("internship not found")
	ErrApplicationNotFound = errors.New("application not found")
)

// Default and hard cap for admin list pages.
const (
	DefaultListLimit = 200
	MaxListLimit     = 500
)

// AdminService is the global moderation authority: it alone moves postings
// and applications out of pending, and every transition is guarded by a
// status='pending' predicate so the first writer wins.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

func (s *AdminService) Summary() (*dto.SummaryResponse, error) {
	var out dto.SummaryResponse
	if err := s.db.Model(&models.User{}).Where("role = ?", models.RoleStudent).Count(&out.Students).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.User{}).Where("role = ?", models.RoleEmployer).Count(&out.Employers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Internship{}).Count(&out.Internships).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Application{}).Count(&out.Applications).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AdminService) ListInternships(limit int) ([]dto.AdminInternshipRow, error) {
	limit = clampLimit(limit)
	var rows []dto.AdminInternshipRow
	err := s.db.Table("internships i").
		Select("i.id, i.title, i.location, i.status, e.id AS employer_id, u.name AS company_name").
		Joins("JOIN employers e ON e.id = i.employer_id").
		Joins("JOIN users u ON u.id = e.user_id").
		Order("i.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list internships: %w", err)
	}
	return rows, nil
}

func (s *AdminService) ListApplications(limit int) ([]dto.AdminApplicationRow, error) {
	limit = clampLimit(limit)
	var rows []dto.AdminApplicationRow
	err := s.db.Table("applications a").
		Select("a.id, a.status, a.applied_at, i.title, i.location, cu.name AS company_name, su.name AS student_name").
		Joins("JOIN internships i ON i.id = a.internship_id").
		Joins("JOIN employers e ON e.id = i.employer_id").
		Joins("JOIN users cu ON cu.id = e.user_id").
		Joins("JOIN students st ON st.id = a.student_id").
		Joins("JOIN users su ON su.id = st.user_id").
		Order("a.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return rows, nil
}

// ApproveInternship transitions a pending posting to approved and clears any
// prior rejection reason. A row that is missing or already processed yields
// ErrNotFoundOrProcessed and no write.
func (s *AdminService) ApproveInternship(id uint) error {
	return s.transition(&models.Internship{}, id, models.StatusApproved, nil)
}

func (s *AdminService) RejectInternship(id uint, reason *string) error {
	return s.transition(&models.Internship{}, id, models.StatusRejected, reason)
}

func (s *AdminService) ApproveApplication(id uint) error {
	return s.transition(&models.Application{}, id, models.StatusApproved, nil)
}

func (s *AdminService) RejectApplication(id uint, reason *string) error {
	return s.transition(&models.Application{}, id, models.StatusRejected, reason)
}

func (s *AdminService) transition(model interface{}, id uint, status models.Status, reason *string) error {
	var reasonValue interface{}
	if status == models.StatusRejected && reason != nil {
		reasonValue = *reason
	}
	result := s.db.Model(model).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{
			"status":           status,
			"rejection_reason": reasonValue,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFoundOrProcessed
	}
	return nil
}

func (s *AdminService) ListUsers() ([]dto.AdminUserRow, error) {
	var rows []dto.AdminUserRow
	err := s.db.Model(&models.User{}).
		Select("id, name, email, role, status").
		Where("role IN ?", []models.Role{models.RoleStudent, models.RoleEmployer}).
		Order("id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return rows, nil
}

func (s *AdminService) GetUserByID(id uint) (*dto.AdminUserRow, error) {
	var row dto.AdminUserRow
	err := s.db.Model(&models.User{}).
		Select("id, name, email, role, status").
		Where("id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &row, nil
}

func (s *AdminService) GetApplicationByID(id uint) (*dto.AdminApplicationDetail, error) {
	var row dto.AdminApplicationDetail
	err := s.db.Table("applications a").
		Select("a.id, a.status, a.applied_at, a.rejection_reason, i.title, i.location, "+
			"cu.name AS company_name, su.name AS student_name, su.email AS student_email").
		Joins("JOIN internships i ON i.id = a.internship_id").
		Joins("JOIN employers e ON e.id = i.employer_id").
		Joins("JOIN users cu ON cu.id = e.user_id").
		Joins("JOIN students st ON st.id = a.student_id").
		Joins("JOIN users su ON su.id = st.user_id").
		Where("a.id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}
	return &row, nil
}

func (s *AdminService) GetInternshipByID(id uint) (*dto.AdminInternshipDetail, error) {
	var row dto.AdminInternshipDetail
	err := s.db.Table("internships i").
		Select("i.id, i.title, i.location, i.status, i.rejection_reason, u.name AS company_name").
		Joins("JOIN employers e ON e.id = i.employer_id").
		Joins("JOIN users u ON u.id = e.user_id").
		Where("i.id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInternshipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch internship: %w", err)
	}
	return &row, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
