package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/models"
	"github.com/internlink/internlink-backend/internal/storage"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmployerNotFound        = errors.New("employer not found")
	ErrUnauthorizedApplication = errors.New("unauthorized or invalid application")
	ErrNotInternshipOwner      = errors.New("you do not own this internship")
	ErrReasonRequired          = errors.New("rejection reason is required")
	ErrEmailInUse              = errors.New("email already in use")
)

// EmployerService scopes every mutation to postings the caller's employer
// profile owns. The employer id is re-derived from the user id on each call;
// it is a correctness check, not plumbing.
type EmployerService struct {
	db *gorm.DB
}

func NewEmployerService(db *gorm.DB) *EmployerService {
	return &EmployerService{db: db}
}

// Register creates the user row and its employer profile together; both
// commit or neither does.
func (s *EmployerService) Register(req *dto.EmployerRegisterRequest, logo *string) (uint, error) {
	var existing models.User
	if err := s.db.Select("id").Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return 0, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		Password: string(hash),
		Role:     models.RoleEmployer,
		// Self-registration lands directly in approved; see DESIGN.md.
		Status: models.StatusApproved,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		employer := models.Employer{
			UserID:      user.ID,
			Location:    req.Location,
			CompanyLogo: logo,
			Description: req.Description,
		}
		if err := tx.Create(&employer).Error; err != nil {
			return fmt.Errorf("failed to create employer profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *EmployerService) resolveEmployerID(userID uint) (uint, error) {
	var employer models.Employer
	err := s.db.Select("id").Where("user_id = ?", userID).First(&employer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrEmployerNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve employer: %w", err)
	}
	return employer.ID, nil
}

// ownsApplication checks via the parent posting. A missing application and a
// foreign one are deliberately indistinguishable to the caller.
func (s *EmployerService) ownsApplication(employerID, applicationID uint) error {
	var count int64
	err := s.db.Table("applications a").
		Joins("JOIN internships i ON i.id = a.internship_id").
		Where("a.id = ? AND i.employer_id = ?", applicationID, employerID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to verify ownership: %w", err)
	}
	if count == 0 {
		return ErrUnauthorizedApplication
	}
	return nil
}

// ApproveApplication sets the application approved and clears any prior
// rejection reason. Unlike admin moderation there is no pending precondition:
// re-approving an approved row succeeds as a no-op.
func (s *EmployerService) ApproveApplication(userID, applicationID uint) error {
	employerID, err := s.resolveEmployerID(userID)
	if err != nil {
		return err
	}
	if err := s.ownsApplication(employerID, applicationID); err != nil {
		return err
	}
	return s.db.Model(&models.Application{}).
		Where("id = ?", applicationID).
		Updates(map[string]interface{}{
			"status":           models.StatusApproved,
			"rejection_reason": nil,
		}).Error
}

func (s *EmployerService) RejectApplication(userID, applicationID uint, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired
	}
	employerID, err := s.resolveEmployerID(userID)
	if err != nil {
		return err
	}
	if err := s.ownsApplication(employerID, applicationID); err != nil {
		return err
	}
	return s.db.Model(&models.Application{}).
		Where("id = ?", applicationID).
		Updates(map[string]interface{}{
			"status":           models.StatusRejected,
			"rejection_reason": reason,
		}).Error
}

// ListInternshipApplications returns the applicants on one of the caller's
// own postings, newest first.
func (s *EmployerService) ListInternshipApplications(userID, internshipID uint) ([]dto.InternshipApplicationRow, error) {
	employerID, err := s.resolveEmployerID(userID)
	if err != nil {
		return nil, err
	}

	var count int64
	err = s.db.Model(&models.Internship{}).
		Where("id = ? AND employer_id = ?", internshipID, employerID).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("failed to verify internship ownership: %w", err)
	}
	if count == 0 {
		return nil, ErrNotInternshipOwner
	}

	var rows []dto.InternshipApplicationRow
	err = s.db.Table("applications a").
		Select("a.id AS application_id, u.name AS student_name, u.email, st.university, st.major, "+
			"st.cv_link, a.status, a.rejection_reason, a.applied_at").
		Joins("JOIN students st ON st.id = a.student_id").
		Joins("JOIN users u ON u.id = st.user_id").
		Where("a.internship_id = ?", internshipID).
		Order("a.applied_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	for i := range rows {
		rows[i].CVLink = storage.StripCVPrefix(rows[i].CVLink)
	}
	return rows, nil
}

func (s *EmployerService) ListMyInternships(userID uint) ([]dto.EmployerInternshipRow, error) {
	employerID, err := s.resolveEmployerID(userID)
	if err != nil {
		return nil, err
	}

	var rows []dto.EmployerInternshipRow
	err = s.db.Table("internships i").
		Select("i.id, i.title, i.description, i.location, i.start_date, i.duration, i.requirements, "+
			"i.industry, i.work_mode, i.payment_type, i.job_type, i.salary, i.positions_available, "+
			"i.status, COUNT(a.id) AS applicants").
		Joins("LEFT JOIN applications a ON a.internship_id = i.id").
		Where("i.employer_id = ?", employerID).
		Group("i.id").
		Order("i.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list internships: %w", err)
	}
	return rows, nil
}

func (s *EmployerService) Dashboard(userID uint) (*dto.EmployerDashboard, error) {
	var row dto.EmployerDashboard
	err := s.db.Table("users u").
		Select("u.id AS user_id, u.name, u.email, u.role, e.id AS employer_id, "+
			"e.location, e.description, e.company_logo").
		Joins("JOIN employers e ON e.user_id = u.id").
		Where("u.id = ?", userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmployerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}
	return &row, nil
}

// UpdateProfile merges the provided fields into users and employers inside a
// transaction; omitted fields keep their stored value.
func (s *EmployerService) UpdateProfile(userID uint, req *dto.UpdateEmployerProfileRequest, logo *string) (*dto.EmployerProfile, error) {
	employerID, err := s.resolveEmployerID(userID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if req.Email != "" {
			var dup models.User
			err := tx.Select("id").Where("email = ? AND id <> ?", req.Email, userID).First(&dup).Error
			if err == nil {
				return ErrEmailInUse
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check email: %w", err)
			}
		}

		userUpdates := map[string]interface{}{}
		if req.Name != "" {
			userUpdates["name"] = req.Name
		}
		if req.Email != "" {
			userUpdates["email"] = req.Email
		}
		if len(userUpdates) > 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", userID).Updates(userUpdates).Error; err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}
		}

		employerUpdates := map[string]interface{}{}
		if req.Location != "" {
			employerUpdates["location"] = req.Location
		}
		if req.Description != "" {
			employerUpdates["description"] = req.Description
		}
		if logo != nil {
			employerUpdates["company_logo"] = *logo
		}
		if len(employerUpdates) > 0 {
			if err := tx.Model(&models.Employer{}).Where("id = ?", employerID).Updates(employerUpdates).Error; err != nil {
				return fmt.Errorf("failed to update employer: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var profile dto.EmployerProfile
	err = s.db.Table("users u").
		Select("u.name, u.email, e.location, e.description, e.company_logo").
		Joins("JOIN employers e ON e.user_id = u.id").
		Where("e.id = ?", employerID).
		Take(&profile).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &profile, nil
}
