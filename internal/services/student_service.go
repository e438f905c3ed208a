package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrAlreadyApplied  = errors.New("already applied to this internship")
)

type StudentService struct {
	db *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{db: db}
}

// Register creates the user row and its student profile together. A rejected
// duplicate email leaves no student row behind.
func (s *StudentService) Register(req *dto.StudentRegisterRequest, cv, profileImage *string) (uint, error) {
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
		Role:     models.RoleStudent,
		Status:   models.StatusApproved,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		student := models.Student{
			UserID:       user.ID,
			University:   req.University,
			Major:        req.Major,
			CVLink:       cv,
			ProfileImage: profileImage,
		}
		if err := tx.Create(&student).Error; err != nil {
			return fmt.Errorf("failed to create student profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *StudentService) resolveStudentID(userID uint) (uint, error) {
	var student models.Student
	err := s.db.Select("id").Where("user_id = ?", userID).First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrStudentNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve student: %w", err)
	}
	return student.ID, nil
}

// Apply inserts a new pending application unless one already exists for this
// (student, internship) pair.
func (s *StudentService) Apply(userID, internshipID uint) error {
	studentID, err := s.resolveStudentID(userID)
	if err != nil {
		return err
	}

	var count int64
	err = s.db.Model(&models.Application{}).
		Where("student_id = ? AND internship_id = ?", studentID, internshipID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check existing application: %w", err)
	}
	if count > 0 {
		return ErrAlreadyApplied
	}

	application := models.Application{
		StudentID:    studentID,
		InternshipID: internshipID,
		Status:       models.StatusPending,
	}
	if err := s.db.Create(&application).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (s *StudentService) Applications(userID uint) ([]dto.StudentApplicationRow, error) {
	studentID, err := s.resolveStudentID(userID)
	if err != nil {
		return nil, err
	}

	var rows []dto.StudentApplicationRow
	err = s.db.Table("applications a").
		Select("a.id AS application_id, a.status, a.applied_at, a.rejection_reason, "+
			"i.id AS internship_id, i.title, i.description, i.location, i.start_date, "+
			"u.name AS employer_name").
		Joins("JOIN internships i ON i.id = a.internship_id").
		Joins("JOIN employers e ON e.id = i.employer_id").
		Joins("JOIN users u ON u.id = e.user_id").
		Where("a.student_id = ?", studentID).
		Order("a.applied_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return rows, nil
}

func (s *StudentService) Dashboard(userID uint) (*dto.StudentDashboard, error) {
	var row dto.StudentDashboard
	err := s.db.Table("users u").
		Select("u.id AS user_id, u.name, u.email, u.role, st.id AS student_id, "+
			"st.university, st.major, st.profile_image, st.cv_link").
		Joins("LEFT JOIN students st ON st.user_id = u.id").
		Where("u.id = ?", userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}
	return &row, nil
}

// UpdateProfile merges the provided fields into users and students inside a
// transaction. A duplicate email belonging to another account aborts the
// whole update.
func (s *StudentService) UpdateProfile(userID uint, req *dto.UpdateStudentProfileRequest, cv, profileImage *string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
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

		studentUpdates := map[string]interface{}{}
		if req.University != "" {
			studentUpdates["university"] = req.University
		}
		if req.Major != "" {
			studentUpdates["major"] = req.Major
		}
		if cv != nil {
			studentUpdates["cv_link"] = *cv
		}
		if profileImage != nil {
			studentUpdates["profile_image"] = *profileImage
		}
		if len(studentUpdates) > 0 {
			if err := tx.Model(&models.Student{}).Where("user_id = ?", userID).Updates(studentUpdates).Error; err != nil {
				return fmt.Errorf("failed to update student: %w", err)
			}
		}
		return nil
	})
}
