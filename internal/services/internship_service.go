package services

import (
	"errors"
	"fmt"

	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/models"
	"gorm.io/gorm"
)

type InternshipService struct {
	db *gorm.DB
}

func NewInternshipService(db *gorm.DB) *InternshipService {
	return &InternshipService{db: db}
}

// Create inserts a posting owned by the caller's employer profile. Status is
// forced to pending regardless of anything the client sends.
func (s *InternshipService) Create(userID uint, req *dto.CreateInternshipRequest) (uint, error) {
	var employer models.Employer
	err := s.db.Select("id").Where("user_id = ?", userID).First(&employer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrEmployerNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve employer: %w", err)
	}

	salary := req.Salary
	if salary == "" {
		salary = "None"
	}
	positions := req.PositionsAvailable
	if positions <= 0 {
		positions = 1
	}

	internship := models.Internship{
		EmployerID:         employer.ID,
		Title:              req.Title,
		Description:        req.Description,
		Location:           req.Location,
		Duration:           req.Duration,
		Requirements:       req.Requirements,
		Industry:           req.Industry,
		WorkMode:           req.WorkMode,
		PaymentType:        req.PaymentType,
		JobType:            req.JobType,
		StartDate:          req.StartDate,
		Salary:             salary,
		PositionsAvailable: positions,
		Status:             models.StatusPending,
	}
	if err := s.db.Create(&internship).Error; err != nil {
		return 0, fmt.Errorf("failed to create internship: %w", err)
	}
	return internship.ID, nil
}

// PublicList returns the approved-only directory.
func (s *InternshipService) PublicList() ([]dto.PublicInternship, error) {
	var rows []dto.PublicInternship
	err := s.db.Table("internships i").
		Select("i.id, i.title, i.description, i.location, i.duration, i.industry, i.salary, "+
			"i.work_mode, i.payment_type, i.job_type, i.start_date, i.positions_available, "+
			"u.name AS employer_name").
		Joins("JOIN employers e ON e.id = i.employer_id").
		Joins("JOIN users u ON u.id = e.user_id").
		Where("i.status = ?", models.StatusApproved).
		Order("i.start_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list internships: %w", err)
	}
	return rows, nil
}

func (s *InternshipService) GetByID(id uint) (*models.Internship, error) {
	var internship models.Internship
	err := s.db.First(&internship, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInternshipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch internship: %w", err)
	}
	return &internship, nil
}

// Update applies a partial update to a posting the caller owns: each omitted
// field keeps its stored value. Status is merged like any other field; the
// moderation gate does not apply here (see DESIGN.md open questions).
func (s *InternshipService) Update(userID, id uint, req *dto.UpdateInternshipRequest) (*models.Internship, error) {
	var employer models.Employer
	err := s.db.Select("id").Where("user_id = ?", userID).First(&employer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmployerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve employer: %w", err)
	}

	var count int64
	err = s.db.Model(&models.Internship{}).
		Where("id = ? AND employer_id = ?", id, employer.ID).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("failed to verify ownership: %w", err)
	}
	if count == 0 {
		return nil, ErrNotInternshipOwner
	}

	updates := map[string]interface{}{}
	setIfPresent(updates, "title", req.Title)
	setIfPresent(updates, "description", req.Description)
	setIfPresent(updates, "location", req.Location)
	setIfPresent(updates, "duration", req.Duration)
	setIfPresent(updates, "requirements", req.Requirements)
	setIfPresent(updates, "industry", req.Industry)
	setIfPresent(updates, "work_mode", req.WorkMode)
	setIfPresent(updates, "payment_type", req.PaymentType)
	setIfPresent(updates, "job_type", req.JobType)
	setIfPresent(updates, "start_date", req.StartDate)
	setIfPresent(updates, "salary", req.Salary)
	setIfPresent(updates, "status", req.Status)
	if req.PositionsAvailable != nil {
		updates["positions_available"] = *req.PositionsAvailable
	}

	if len(updates) > 0 {
		err = s.db.Model(&models.Internship{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			return nil, fmt.Errorf("failed to update internship: %w", err)
		}
	}

	var internship models.Internship
	if err := s.db.First(&internship, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload internship: %w", err)
	}
	return &internship, nil
}

func setIfPresent(updates map[string]interface{}, column string, value *string) {
	if value != nil {
		updates[column] = *value
	}
}
