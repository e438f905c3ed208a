package models

import "time"

// Internship is a posting owned by exactly one employer. It is created in
// StatusPending and only the admin moderation flow moves it out of pending.
type Internship struct {
	ID                 uint     `gorm:"primaryKey" json:"id"`
	EmployerID         uint     `gorm:"not null;index" json:"employer_id"`
	Title              string   `gorm:"size:255;not null" json:"title"`
	Description        string   `gorm:"type:text;not null" json:"description"`
	Location           string   `gorm:"size:255;not null" json:"location"`
	Duration           string   `gorm:"size:100;not null" json:"duration"`
	Requirements       string   `gorm:"type:text" json:"requirements"`
	Industry           string   `gorm:"size:100;not null" json:"industry"`
	WorkMode           string   `gorm:"size:50;not null" json:"work_mode"`
	PaymentType        string   `gorm:"size:50;not null" json:"payment_type"`
	JobType            string   `gorm:"size:50;not null" json:"job_type"`
	StartDate          string   `gorm:"size:30;not null" json:"start_date"`
	Salary             string   `gorm:"size:100;default:'None'" json:"salary"`
	PositionsAvailable int      `gorm:"default:1" json:"positions_available"`
	Status             Status   `gorm:"size:20;not null;default:'pending'" json:"status"`
	RejectionReason    *string  `gorm:"size:500" json:"rejection_reason"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	Employer           Employer `gorm:"foreignKey:EmployerID" json:"-"`
}
