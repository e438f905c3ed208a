package models

import "time"

// Application links one student to one internship. At most one row may exist
// per (student_id, internship_id) pair; the student service checks before
// inserting.
type Application struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	StudentID       uint       `gorm:"not null;index:idx_applications_student_internship" json:"student_id"`
	InternshipID    uint       `gorm:"not null;index:idx_applications_student_internship" json:"internship_id"`
	Status          Status     `gorm:"size:20;not null;default:'pending'" json:"status"`
	RejectionReason *string    `gorm:"size:500" json:"rejection_reason"`
	AppliedAt       time.Time  `gorm:"autoCreateTime" json:"applied_at"`
	Student         Student    `gorm:"foreignKey:StudentID" json:"-"`
	Internship      Internship `gorm:"foreignKey:InternshipID" json:"-"`
}
