package models

import "time"

// Role is the closed set of account roles.
type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
)

// Status is the shared moderation state for accounts, internships and applications.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type User struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Name            string  `gorm:"size:255;not null" json:"name"`
	Email           string  `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password        string  `gorm:"not null" json:"-"`
	Role            Role    `gorm:"size:20;not null" json:"role"`
	Status          Status  `gorm:"size:20;not null;default:'pending'" json:"status"`
	RejectionReason *string `gorm:"size:500" json:"rejection_reason"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
