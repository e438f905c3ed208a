package dto

import "time"

type ApplyRequest struct {
	InternshipID uint `json:"internship_id"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

// StudentApplicationRow joins an application with its posting and employer
// display name for the student's own list.
type StudentApplicationRow struct {
	ApplicationID   uint      `json:"application_id"`
	Status          string    `json:"status"`
	AppliedAt       time.Time `json:"applied_at"`
	RejectionReason *string   `json:"rejection_reason"`
	InternshipID    uint      `json:"internship_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	StartDate       string    `json:"start_date"`
	EmployerName    string    `json:"employer_name"`
}

// InternshipApplicationRow is one applicant on a posting the employer owns.
type InternshipApplicationRow struct {
	ApplicationID   uint      `json:"application_id"`
	StudentName     string    `json:"student_name"`
	Email           string    `json:"email"`
	University      string    `json:"university"`
	Major           string    `json:"major"`
	CVLink          *string   `json:"cv_link"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejection_reason"`
	AppliedAt       time.Time `json:"applied_at"`
}
