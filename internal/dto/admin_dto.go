package dto

import "time"

type SummaryResponse struct {
	Students     int64 `json:"students"`
	Employers    int64 `json:"employers"`
	Internships  int64 `json:"internships"`
	Applications int64 `json:"applications"`
}

type AdminInternshipRow struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	EmployerID  uint   `json:"employer_id"`
	CompanyName string `json:"company_name"`
}

type AdminApplicationRow struct {
	ID          uint      `json:"id"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	CompanyName string    `json:"company_name"`
	StudentName string    `json:"student_name"`
}

type AdminUserRow struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type AdminApplicationDetail struct {
	ID              uint      `json:"id"`
	Status          string    `json:"status"`
	AppliedAt       time.Time `json:"applied_at"`
	RejectionReason *string   `json:"rejection_reason"`
	Title           string    `json:"title"`
	Location        string    `json:"location"`
	CompanyName     string    `json:"company_name"`
	StudentName     string    `json:"student_name"`
	StudentEmail    string    `json:"student_email"`
}

type AdminInternshipDetail struct {
	ID              uint    `json:"id"`
	Title           string  `json:"title"`
	Location        string  `json:"location"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason"`
	CompanyName     string  `json:"company_name"`
}

// AdminRejectRequest carries the optional moderation reason.
type AdminRejectRequest struct {
	Reason *string `json:"reason"`
}
