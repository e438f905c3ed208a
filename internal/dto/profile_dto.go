package dto

// UpdateStudentProfileRequest fields are optional; empty values are ignored so
// a multipart form can send only what changed.
type UpdateStudentProfileRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	University string `json:"university"`
	Major      string `json:"major"`
}

type UpdateEmployerProfileRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type EmployerProfile struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	CompanyLogo *string `json:"company_logo"`
}

type StudentDashboard struct {
	UserID       uint    `json:"user_id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	StudentID    *uint   `json:"student_id"`
	University   *string `json:"university"`
	Major        *string `json:"major"`
	ProfileImage *string `json:"profile_image"`
	CVLink       *string `json:"cv_link"`
}

type EmployerDashboard struct {
	UserID      uint    `json:"user_id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	EmployerID  uint    `json:"employer_id"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	CompanyLogo *string `json:"company_logo"`
}
