package dto

type CreateInternshipRequest struct {
	Title              string `json:"title" validate:"required"`
	Description        string `json:"description" validate:"required"`
	Location           string `json:"location" validate:"required"`
	Duration           string `json:"duration" validate:"required"`
	Requirements       string `json:"requirements"`
	Industry           string `json:"industry" validate:"required"`
	WorkMode           string `json:"work_mode" validate:"required"`
	PaymentType        string `json:"payment_type" validate:"required"`
	JobType            string `json:"job_type" validate:"required"`
	StartDate          string `json:"start_date" validate:"required"`
	Salary             string `json:"salary"`
	PositionsAvailable int    `json:"positions_available"`
}

// UpdateInternshipRequest uses pointers so omitted fields keep their stored
// value (COALESCE merge, not a full replace).
type UpdateInternshipRequest struct {
	Title              *string `json:"title"`
	Description        *string `json:"description"`
	Location           *string `json:"location"`
	Duration           *string `json:"duration"`
	Requirements       *string `json:"requirements"`
	Industry           *string `json:"industry"`
	WorkMode           *string `json:"work_mode"`
	PaymentType        *string `json:"payment_type"`
	JobType            *string `json:"job_type"`
	StartDate          *string `json:"start_date"`
	Salary             *string `json:"salary"`
	PositionsAvailable *int    `json:"positions_available"`
	Status             *string `json:"status"`
}

type CreateInternshipResponse struct {
	Message      string `json:"message"`
	InternshipID uint   `json:"internship_id"`
}

// PublicInternship is a row of the public approved-only directory.
type PublicInternship struct {
	ID                 uint   `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	Location           string `json:"location"`
	Duration           string `json:"duration"`
	Industry           string `json:"industry"`
	Salary             string `json:"salary"`
	WorkMode           string `json:"work_mode"`
	PaymentType        string `json:"payment_type"`
	JobType            string `json:"job_type"`
	StartDate          string `json:"start_date"`
	PositionsAvailable int    `json:"positions_available"`
	EmployerName       string `json:"employer_name"`
}

// EmployerInternshipRow is one of the caller's own postings, with the number
// of applications received.
type EmployerInternshipRow struct {
	ID                 uint   `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	Location           string `json:"location"`
	StartDate          string `json:"start_date"`
	Duration           string `json:"duration"`
	Requirements       string `json:"requirements"`
	Industry           string `json:"industry"`
	WorkMode           string `json:"work_mode"`
	PaymentType        string `json:"payment_type"`
	JobType            string `json:"job_type"`
	Salary             string `json:"salary"`
	PositionsAvailable int    `json:"positions_available"`
	Status             string `json:"status"`
	Applicants         int64  `json:"applicants"`
}
