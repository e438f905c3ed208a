package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserPayload `json:"user"`
}

// UserPayload is the identity block returned by login. StudentID/EmployerID
// carry the role-specific profile id and stay null when no profile row exists.
type UserPayload struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Role            string  `json:"role"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason"`
	StudentID       *uint   `json:"student_id"`
	EmployerID      *uint   `json:"employer_id"`
}

// NotApprovedResponse is the 403 body for valid credentials on an account
// whose status is not approved. Code is machine-readable.
type NotApprovedResponse struct {
	Code            string  `json:"code"`
	Message         string  `json:"message"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	Status          string  `json:"status,omitempty"`
}

type StudentRegisterRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	University string `json:"university" validate:"required"`
	Major      string `json:"major" validate:"required"`
}

type EmployerRegisterRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
