package models

// Employer is the role-specific profile row for a user with RoleEmployer.
type Employer struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	UserID      uint    `gorm:"not null;uniqueIndex" json:"user_id"`
	Location    string  `gorm:"size:255;not null" json:"location"`
	CompanyLogo *string `gorm:"size:255" json:"company_logo"`
	Description string  `gorm:"type:text;not null" json:"description"`
	User        User    `gorm:"foreignKey:UserID" json:"-"`
}
