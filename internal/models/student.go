package models

// Student is the role-specific profile row for a user with RoleStudent.
type Student struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	UserID       uint    `gorm:"not null;uniqueIndex" json:"user_id"`
	University   string  `gorm:"size:255;not null" json:"university"`
	Major        string  `gorm:"size:255;not null" json:"major"`
	CVLink       *string `gorm:"size:255" json:"cv_link"`
	ProfileImage *string `gorm:"size:255" json:"profile_image"`
	User         User    `gorm:"foreignKey:UserID" json:"-"`
}
