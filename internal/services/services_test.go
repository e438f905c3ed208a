package services

import (
	"testing"
	"time"

	"github.com/internlink/internlink-backend/internal/config"
	"github.com/internlink/internlink-backend/internal/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test. Max one open
// connection, otherwise each pooled connection would see its own empty
// :memory: database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Employer{},
		&models.Internship{},
		&models.Application{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:    "test-secret",
		JWTExpiry:    time.Hour,
		SupportEmail: "support@example.com",
	}
}

func seedUser(t *testing.T, db *gorm.DB, name, email, password string, role models.Role, status models.Status) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
		Status:   status,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedStudent(t *testing.T, db *gorm.DB, email string) (models.User, models.Student) {
	t.Helper()
	user := seedUser(t, db, "Student "+email, email, "password1", models.RoleStudent, models.StatusApproved)
	student := models.Student{
		UserID:     user.ID,
		University: "AUS",
		Major:      "Computer Science",
	}
	require.NoError(t, db.Create(&student).Error)
	return user, student
}

func seedEmployer(t *testing.T, db *gorm.DB, email string) (models.User, models.Employer) {
	t.Helper()
	user := seedUser(t, db, "Employer "+email, email, "password1", models.RoleEmployer, models.StatusApproved)
	employer := models.Employer{
		UserID:      user.ID,
		Location:    "Dubai",
		Description: "A company",
	}
	require.NoError(t, db.Create(&employer).Error)
	return user, employer
}

func seedInternship(t *testing.T, db *gorm.DB, employerID uint, status models.Status) models.Internship {
	t.Helper()
	internship := models.Internship{
		EmployerID:         employerID,
		Title:              "Backend Intern",
		Description:        "Work on the backend",
		Location:           "Dubai",
		Duration:           "3 months",
		Industry:           "Technology",
		WorkMode:           "onsite",
		PaymentType:        "paid",
		JobType:            "full-time",
		StartDate:          "2026-09-01",
		Salary:             "3000 AED",
		PositionsAvailable: 2,
		Status:             status,
	}
	require.NoError(t, db.Create(&internship).Error)
	return internship
}

func seedApplication(t *testing.T, db *gorm.DB, studentID, internshipID uint, status models.Status) models.Application {
	t.Helper()
	application := models.Application{
		StudentID:    studentID,
		InternshipID: internshipID,
		Status:       status,
	}
	require.NoError(t, db.Create(&application).Error)
	return application
}
