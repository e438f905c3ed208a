package services

import (
	"testing"

	"github.com/internlink/internlink-backend/internal/dto"
	"github.com/internlink/internlink-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createRequest() *dto.CreateInternshipRequest {
	return &dto.CreateInternshipRequest{
		Title:       "Backend Intern",
		Description: "Work on the backend",
		Location:    "Dubai",
		Duration:    "3 months",
		Industry:    "Technology",
		WorkMode:    "onsite",
		PaymentType: "paid",
		JobType:     "full-time",
		StartDate:   "2026-09-01",
	}
}

func TestCreateInternshipDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewInternshipService(db)
	employerUser, employer := seedEmployer(t, db, "hr@co.com")

	id, err := svc.Create(employerUser.ID, createRequest())
	require.NoError(t, err)

	var stored models.Internship
	require.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, employer.ID, stored.EmployerID)
	assert.Equal(t, "None", stored.Salary)
	assert.Equal(t, 1, stored.PositionsAvailable)
	// New postings always start in moderation, whatever the client sends.
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestCreateInternshipWithoutEmployerProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewInternshipService(db)
	user := seedUser(t, db, "Bare", "bare@co.com", "password1", models.RoleEmployer, models.StatusApproved)

	_, err := svc.Create(user.ID, createRequest())
	assert.ErrorIs(t, err, ErrEmployerNotFound)
}

func TestPublicListApprovedOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewInternshipService(db)
	employerUser, employer := seedEmployer(t, db, "hr@co.com")
	approved := seedInternship(t, db, employer.ID, models.StatusApproved)
	seedInternship(t, db, employer.ID, models.StatusPending)
	seedInternship(t, db, employer.ID, models.StatusRejected)

	rows, err := svc.PublicList()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, approved.ID, rows[0].ID)
	assert.Equal(t, employerUser.Name, rows[0].EmployerName)
}

func TestGetByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewInternshipService(db)
	_, employer := seedEmployer(t, db, "hr@co.com")
	internship := seedInternship(t, db, employer.ID, models.StatusPending)

	stored, err := svc.GetByID(internship.ID)
	require.NoError(t, err)
	assert.Equal(t, internship.Title, stored.Title)

	_, err = svc.GetByID(9999)
	assert.ErrorIs(t, err, ErrInternshipNotFound)
}

func TestUpdateInternshipPartialMerge(t *testing.T) {
	db := newTestDB(t)
	svc := NewInternshipService(db)
	employerUser, employer := seedEmployer(t, db, "hr@co.com")
	internship := seedInternship(t, db, employer.ID, models.StatusApproved)

	title := "Senior Backend Intern"
	positions := 5
	updated, err := svc.Update(employerUser.ID, internship.ID, &dto.UpdateInternshipRequest{
		Title:              &title,
		PositionsAvailable: &positions,
	})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, positions, updated.PositionsAvailable)
	// Omitted fields keep their stored values.
	assert.Equal(t, internship.Location, updated.Location)
	assert.Equal(t, internship.Status, updated.Status)
}

func TestUpdateInternshipCanSetStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewInternshipService(db)
	employerUser, employer := seedEmployer(t, db, "hr@co.com")
	internship := seedInternship(t, db, employer.ID, models.StatusRejected)

	status := "approved"
	updated, err := svc.Update(employerUser.ID, internship.ID, &dto.UpdateInternshipRequest{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)
}

func TestUpdateInternshipOwnershipRequired(t *testing.T) {
	db := newTestDB(t)
	svc := NewInternshipService(db)
	_, owner := seedEmployer(t, db, "owner@co.com")
	otherUser, _ := seedEmployer(t, db, "other@co.com")
	internship := seedInternship(t, db, owner.ID, models.StatusApproved)

	title := "hijacked"
	_, err := svc.Update(otherUser.ID, internship.ID, &dto.UpdateInternshipRequest{Title: &title})
	assert.ErrorIs(t, err, ErrNotInternshipOwner)

	noProfile := seedUser(t, db, "Bare", "bare@co.com", "password1", models.RoleEmployer, models.StatusApproved)
	_, err = svc.Update(noProfile.ID, internship.ID, &dto.UpdateInternshipRequest{Title: &title})
	assert.ErrorIs(t, err, ErrEmployerNotFound)
}
