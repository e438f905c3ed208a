package services

import (
	"testing"

	"github.com/internlink/internlink-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproveInternshipFirstWriterWins(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	_, employer := seedEmployer(t, db, "hr@co.com")
	internship := seedInternship(t, db, employer.ID, models.StatusPending)

	require.NoError(t, svc.ApproveInternship(internship.ID))

	var stored models.Internship
	require.NoError(t, db.First(&stored, internship.ID).Error)
	assert.Equal(t, models.StatusApproved, stored.Status)
	assert.Nil(t, stored.RejectionReason)

	// Already processed: the pending predicate matches nothing.
	assert.ErrorIs(t, svc.ApproveInternship(internship.ID), ErrNotFoundOrProcessed)
	assert.ErrorIs(t, svc.RejectInternship(internship.ID, nil), ErrNotFoundOrProcessed)
}

func TestRejectInternshipStoresReason(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	_, employer := seedEmployer(t, db, "hr@co.com")
	internship := seedInternship(t, db, employer.ID, models.StatusPending)

	reason := "posting lacks a job description"
	require.NoError(t, svc.RejectInternship(internship.ID, &reason))

	var stored models.Internship
	require.NoError(t, db.First(&stored, internship.ID).Error)
	assert.Equal(t, models.StatusRejected, stored.Status)
	require.NotNil(t, stored.RejectionReason)
	assert.Equal(t, reason, *stored.RejectionReason)
}

func TestRejectInternshipReasonIsOptional(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	_, employer := seedEmployer(t, db, "hr@co.com")
	internship := seedInternship(t, db, employer.ID, models.StatusPending)

	require.NoError(t, svc.RejectInternship(internship.ID, nil))

	var stored models.Internship
	require.NoError(t, db.First(&stored, internship.ID).Error)
	assert.Equal(t, models.StatusRejected, stored.Status)
	assert.Nil(t, stored.RejectionReason)
}

func TestTransitionMissingRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	assert.ErrorIs(t, svc.ApproveInternship(42), ErrNotFoundOrProcessed)
	assert.ErrorIs(t, svc.ApproveApplication(42), ErrNotFoundOrProcessed)
}

func TestApplicationModerationGuardedByPending(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	_, employer := seedEmployer(t, db, "hr@co.com")
	_, student := seedStudent(t, db, "sara@uni.edu")
	internship := seedInternship(t, db, employer.ID, models.StatusApproved)
	application := seedApplication(t, db, student.ID, internship.ID, models.StatusPending)

	require.NoError(t, svc.ApproveApplication(application.ID))

	var stored models.Application
	require.NoError(t, db.First(&stored, application.ID).Error)
	assert.Equal(t, models.StatusApproved, stored.Status)

	reason := "position filled"
	assert.ErrorIs(t, svc.RejectApplication(application.ID, &reason), ErrNotFoundOrProcessed)
}

func TestSummaryCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	_, employer := seedEmployer(t, db, "hr@co.com")
	_, student := seedStudent(t, db, "sara@uni.edu")
	seedStudent(t, db, "omar@uni.edu")
	seedUser(t, db, "Admin", "admin@internlink.ae", "password1", models.RoleAdmin, models.StatusApproved)
	internship := seedInternship(t, db, employer.ID, models.StatusApproved)
	seedApplication(t, db, student.ID, internship.ID, models.StatusPending)

	summary, err := svc.Summary()
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Students)
	assert.Equal(t, int64(1), summary.Employers)
	assert.Equal(t, int64(1), summary.Internships)
	assert.Equal(t, int64(1), summary.Applications)
}

func TestListInternshipsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	employerUser, employer := seedEmployer(t, db, "hr@co.com")
	first := seedInternship(t, db, employer.ID, models.StatusPending)
	second := seedInternship(t, db, employer.ID, models.StatusApproved)

	rows, err := svc.ListInternships(0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second.ID, rows[0].ID)
	assert.Equal(t, first.ID, rows[1].ID)
	assert.Equal(t, employerUser.Name, rows[0].CompanyName)
}

func TestListApplicationsRespectsLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	_, employer := seedEmployer(t, db, "hr@co.com")
	internship := seedInternship(t, db, employer.ID, models.StatusApproved)
	for i := 0; i < 3; i++ {
		_, student := seedStudent(t, db, "s"+string(rune('a'+i))+"@uni.edu")
		seedApplication(t, db, student.ID, internship.ID, models.StatusPending)
	}

	rows, err := svc.ListApplications(2)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, clampLimit(0))
	assert.Equal(t, DefaultListLimit, clampLimit(-5))
	assert.Equal(t, 10, clampLimit(10))
	assert.Equal(t, MaxListLimit, clampLimit(MaxListLimit+1))
}

func TestListUsersExcludesAdmins(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	seedStudent(t, db, "sara@uni.edu")
	seedEmployer(t, db, "hr@co.com")
	seedUser(t, db, "Admin", "admin@internlink.ae", "password1", models.RoleAdmin, models.StatusApproved)

	rows, err := svc.ListUsers()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.NotEqual(t, "admin", row.Role)
	}
}

func TestAdminDetailLookups(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	employerUser, employer := seedEmployer(t, db, "hr@co.com")
	studentUser, student := seedStudent(t, db, "sara@uni.edu")
	internship := seedInternship(t, db, employer.ID, models.StatusApproved)
	application := seedApplication(t, db, student.ID, internship.ID, models.StatusPending)

	user, err := svc.GetUserByID(studentUser.ID)
	require.NoError(t, err)
	assert.Equal(t, studentUser.Email, user.Email)

	app, err := svc.GetApplicationByID(application.ID)
	require.NoError(t, err)
	assert.Equal(t, employerUser.Name, app.CompanyName)
	assert.Equal(t, studentUser.Name, app.StudentName)
	assert.Equal(t, studentUser.Email, app.StudentEmail)

	detail, err := svc.GetInternshipByID(internship.ID)
	require.NoError(t, err)
	assert.Equal(t, internship.Title, detail.Title)

	_, err = svc.GetUserByID(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = svc.GetApplicationByID(9999)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
	_, err = svc.GetInternshipByID(9999)
	assert.ErrorIs(t, err, ErrInternshipNotFound)
}
