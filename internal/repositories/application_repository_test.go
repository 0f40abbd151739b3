package repositories

import (
	"testing"
	"time"

	"jobportal/database"
	"jobportal/internal/models"
	"jobportal/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplication(jobID, seekerID string, appliedAt time.Time) *models.JobApplication {
	return &models.JobApplication{
		JobID:           jobID,
		JobSeekerID:     seekerID,
		Name:            "Jane",
		Email:           "jane@example.com",
		Phone:           "+77011234567",
		Experience:      "5 years of Go",
		Degree:          "BSc 100% Computer_Science",
		Status:          models.ApplicationStatusPending,
		ApplicationDate: appliedAt,
	}
}

func TestApplicationRepository_PendingIsUnique(t *testing.T) {
	db := testutil.NewTestDB(t, database.MigrateApplications)
	repo := NewApplicationRepository()
	now := time.Now().UTC()

	first := newApplication("job-1", "seeker-1", now)
	require.NoError(t, repo.Create(db, first))

	err := repo.Create(db, newApplication("job-1", "seeker-1", now))
	assert.ErrorIs(t, err, ErrDuplicate)

	// другой соискатель или другая вакансия - можно
	require.NoError(t, repo.Create(db, newApplication("job-1", "seeker-2", now)))
	require.NoError(t, repo.Create(db, newApplication("job-2", "seeker-1", now)))

	// после решения по первому отклику можно откликнуться снова
	require.NoError(t, repo.UpdateStatus(db, first.ID, models.ApplicationStatusPending, models.ApplicationStatusRejected))
	require.NoError(t, repo.Create(db, newApplication("job-1", "seeker-1", now)))

	count, err := repo.CountByJob(db, "job-1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	pending, err := repo.CountByJobAndStatus(db, "job-1", models.ApplicationStatusPending)
	require.NoError(t, err)
	assert.EqualValues(t, 2, pending)
}

func TestApplicationRepository_UpdateStatusIsConditional(t *testing.T) {
	db := testutil.NewTestDB(t, database.MigrateApplications)
	repo := NewApplicationRepository()

	app := newApplication("job-1", "seeker-1", time.Now().UTC())
	require.NoError(t, repo.Create(db, app))

	require.NoError(t, repo.UpdateStatus(db, app.ID, models.ApplicationStatusPending, models.ApplicationStatusAccepted))

	// второй писатель видел старый PENDING
	err := repo.UpdateStatus(db, app.ID, models.ApplicationStatusPending, models.ApplicationStatusRejected)
	assert.ErrorIs(t, err, ErrStaleStatus)

	stored, err := repo.FindByID(db, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, stored.Status)
}

func TestApplicationRepository_FindOrderAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t, database.MigrateApplications)
	repo := NewApplicationRepository()
	now := time.Now().UTC()

	older := newApplication("job-1", "seeker-1", now.Add(-time.Hour))
	newer := newApplication("job-1", "seeker-2", now)
	require.NoError(t, repo.Create(db, older))
	require.NoError(t, repo.Create(db, newer))

	apps, err := repo.FindByJob(db, "job-1")
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, newer.ID, apps[0].ID)

	found, err := repo.FindByDegree(db, "100%")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = repo.FindByDegree(db, "10_%")
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = repo.FindByExperience(db, "GO")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	require.NoError(t, repo.Delete(db, older.ID))
	assert.ErrorIs(t, repo.Delete(db, older.ID), ErrApplicationNotFound)
	_, err = repo.FindByID(db, older.ID)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, `%go%`, likePattern("  Go "))
	assert.Equal(t, `%100\%%`, likePattern("100%"))
	assert.Equal(t, `%a\_b%`, likePattern("a_b"))
	assert.Equal(t, `%c:\\dir%`, likePattern(`C:\dir`))
}
