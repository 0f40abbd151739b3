package services

import (
	"context"
	"testing"

	"jobportal/database"
	"jobportal/internal/client"
	"jobportal/internal/models"
	"jobportal/internal/repositories"
	"jobportal/internal/services/dto"
	"jobportal/internal/testutil"
	"jobportal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type applicationFixture struct {
	db       *gorm.DB
	service  ApplicationService
	users    *testutil.FakeUserClient
	jobs     *testutil.FakeJobClient
	sender   *testutil.RecordingSender
	notifier *EmailNotificationService
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	f := &applicationFixture{
		db: testutil.NewTestDB(t, database.MigrateApplications),
		users: testutil.NewFakeUserClient(
			&client.UserRecord{ID: "seeker-1", Username: "seeker", Role: "JOB_SEEKER"},
			&client.UserRecord{ID: "seeker-2", Username: "seeker2", Role: "JOB_SEEKER"},
		),
		jobs: testutil.NewFakeJobClient(
			&client.JobRecord{ID: "job-1", CompanyName: "Acme", JobTitle: "Go Developer", HirerID: "hirer-1"},
			&client.JobRecord{ID: "job-2", CompanyName: "Other", JobTitle: "QA", HirerID: "hirer-1"},
		),
		sender: &testutil.RecordingSender{},
	}
	f.notifier = NewNotificationService(f.sender, f.jobs, 0)
	f.service = NewApplicationService(repositories.NewApplicationRepository(), f.users, f.jobs, f.notifier)
	return f
}

func validApplication() *dto.CreateApplicationRequest {
	return &dto.CreateApplicationRequest{
		JobID:       "job-1",
		JobSeekerID: "seeker-1",
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "+77011234567",
		Skills:      []string{"Go", " SQL ", ""},
		Experience:  "3 years",
		Degree:      "BSc Computer Science",
		CVURL:       "/uploads/cv/jane.pdf",
	}
}

func assertCode(t *testing.T, err error, code apperrors.ErrorCode) *apperrors.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func assertField(t *testing.T, err error, code apperrors.ErrorCode, field string) {
	t.Helper()
	appErr := assertCode(t, err, code)
	details, ok := appErr.Details.(map[string]string)
	require.True(t, ok, "details should be a string map, got %T", appErr.Details)
	if code == apperrors.CodeConflict {
		assert.Equal(t, field, details["field"])
		return
	}
	assert.Contains(t, details, field)
}

func TestCreateApplication_ThenRead(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	created, err := f.service.CreateApplication(ctx, f.db, validApplication())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := f.service.GetApplication(ctx, f.db, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "job-1", got.JobID)
	assert.Equal(t, "seeker-1", got.JobSeekerID)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "jane@example.com", got.Email)
	assert.Equal(t, []string{"Go", "SQL"}, []string(got.Skills))
	assert.Equal(t, "/uploads/cv/jane.pdf", got.CVURL)
	assert.Equal(t, models.ApplicationStatusPending, got.Status)
	assert.False(t, got.ApplicationDate.IsZero())
}

func TestCreateApplication_ValidationOrder(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		edit  func(req *dto.CreateApplicationRequest)
		field string
	}{
		{"everything empty reports jobId", func(r *dto.CreateApplicationRequest) { *r = dto.CreateApplicationRequest{} }, "jobId"},
		{"missing job seeker", func(r *dto.CreateApplicationRequest) { r.JobSeekerID = " " }, "jobSeekerId"},
		{"missing name before bad email", func(r *dto.CreateApplicationRequest) { r.Name = ""; r.Email = "nope" }, "name"},
		{"bad email", func(r *dto.CreateApplicationRequest) { r.Email = "not-an-email" }, "email"},
		{"bad phone", func(r *dto.CreateApplicationRequest) { r.Phone = "12-34" }, "phone"},
		{"blank skills", func(r *dto.CreateApplicationRequest) { r.Skills = []string{" ", ""} }, "skills"},
		{"missing experience", func(r *dto.CreateApplicationRequest) { r.Experience = "" }, "experience"},
		{"missing degree", func(r *dto.CreateApplicationRequest) { r.Degree = "" }, "degree"},
		{"bad cv url", func(r *dto.CreateApplicationRequest) { r.CVURL = "ftp://files/cv.pdf" }, "cvUrl"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validApplication()
			tc.edit(req)
			_, err := f.service.CreateApplication(ctx, f.db, req)
			assertField(t, err, apperrors.CodeValidation, tc.field)
		})
	}
}

func TestCreateApplication_DuplicatePendingConflicts(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateApplication(ctx, f.db, validApplication())
	require.NoError(t, err)

	_, err = f.service.CreateApplication(ctx, f.db, validApplication())
	assertField(t, err, apperrors.CodeConflict, "jobId")

	// другой соискатель на ту же вакансию - можно
	other := validApplication()
	other.JobSeekerID = "seeker-2"
	_, err = f.service.CreateApplication(ctx, f.db, other)
	assert.NoError(t, err)
}

func TestCreateApplication_ReapplyAfterTerminalStatus(t *testing.T) {
	for _, status := range []string{"REJECTED", "ACCEPTED"} {
		t.Run(status, func(t *testing.T) {
			f := newApplicationFixture(t)
			ctx := context.Background()

			first, err := f.service.CreateApplication(ctx, f.db, validApplication())
			require.NoError(t, err)
			_, err = f.service.UpdateStatus(ctx, f.db, first.ID, status)
			require.NoError(t, err)

			second, err := f.service.CreateApplication(ctx, f.db, validApplication())
			require.NoError(t, err)
			assert.NotEqual(t, first.ID, second.ID)

			f.notifier.Wait()
		})
	}
}

func TestCreateApplication_SiblingsFailClosed(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown job seeker", func(t *testing.T) {
		f := newApplicationFixture(t)
		req := validApplication()
		req.JobSeekerID = "ghost"
		_, err := f.service.CreateApplication(ctx, f.db, req)
		appErr := assertCode(t, err, apperrors.CodeNotFound)
		assert.Contains(t, appErr.Message, "Job seeker")
	})

	t.Run("job seeker checked before job", func(t *testing.T) {
		f := newApplicationFixture(t)
		req := validApplication()
		req.JobSeekerID = "ghost"
		req.JobID = "ghost-job"
		_, err := f.service.CreateApplication(ctx, f.db, req)
		appErr := assertCode(t, err, apperrors.CodeNotFound)
		assert.Contains(t, appErr.Message, "Job seeker")
	})

	t.Run("unknown job", func(t *testing.T) {
		f := newApplicationFixture(t)
		req := validApplication()
		req.JobID = "ghost-job"
		_, err := f.service.CreateApplication(ctx, f.db, req)
		appErr := assertCode(t, err, apperrors.CodeNotFound)
		assert.Contains(t, appErr.Message, "Job not found")
	})

	t.Run("user service down", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.users.Fail = true
		_, err := f.service.CreateApplication(ctx, f.db, validApplication())
		assertCode(t, err, apperrors.CodeNotFound)
	})

	t.Run("job service down", func(t *testing.T) {
		f := newApplicationFixture(t)
		f.jobs.Fail = true
		_, err := f.service.CreateApplication(ctx, f.db, validApplication())
		assertCode(t, err, apperrors.CodeNotFound)

		var count int64
		require.NoError(t, f.db.Model(&models.JobApplication{}).Count(&count).Error)
		assert.Zero(t, count, "nothing is persisted when a check fails")
	})
}

func TestUpdateStatus_Transitions(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	app, err := f.service.CreateApplication(ctx, f.db, validApplication())
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(ctx, f.db, app.ID, "approved")
	assertField(t, err, apperrors.CodeValidation, "status")

	updated, err := f.service.UpdateStatus(ctx, f.db, app.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, updated.Status)

	// из терминального статуса выхода нет
	_, err = f.service.UpdateStatus(ctx, f.db, app.ID, "REJECTED")
	assertCode(t, err, apperrors.CodeConflict)
	_, err = f.service.UpdateStatus(ctx, f.db, app.ID, "PENDING")
	assertCode(t, err, apperrors.CodeConflict)

	stored, err := f.service.GetApplication(ctx, f.db, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, stored.Status)

	_, err = f.service.UpdateStatus(ctx, f.db, "missing", "ACCEPTED")
	assertCode(t, err, apperrors.CodeNotFound)

	f.notifier.Wait()
}

func TestUpdateStatus_SendsEmailOnTerminalStatus(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	app, err := f.service.CreateApplication(ctx, f.db, validApplication())
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(ctx, f.db, app.ID, "REJECTED")
	require.NoError(t, err)
	f.notifier.Wait()

	sent := f.sender.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"jane@example.com"}, sent[0].To)
	assert.Equal(t, "Your application is rejected", sent[0].Subject)
	assert.Contains(t, sent[0].Body, "Go Developer")
	assert.Contains(t, sent[0].Body, "Acme")
}

func TestDeleteApplication(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	err := f.service.DeleteApplication(ctx, f.db, "missing")
	assertCode(t, err, apperrors.CodeNotFound)

	app, err := f.service.CreateApplication(ctx, f.db, validApplication())
	require.NoError(t, err)
	require.NoError(t, f.service.DeleteApplication(ctx, f.db, app.ID))

	_, err = f.service.GetApplication(ctx, f.db, app.ID)
	assertCode(t, err, apperrors.CodeNotFound)
}

func TestApplicationQueries(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	first, err := f.service.CreateApplication(ctx, f.db, validApplication())
	require.NoError(t, err)

	second := validApplication()
	second.JobSeekerID = "seeker-2"
	second.Name = "Bob"
	second.Skills = []string{"Java"}
	second.Experience = "Junior"
	second.Degree = "MSc Physics"
	secondApp, err := f.service.CreateApplication(ctx, f.db, second)
	require.NoError(t, err)

	third := validApplication()
	third.JobID = "job-2"
	_, err = f.service.CreateApplication(ctx, f.db, third)
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(ctx, f.db, secondApp.ID, "ACCEPTED")
	require.NoError(t, err)
	f.notifier.Wait()

	byJob, err := f.service.ByJob(ctx, f.db, "job-1", dto.ApplicationSort{SortBy: "name", SortDirection: "asc"})
	require.NoError(t, err)
	assert.Equal(t, []string{secondApp.ID, first.ID}, appIDs(byJob))

	_, err = f.service.ByJob(ctx, f.db, "ghost-job", dto.ApplicationSort{})
	assertCode(t, err, apperrors.CodeNotFound)

	bySeeker, err := f.service.ByJobSeeker(ctx, f.db, "seeker-1", dto.ApplicationSort{})
	require.NoError(t, err)
	assert.Len(t, bySeeker, 2)

	pending, err := f.service.ByJobAndStatus(ctx, f.db, "job-1", "pending", dto.ApplicationSort{})
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID}, appIDs(pending))

	_, err = f.service.ByStatus(ctx, f.db, "unknown", dto.ApplicationSort{})
	assertField(t, err, apperrors.CodeValidation, "status")

	bySkill, err := f.service.BySkill(ctx, f.db, "jav", dto.ApplicationSort{})
	require.NoError(t, err)
	assert.Equal(t, []string{secondApp.ID}, appIDs(bySkill))

	byDegree, err := f.service.ByDegree(ctx, f.db, "physics", dto.ApplicationSort{})
	require.NoError(t, err)
	assert.Equal(t, []string{secondApp.ID}, appIDs(byDegree))

	_, err = f.service.ByExperience(ctx, f.db, " ", dto.ApplicationSort{})
	assertField(t, err, apperrors.CodeValidation, "experience")

	found, err := f.service.Search(ctx, f.db, &dto.ApplicationFilter{Skill: "go", Status: "PENDING"})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	total, err := f.service.CountForJob(ctx, f.db, "job-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	pendingCount, err := f.service.PendingCountForJob(ctx, f.db, "job-1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, pendingCount)
}

func TestCanApply(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	assert.True(t, f.service.CanApply(ctx, f.db, "seeker-1", "job-1"))

	_, err := f.service.CreateApplication(ctx, f.db, validApplication())
	require.NoError(t, err)

	assert.False(t, f.service.CanApply(ctx, f.db, "seeker-1", "job-1"), "pending application blocks")
	assert.True(t, f.service.CanApply(ctx, f.db, "seeker-2", "job-1"))
	assert.False(t, f.service.CanApply(ctx, f.db, "ghost", "job-1"))
	assert.False(t, f.service.CanApply(ctx, f.db, "seeker-2", ""))

	f.jobs.Fail = true
	assert.False(t, f.service.CanApply(ctx, f.db, "seeker-2", "job-1"))
}

func TestJobSeekerQueries(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	onJob1, err := f.service.CreateApplication(ctx, f.db, validApplication())
	require.NoError(t, err)

	other := validApplication()
	other.JobID = "job-2"
	onJob2, err := f.service.CreateApplication(ctx, f.db, other)
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(ctx, f.db, onJob2.ID, "ACCEPTED")
	require.NoError(t, err)
	f.notifier.Wait()

	accepted, err := f.service.ByJobSeekerAndStatus(ctx, f.db, "seeker-1", "accepted", dto.ApplicationSort{})
	require.NoError(t, err)
	assert.Equal(t, []string{onJob2.ID}, appIDs(accepted))

	pending, err := f.service.ByJobSeekerAndStatus(ctx, f.db, "seeker-1", "PENDING", dto.ApplicationSort{})
	require.NoError(t, err)
	assert.Equal(t, []string{onJob1.ID}, appIDs(pending))

	_, err = f.service.ByJobSeekerAndStatus(ctx, f.db, "seeker-1", "bogus", dto.ApplicationSort{})
	assertField(t, err, apperrors.CodeValidation, "status")

	// соискатель подтверждается в user service
	_, err = f.service.ByJobSeeker(ctx, f.db, "ghost", dto.ApplicationSort{})
	assertCode(t, err, apperrors.CodeNotFound)

	_, err = f.service.ByJobSeekerAndStatus(ctx, f.db, "ghost", "PENDING", dto.ApplicationSort{})
	assertCode(t, err, apperrors.CodeNotFound)

	f.users.Fail = true
	_, err = f.service.ByJobSeeker(ctx, f.db, "seeker-1", dto.ApplicationSort{})
	assertCode(t, err, apperrors.CodeNotFound)
}

func TestSearch_FiltersCombineWithAnd(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	// опыт "3 years", степень "BSc Computer Science"
	senior, err := f.service.CreateApplication(ctx, f.db, validApplication())
	require.NoError(t, err)

	junior := validApplication()
	junior.JobSeekerID = "seeker-2"
	junior.Experience = "Junior"
	junior.Degree = "MSc Physics"
	juniorApp, err := f.service.CreateApplication(ctx, f.db, junior)
	require.NoError(t, err)

	found, err := f.service.Search(ctx, f.db, &dto.ApplicationFilter{Experience: "junior", Degree: "bsc"})
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = f.service.Search(ctx, f.db, &dto.ApplicationFilter{Experience: "junior", Degree: "msc"})
	require.NoError(t, err)
	assert.Equal(t, []string{juniorApp.ID}, appIDs(found))

	found, err = f.service.Search(ctx, f.db, &dto.ApplicationFilter{Degree: "bsc"})
	require.NoError(t, err)
	assert.Equal(t, []string{senior.ID}, appIDs(found))
}
