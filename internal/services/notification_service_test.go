package services

import (
	"context"
	"errors"
	"testing"

	"jobportal/internal/client"
	"jobportal/internal/models"
	"jobportal/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rejectedApplication() *models.JobApplication {
	return &models.JobApplication{
		BaseModel: models.BaseModel{ID: "app-1"},
		JobID:     "job-1",
		Name:      "Jane",
		Email:     "jane@example.com",
		Status:    models.ApplicationStatusRejected,
	}
}

func TestNotification_SendsWithJobDetails(t *testing.T) {
	sender := &testutil.RecordingSender{}
	jobs := testutil.NewFakeJobClient(&client.JobRecord{ID: "job-1", CompanyName: "Acme", JobTitle: "Go Developer"})
	svc := NewNotificationService(sender, jobs, 0)

	ctx, cancel := context.WithCancel(context.Background())
	svc.ApplicationStatusChanged(ctx, rejectedApplication())
	// отмена запроса не должна отменить письмо
	cancel()
	svc.Wait()

	sent := sender.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"jane@example.com"}, sent[0].To)
	assert.Equal(t, "Your application is rejected", sent[0].Subject)
	assert.Contains(t, sent[0].Body, "Go Developer")
	assert.Contains(t, sent[0].Body, "Acme")
}

func TestNotification_JobServiceDown(t *testing.T) {
	sender := &testutil.RecordingSender{}
	jobs := testutil.NewFakeJobClient()
	jobs.Fail = true
	svc := NewNotificationService(sender, jobs, 0)

	svc.ApplicationStatusChanged(context.Background(), rejectedApplication())
	svc.Wait()

	// письмо уходит и без данных вакансии
	assert.Len(t, sender.Sent(), 1)
}

func TestNotification_SkipsAndSurvivesErrors(t *testing.T) {
	sender := &testutil.RecordingSender{}
	svc := NewNotificationService(sender, nil, 0)

	app := rejectedApplication()
	app.Email = ""
	svc.ApplicationStatusChanged(context.Background(), app)
	svc.ApplicationStatusChanged(context.Background(), nil)
	svc.Wait()
	assert.Empty(t, sender.Sent())

	failing := &testutil.RecordingSender{Err: errors.New("smtp down")}
	svc = NewNotificationService(failing, nil, 0)
	assert.NotPanics(t, func() {
		svc.ApplicationStatusChanged(context.Background(), rejectedApplication())
		svc.Wait()
	})
}
