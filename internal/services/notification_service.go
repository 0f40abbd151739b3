package services

import (
	"context"
	"sync"
	"time"

	"jobportal/internal/client"
	"jobportal/internal/email"
	"jobportal/internal/logger"
	"jobportal/internal/models"
)

const defaultNotificationTimeout = 10 * time.Second

type NotificationService interface {
	// ApplicationStatusChanged отправляет письмо соискателю в фоне и сразу возвращается
	ApplicationStatusChanged(ctx context.Context, app *models.JobApplication)
}

type EmailNotificationService struct {
	sender    email.Sender
	jobClient client.JobClient
	timeout   time.Duration
	wg        sync.WaitGroup
}

func NewNotificationService(sender email.Sender, jobClient client.JobClient, timeout time.Duration) *EmailNotificationService {
	if timeout <= 0 {
		timeout = defaultNotificationTimeout
	}
	return &EmailNotificationService{
		sender:    sender,
		jobClient: jobClient,
		timeout:   timeout,
	}
}

func (s *EmailNotificationService) ApplicationStatusChanged(ctx context.Context, app *models.JobApplication) {
	if app == nil || app.Email == "" {
		return
	}
	snapshot := *app

	// Письмо не должно зависеть от отмены запроса, но ограничено своим таймаутом
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		s.send(sendCtx, &snapshot)
	}()
}

func (s *EmailNotificationService) send(ctx context.Context, app *models.JobApplication) {
	data := email.StatusChangeData{
		Name:          app.Name,
		Status:        string(app.Status),
		ApplicationID: app.ID,
	}
	if s.jobClient != nil {
		if job, ok := s.jobClient.GetJob(ctx, app.JobID); ok {
			data.JobTitle = job.JobTitle
			data.CompanyName = job.CompanyName
		}
	}

	msg, err := email.NewStatusChangeEmail(app.Email, data)
	if err != nil {
		logger.CtxWithError(ctx, "Failed to build status change email", err, "application_id", app.ID)
		return
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		logger.CtxWithError(ctx, "Failed to send status change email", err, "application_id", app.ID)
		return
	}
	logger.CtxInfo(ctx, "Status change email sent", "application_id", app.ID, "status", app.Status)
}

// Wait дожидается фоновых отправок (graceful shutdown и тесты)
func (s *EmailNotificationService) Wait() {
	s.wg.Wait()
}
