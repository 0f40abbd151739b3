package services

import (
	"context"
	"strings"
	"time"

	"jobportal/internal/client"
	"jobportal/internal/logger"
	"jobportal/internal/models"
	"jobportal/internal/repositories"
	"jobportal/internal/services/dto"
	"jobportal/internal/validator"
	"jobportal/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	CreateApplication(ctx context.Context, db *gorm.DB, req *dto.CreateApplicationRequest) (*models.JobApplication, error)
	GetApplication(ctx context.Context, db *gorm.DB, id string) (*models.JobApplication, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id, status string) (*models.JobApplication, error)
	DeleteApplication(ctx context.Context, db *gorm.DB, id string) error

	ByJob(ctx context.Context, db *gorm.DB, jobID string, sort dto.ApplicationSort) ([]models.JobApplication, error)
	ByJobSeeker(ctx context.Context, db *gorm.DB, jobSeekerID string, sort dto.ApplicationSort) ([]models.JobApplication, error)
	ByJobAndStatus(ctx context.Context, db *gorm.DB, jobID, status string, sort dto.ApplicationSort) ([]models.JobApplication, error)
	ByJobSeekerAndStatus(ctx context.Context, db *gorm.DB, jobSeekerID, status string, sort dto.ApplicationSort) ([]models.JobApplication, error)
	ByStatus(ctx context.Context, db *gorm.DB, status string, sort dto.ApplicationSort) ([]models.JobApplication, error)
	BySkill(ctx context.Context, db *gorm.DB, skill string, sort dto.ApplicationSort) ([]models.JobApplication, error)
	ByExperience(ctx context.Context, db *gorm.DB, experience string, sort dto.ApplicationSort) ([]models.JobApplication, error)
	ByDegree(ctx context.Context, db *gorm.DB, degree string, sort dto.ApplicationSort) ([]models.JobApplication, error)
	Search(ctx context.Context, db *gorm.DB, filter *dto.ApplicationFilter) ([]models.JobApplication, error)

	CountForJob(ctx context.Context, db *gorm.DB, jobID string) (int64, error)
	PendingCountForJob(ctx context.Context, db *gorm.DB, jobID string) (int64, error)
	CanApply(ctx context.Context, db *gorm.DB, jobSeekerID, jobID string) bool
}

type applicationService struct {
	appRepo    repositories.ApplicationRepository
	userClient client.UserClient
	jobClient  client.JobClient
	notifier   NotificationService
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	userClient client.UserClient,
	jobClient client.JobClient,
	notifier NotificationService,
) ApplicationService {
	return &applicationService{
		appRepo:    appRepo,
		userClient: userClient,
		jobClient:  jobClient,
		notifier:   notifier,
	}
}

// validateApplication - порядок проверок фиксирован, возвращается первая ошибка
func validateApplication(req *dto.CreateApplicationRequest) error {
	required := []struct {
		field string
		value string
	}{
		{"jobId", req.JobID},
		{"jobSeekerId", req.JobSeekerID},
		{"name", req.Name},
		{"email", req.Email},
		{"phone", req.Phone},
	}
	for _, r := range required {
		if validator.IsBlank(r.value) {
			return fieldError("application", r.field, r.field+" is required")
		}
	}

	switch {
	case !validator.IsEmail(req.Email):
		return fieldError("application", "email", "Invalid email format")
	case !validator.IsPhone(req.Phone):
		return fieldError("application", "phone", "Invalid phone number format")
	case !validator.HasNonBlankItem(req.Skills):
		return fieldError("application", "skills", "At least one skill is required")
	case validator.IsBlank(req.Experience):
		return fieldError("application", "experience", "experience is required")
	case validator.IsBlank(req.Degree):
		return fieldError("application", "degree", "degree is required")
	case !validator.IsBlank(req.CVURL) && !validator.IsCVURL(req.CVURL):
		return fieldError("application", "cvUrl", "CV URL must start with http://, https:// or /uploads/")
	}
	return nil
}

func (s *applicationService) CreateApplication(ctx context.Context, db *gorm.DB, req *dto.CreateApplicationRequest) (*models.JobApplication, error) {
	if err := validateApplication(req); err != nil {
		return nil, err
	}

	jobSeekerID := strings.TrimSpace(req.JobSeekerID)
	jobID := strings.TrimSpace(req.JobID)

	if !s.userClient.UserExists(ctx, jobSeekerID) {
		return nil, apperrors.NotFound("application", "Job seeker", jobSeekerID)
	}
	if !s.jobClient.JobExists(ctx, jobID) {
		return nil, apperrors.NotFound("application", "Job", jobID)
	}

	pending, err := s.appRepo.ExistsPending(db, jobSeekerID, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if pending {
		return nil, apperrors.Conflict("application", "jobId",
			"A pending application already exists for this job seeker and job")
	}

	app := &models.JobApplication{
		JobID:           jobID,
		JobSeekerID:     jobSeekerID,
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		Skills:          validator.CleanItems(req.Skills),
		Experience:      strings.TrimSpace(req.Experience),
		Degree:          strings.TrimSpace(req.Degree),
		CVURL:           strings.TrimSpace(req.CVURL),
		Status:          models.ApplicationStatusPending,
		ApplicationDate: time.Now().UTC(),
	}

	// Параллельный дубликат отсекает частичный уникальный индекс
	if err := s.appRepo.Create(db, app); err != nil {
		return nil, handleApplicationError(err, "")
	}

	logger.CtxInfo(ctx, "Application created", "application_id", app.ID, "job_id", jobID, "job_seeker_id", jobSeekerID)
	return app, nil
}

func (s *applicationService) GetApplication(ctx context.Context, db *gorm.DB, id string) (*models.JobApplication, error) {
	app, err := s.appRepo.FindByID(db, id)
	if err != nil {
		return nil, handleApplicationError(err, id)
	}
	return app, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, db *gorm.DB, id, status string) (*models.JobApplication, error) {
	newStatus, err := models.ParseApplicationStatus(status)
	if err != nil {
		return nil, fieldError("application", "status", "Status must be one of PENDING, ACCEPTED, REJECTED")
	}

	app, err := s.appRepo.FindByID(db, id)
	if err != nil {
		return nil, handleApplicationError(err, id)
	}
	if app.Status.IsTerminal() {
		return nil, apperrors.Conflict("application", "status",
			"Application is already "+string(app.Status)+" and its status can no longer change")
	}

	if err := s.appRepo.UpdateStatus(db, id, app.Status, newStatus); err != nil {
		return nil, handleApplicationError(err, id)
	}
	app.Status = newStatus

	logger.CtxInfo(ctx, "Application status updated", "application_id", id, "status", newStatus)
	if newStatus.IsTerminal() && s.notifier != nil {
		s.notifier.ApplicationStatusChanged(ctx, app)
	}
	return app, nil
}

func (s *applicationService) DeleteApplication(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.appRepo.Delete(db, id); err != nil {
		return handleApplicationError(err, id)
	}
	logger.CtxInfo(ctx, "Application deleted", "application_id", id)
	return nil
}

// ============================================================================
// Запросы
// ============================================================================

func (s *applicationService) confirmJob(ctx context.Context, jobID string) error {
	if err := requireParam("application", "jobId", jobID); err != nil {
		return err
	}
	if !s.jobClient.JobExists(ctx, jobID) {
		return apperrors.NotFound("application", "Job", jobID)
	}
	return nil
}

func (s *applicationService) confirmJobSeeker(ctx context.Context, jobSeekerID string) error {
	if err := requireParam("application", "jobSeekerId", jobSeekerID); err != nil {
		return err
	}
	if !s.userClient.UserExists(ctx, jobSeekerID) {
		return apperrors.NotFound("application", "Job seeker", jobSeekerID)
	}
	return nil
}

func parseStatusParam(status string) (models.ApplicationStatus, error) {
	if err := requireParam("application", "status", status); err != nil {
		return "", err
	}
	parsed, err := models.ParseApplicationStatus(status)
	if err != nil {
		return "", fieldError("application", "status", "Status must be one of PENDING, ACCEPTED, REJECTED")
	}
	return parsed, nil
}

func sorted(apps []models.JobApplication, err error, sort dto.ApplicationSort) ([]models.JobApplication, error) {
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return SortApplications(apps, sort.SortBy, sort.SortDirection), nil
}

func (s *applicationService) ByJob(ctx context.Context, db *gorm.DB, jobID string, sort dto.ApplicationSort) ([]models.JobApplication, error) {
	if err := s.confirmJob(ctx, jobID); err != nil {
		return nil, err
	}
	apps, err := s.appRepo.FindByJob(db, jobID)
	return sorted(apps, err, sort)
}

func (s *applicationService) ByJobSeeker(ctx context.Context, db *gorm.DB, jobSeekerID string, sort dto.ApplicationSort) ([]models.JobApplication, error) {
	if err := s.confirmJobSeeker(ctx, jobSeekerID); err != nil {
		return nil, err
	}
	apps, err := s.appRepo.FindByJobSeeker(db, jobSeekerID)
	return sorted(apps, err, sort)
}

func (s *applicationService) ByJobAndStatus(ctx context.Context, db *gorm.DB, jobID, status string, sort dto.ApplicationSort) ([]models.JobApplication, error) {
	parsed, err := parseStatusParam(status)
	if err != nil {
		return nil, err
	}
	if err := s.confirmJob(ctx, jobID); err != nil {
		return nil, err
	}
	apps, err := s.appRepo.FindByJobAndStatus(db, jobID, parsed)
	return sorted(apps, err, sort)
}

func (s *applicationService) ByJobSeekerAndStatus(ctx context.Context, db *gorm.DB, jobSeekerID, status string, sort dto.ApplicationSort) ([]models.JobApplication, error) {
	parsed, err := parseStatusParam(status)
	if err != nil {
		return nil, err
	}
	if err := s.confirmJobSeeker(ctx, jobSeekerID); err != nil {
		return nil, err
	}
	apps, err := s.appRepo.FindByJobSeekerAndStatus(db, jobSeekerID, parsed)
	return sorted(apps, err, sort)
}

func (s *applicationService) ByStatus(ctx context.Context, db *gorm.DB, status string, sort dto.ApplicationSort) ([]models.JobApplication, error) {
	parsed, err := parseStatusParam(status)
	if err != nil {
		return nil, err
	}
	apps, err := s.appRepo.FindByStatus(db, parsed)
	return sorted(apps, err, sort)
}

// BySkill - навыки лежат JSON-списком, фильтр в памяти по любому элементу
func (s *applicationService) BySkill(ctx context.Context, db *gorm.DB, skill string, sort dto.ApplicationSort) ([]models.JobApplication, error) {
	if err := requireParam("application", "skill", skill); err != nil {
		return nil, err
	}
	apps, err := s.appRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return SortApplications(filterApplications(apps, func(app *models.JobApplication) bool {
		return anyContains(app.Skills, []string{skill})
	}), sort.SortBy, sort.SortDirection), nil
}

func (s *applicationService) ByExperience(ctx context.Context, db *gorm.DB, experience string, sort dto.ApplicationSort) ([]models.JobApplication, error) {
	if err := requireParam("application", "experience", experience); err != nil {
		return nil, err
	}
	apps, err := s.appRepo.FindByExperience(db, experience)
	return sorted(apps, err, sort)
}

func (s *applicationService) ByDegree(ctx context.Context, db *gorm.DB, degree string, sort dto.ApplicationSort) ([]models.JobApplication, error) {
	if err := requireParam("application", "degree", degree); err != nil {
		return nil, err
	}
	apps, err := s.appRepo.FindByDegree(db, degree)
	return sorted(apps, err, sort)
}

// Search загружает все отклики и применяет заданные фильтры через AND
func (s *applicationService) Search(ctx context.Context, db *gorm.DB, filter *dto.ApplicationFilter) ([]models.JobApplication, error) {
	var status models.ApplicationStatus
	if !validator.IsBlank(filter.Status) {
		parsed, err := models.ParseApplicationStatus(filter.Status)
		if err != nil {
			return nil, fieldError("application", "status", "Status must be one of PENDING, ACCEPTED, REJECTED")
		}
		status = parsed
	}

	apps, err := s.appRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if !validator.IsBlank(filter.Skill) {
		apps = filterApplications(apps, func(app *models.JobApplication) bool {
			return anyContains(app.Skills, []string{filter.Skill})
		})
	}
	if !validator.IsBlank(filter.Experience) {
		apps = filterApplications(apps, func(app *models.JobApplication) bool {
			return containsFold(app.Experience, filter.Experience)
		})
	}
	if !validator.IsBlank(filter.Degree) {
		apps = filterApplications(apps, func(app *models.JobApplication) bool {
			return containsFold(app.Degree, filter.Degree)
		})
	}
	if status != "" {
		apps = filterApplications(apps, func(app *models.JobApplication) bool {
			return app.Status == status
		})
	}

	return SortApplications(apps, filter.SortBy, filter.SortDirection), nil
}

// ============================================================================
// Счетчики
// ============================================================================

func (s *applicationService) CountForJob(ctx context.Context, db *gorm.DB, jobID string) (int64, error) {
	if err := requireParam("application", "jobId", jobID); err != nil {
		return 0, err
	}
	count, err := s.appRepo.CountByJob(db, jobID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *applicationService) PendingCountForJob(ctx context.Context, db *gorm.DB, jobID string) (int64, error) {
	if err := requireParam("application", "jobId", jobID); err != nil {
		return 0, err
	}
	count, err := s.appRepo.CountByJobAndStatus(db, jobID, models.ApplicationStatusPending)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

// CanApply - любая ошибка по пути означает false
func (s *applicationService) CanApply(ctx context.Context, db *gorm.DB, jobSeekerID, jobID string) bool {
	if validator.IsBlank(jobSeekerID) || validator.IsBlank(jobID) {
		return false
	}
	if !s.userClient.UserExists(ctx, jobSeekerID) || !s.jobClient.JobExists(ctx, jobID) {
		return false
	}
	pending, err := s.appRepo.ExistsPending(db, jobSeekerID, jobID)
	if err != nil {
		logger.CtxWithError(ctx, "Pending application check failed", err, "job_id", jobID, "job_seeker_id", jobSeekerID)
		return false
	}
	return !pending
}

func filterApplications(apps []models.JobApplication, keep func(app *models.JobApplication) bool) []models.JobApplication {
	result := make([]models.JobApplication, 0, len(apps))
	for i := range apps {
		if keep(&apps[i]) {
			result = append(result, apps[i])
		}
	}
	return result
}
