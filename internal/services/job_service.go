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

type JobService interface {
	CreateJob(ctx context.Context, db *gorm.DB, req *dto.JobRequest) (*models.Job, error)
	UpdateJob(ctx context.Context, db *gorm.DB, id string, req *dto.JobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, db *gorm.DB, id string) error
	GetJob(ctx context.Context, db *gorm.DB, id string) (*models.Job, error)
	ListJobs(ctx context.Context, db *gorm.DB) ([]models.Job, error)
	ListByHirer(ctx context.Context, db *gorm.DB, hirerID string) ([]models.Job, error)

	SearchByCompany(ctx context.Context, db *gorm.DB, company string) ([]models.Job, error)
	SearchByTitle(ctx context.Context, db *gorm.DB, title string) ([]models.Job, error)
	SearchByKeyword(ctx context.Context, db *gorm.DB, keyword string) ([]models.Job, error)
	SearchBySkill(ctx context.Context, db *gorm.DB, skill string) ([]models.Job, error)
	AdvancedSearch(ctx context.Context, db *gorm.DB, criteria *dto.AdvancedJobSearch) ([]models.Job, error)

	SortedByDate(ctx context.Context, db *gorm.DB, order string) ([]models.Job, error)
	SortedBySalary(ctx context.Context, db *gorm.DB, order string) ([]models.Job, error)
	SortedByCompany(ctx context.Context, db *gorm.DB) ([]models.Job, error)
	SearchAndSort(ctx context.Context, db *gorm.DB, query *dto.JobSearchSort) ([]models.Job, error)
}

type jobService struct {
	jobRepo    repositories.JobRepository
	userClient client.UserClient
}

func NewJobService(jobRepo repositories.JobRepository, userClient client.UserClient) JobService {
	return &jobService{
		jobRepo:    jobRepo,
		userClient: userClient,
	}
}

// validateJob проверяет поля в фиксированном порядке и возвращает первую ошибку
func validateJob(req *dto.JobRequest) (models.WorkPreference, error) {
	switch {
	case validator.IsBlank(req.CompanyName):
		return "", fieldError("job", "companyName", "Company name is required")
	case validator.IsBlank(req.JobTitle):
		return "", fieldError("job", "jobTitle", "Job title is required")
	case req.ExpectedSalary == nil || *req.ExpectedSalary <= 0:
		return "", fieldError("job", "expectedSalary", "Expected salary must be greater than 0")
	}

	preference, err := models.ParseWorkPreference(req.Preference)
	if err != nil {
		return "", fieldError("job", "preference", "Preference must be one of REMOTE, ONSITE, HYBRID")
	}

	switch {
	case !validator.HasNonBlankItem(req.RequiredSkills):
		return "", fieldError("job", "requiredSkills", "At least one required skill is needed")
	case validator.IsBlank(req.Experience):
		return "", fieldError("job", "experience", "Experience is required")
	case validator.IsBlank(req.WorkingHours):
		return "", fieldError("job", "workingHours", "Working hours are required")
	}
	return preference, nil
}

// authorizeHirer - владелец вакансии должен быть JOB_HIRER; ошибка запроса тоже означает отказ
func (s *jobService) authorizeHirer(ctx context.Context, hirerID string) error {
	if validator.IsBlank(hirerID) || !s.userClient.IsHirer(ctx, hirerID) {
		logger.CtxWarn(ctx, "Hirer check failed", "hirer_id", hirerID)
		return apperrors.Forbidden("job", "Only users with role JOB_HIRER can post jobs")
	}
	return nil
}

func applyJobRequest(job *models.Job, req *dto.JobRequest, preference models.WorkPreference) {
	salary := *req.ExpectedSalary
	job.CompanyName = strings.TrimSpace(req.CompanyName)
	job.JobTitle = strings.TrimSpace(req.JobTitle)
	job.ExpectedSalary = &salary
	job.Preference = preference
	job.RequiredSkills = validator.CleanItems(req.RequiredSkills)
	job.Experience = strings.TrimSpace(req.Experience)
	job.WorkingHours = strings.TrimSpace(req.WorkingHours)
	job.Prerequisites = strings.TrimSpace(req.Prerequisites)
	job.HirerID = strings.TrimSpace(req.HirerID)
}

func (s *jobService) CreateJob(ctx context.Context, db *gorm.DB, req *dto.JobRequest) (*models.Job, error) {
	preference, err := validateJob(req)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeHirer(ctx, req.HirerID); err != nil {
		return nil, err
	}

	job := &models.Job{PostedDate: time.Now().UTC()}
	applyJobRequest(job, req, preference)

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Job created", "job_id", job.ID, "hirer_id", job.HirerID)
	return job, nil
}

func (s *jobService) UpdateJob(ctx context.Context, db *gorm.DB, id string, req *dto.JobRequest) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		return nil, handleJobError(err, id)
	}

	preference, err := validateJob(req)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeHirer(ctx, req.HirerID); err != nil {
		return nil, err
	}

	applyJobRequest(job, req, preference)
	if err := s.jobRepo.Update(db, job); err != nil {
		return nil, handleJobError(err, id)
	}

	return s.GetJob(ctx, db, id)
}

func (s *jobService) DeleteJob(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.jobRepo.Delete(db, id); err != nil {
		return handleJobError(err, id)
	}
	logger.CtxInfo(ctx, "Job deleted", "job_id", id)
	return nil
}

func (s *jobService) GetJob(ctx context.Context, db *gorm.DB, id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		return nil, handleJobError(err, id)
	}
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context, db *gorm.DB) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *jobService) ListByHirer(ctx context.Context, db *gorm.DB, hirerID string) ([]models.Job, error) {
	if err := requireParam("job", "hirerId", hirerID); err != nil {
		return nil, err
	}
	jobs, err := s.jobRepo.FindByHirer(db, hirerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// ============================================================================
// Поиск
// ============================================================================

func (s *jobService) SearchByCompany(ctx context.Context, db *gorm.DB, company string) ([]models.Job, error) {
	if err := requireParam("job", "companyName", company); err != nil {
		return nil, err
	}
	jobs, err := s.jobRepo.FindByCompany(db, company)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *jobService) SearchByTitle(ctx context.Context, db *gorm.DB, title string) ([]models.Job, error) {
	if err := requireParam("job", "jobTitle", title); err != nil {
		return nil, err
	}
	jobs, err := s.jobRepo.FindByTitle(db, title)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *jobService) SearchByKeyword(ctx context.Context, db *gorm.DB, keyword string) ([]models.Job, error) {
	if err := requireParam("job", "keyword", keyword); err != nil {
		return nil, err
	}
	jobs, err := s.jobRepo.FindByKeyword(db, keyword)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// SearchBySkill - навыки хранятся JSON-списком, поэтому фильтруем в памяти
func (s *jobService) SearchBySkill(ctx context.Context, db *gorm.DB, skill string) ([]models.Job, error) {
	if err := requireParam("job", "skill", skill); err != nil {
		return nil, err
	}
	jobs, err := s.jobRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return filterJobs(jobs, func(job *models.Job) bool {
		return anyContains(job.RequiredSkills, []string{skill})
	}), nil
}

func (s *jobService) AdvancedSearch(ctx context.Context, db *gorm.DB, criteria *dto.AdvancedJobSearch) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	matched := filterJobs(jobs, func(job *models.Job) bool {
		return matchesAdvanced(job, criteria)
	})
	return SortJobs(matched, criteria.SortBy, criteria.SortOrder), nil
}

// matchesAdvanced - все заданные критерии через AND; незаданный критерий проходит всегда
func matchesAdvanced(job *models.Job, c *dto.AdvancedJobSearch) bool {
	if !validator.IsBlank(c.CompanyName) && !containsFold(job.CompanyName, c.CompanyName) {
		return false
	}
	if !validator.IsBlank(c.JobTitle) && !containsFold(job.JobTitle, c.JobTitle) {
		return false
	}
	if skills := validator.CleanItems(c.Skills); len(skills) > 0 && !anyContains(job.RequiredSkills, skills) {
		return false
	}
	// вакансия без зарплаты не проходит ни одну границу
	if c.MinSalary != nil && (job.ExpectedSalary == nil || *job.ExpectedSalary < *c.MinSalary) {
		return false
	}
	if c.MaxSalary != nil && (job.ExpectedSalary == nil || *job.ExpectedSalary > *c.MaxSalary) {
		return false
	}
	return true
}

// ============================================================================
// Сортировка
// ============================================================================

func (s *jobService) sortedAll(db *gorm.DB, sortBy, order string) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return SortJobs(jobs, sortBy, order), nil
}

func (s *jobService) SortedByDate(ctx context.Context, db *gorm.DB, order string) ([]models.Job, error) {
	return s.sortedAll(db, "date", order)
}

func (s *jobService) SortedBySalary(ctx context.Context, db *gorm.DB, order string) ([]models.Job, error) {
	return s.sortedAll(db, "salary", order)
}

func (s *jobService) SortedByCompany(ctx context.Context, db *gorm.DB) ([]models.Job, error) {
	return s.sortedAll(db, "company", "asc")
}

// SearchAndSort - первый заданный критерий в порядке keyword, company, title, skill
func (s *jobService) SearchAndSort(ctx context.Context, db *gorm.DB, q *dto.JobSearchSort) ([]models.Job, error) {
	var (
		jobs []models.Job
		err  error
	)
	switch {
	case !validator.IsBlank(q.Keyword):
		jobs, err = s.SearchByKeyword(ctx, db, q.Keyword)
	case !validator.IsBlank(q.Company):
		jobs, err = s.SearchByCompany(ctx, db, q.Company)
	case !validator.IsBlank(q.Title):
		jobs, err = s.SearchByTitle(ctx, db, q.Title)
	case !validator.IsBlank(q.Skill):
		jobs, err = s.SearchBySkill(ctx, db, q.Skill)
	default:
		jobs, err = s.ListJobs(ctx, db)
	}
	if err != nil {
		return nil, err
	}

	sortBy := q.SortBy
	if validator.IsBlank(sortBy) {
		sortBy = "date"
	}
	return SortJobs(jobs, sortBy, q.SortOrder), nil
}

// ============================================================================
// Вспомогательные функции
// ============================================================================

func filterJobs(jobs []models.Job, keep func(job *models.Job) bool) []models.Job {
	result := make([]models.Job, 0, len(jobs))
	for i := range jobs {
		if keep(&jobs[i]) {
			result = append(result, jobs[i])
		}
	}
	return result
}

func containsFold(value, term string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(strings.TrimSpace(term)))
}

// anyContains - хотя бы один элемент values содержит хотя бы один из terms
func anyContains(values []string, terms []string) bool {
	for _, value := range values {
		for _, term := range terms {
			if containsFold(value, term) {
				return true
			}
		}
	}
	return false
}
