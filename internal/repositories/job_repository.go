package repositories

import (
	"errors"

	"jobportal/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindAll(db *gorm.DB) ([]models.Job, error)
	FindByHirer(db *gorm.DB, hirerID string) ([]models.Job, error)
	FindByCompany(db *gorm.DB, company string) ([]models.Job, error)
	FindByTitle(db *gorm.DB, title string) ([]models.Job, error)
	FindByKeyword(db *gorm.DB, keyword string) ([]models.Job, error)
	Update(db *gorm.DB, job *models.Job) error
	Delete(db *gorm.DB, id string) error
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return translateWriteError(db.Create(job).Error)
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	if err := db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindAll(db *gorm.DB) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Order("posted_date DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByHirer(db *gorm.DB, hirerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("hirer_id = ?", hirerID).Order("posted_date DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByCompany(db *gorm.DB, company string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where(`LOWER(company_name) LIKE ? ESCAPE '\'`, likePattern(company)).
		Order("posted_date DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByTitle(db *gorm.DB, title string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where(`LOWER(job_title) LIKE ? ESCAPE '\'`, likePattern(title)).
		Order("posted_date DESC").Find(&jobs).Error
	return jobs, err
}

// FindByKeyword ищет по компании ИЛИ названию вакансии
func (r *JobRepositoryImpl) FindByKeyword(db *gorm.DB, keyword string) ([]models.Job, error) {
	var jobs []models.Job
	pattern := likePattern(keyword)
	err := db.Where(`LOWER(company_name) LIKE ? ESCAPE '\' OR LOWER(job_title) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("posted_date DESC").Find(&jobs).Error
	return jobs, err
}

// Update перезаписывает изменяемые поля; posted_date не трогаем
func (r *JobRepositoryImpl) Update(db *gorm.DB, job *models.Job) error {
	result := db.Model(&models.Job{}).Where("id = ?", job.ID).Updates(map[string]interface{}{
		"company_name":    job.CompanyName,
		"job_title":       job.JobTitle,
		"expected_salary": job.ExpectedSalary,
		"preference":      job.Preference,
		"required_skills": job.RequiredSkills,
		"experience":      job.Experience,
		"working_hours":   job.WorkingHours,
		"prerequisites":   job.Prerequisites,
		"hirer_id":        job.HirerID,
	})
	if result.Error != nil {
		return translateWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
