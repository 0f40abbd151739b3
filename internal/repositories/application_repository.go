package repositories

import (
	"errors"

	"jobportal/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("job application not found")
	// ErrStaleStatus - статус изменился между чтением и записью
	ErrStaleStatus = errors.New("application status changed concurrently")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.JobApplication) error
	FindByID(db *gorm.DB, id string) (*models.JobApplication, error)
	FindAll(db *gorm.DB) ([]models.JobApplication, error)
	FindByJob(db *gorm.DB, jobID string) ([]models.JobApplication, error)
	FindByJobSeeker(db *gorm.DB, jobSeekerID string) ([]models.JobApplication, error)
	FindByJobAndStatus(db *gorm.DB, jobID string, status models.ApplicationStatus) ([]models.JobApplication, error)
	FindByJobSeekerAndStatus(db *gorm.DB, jobSeekerID string, status models.ApplicationStatus) ([]models.JobApplication, error)
	FindByStatus(db *gorm.DB, status models.ApplicationStatus) ([]models.JobApplication, error)
	FindByExperience(db *gorm.DB, experience string) ([]models.JobApplication, error)
	FindByDegree(db *gorm.DB, degree string) ([]models.JobApplication, error)
	ExistsPending(db *gorm.DB, jobSeekerID, jobID string) (bool, error)
	CountByJob(db *gorm.DB, jobID string) (int64, error)
	CountByJobAndStatus(db *gorm.DB, jobID string, status models.ApplicationStatus) (int64, error)
	UpdateStatus(db *gorm.DB, id string, from, to models.ApplicationStatus) error
	Delete(db *gorm.DB, id string) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

// Create возвращает ErrDuplicate, если сработал индекс ux_job_applications_pending
func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.JobApplication) error {
	return translateWriteError(db.Create(app).Error)
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobApplication, error) {
	var app models.JobApplication
	if err := db.First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) find(db *gorm.DB, query interface{}, args ...interface{}) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	tx := db
	if query != nil {
		tx = tx.Where(query, args...)
	}
	err := tx.Order("application_date DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindAll(db *gorm.DB) ([]models.JobApplication, error) {
	return r.find(db, nil)
}

func (r *ApplicationRepositoryImpl) FindByJob(db *gorm.DB, jobID string) ([]models.JobApplication, error) {
	return r.find(db, "job_id = ?", jobID)
}

func (r *ApplicationRepositoryImpl) FindByJobSeeker(db *gorm.DB, jobSeekerID string) ([]models.JobApplication, error) {
	return r.find(db, "job_seeker_id = ?", jobSeekerID)
}

func (r *ApplicationRepositoryImpl) FindByJobAndStatus(db *gorm.DB, jobID string, status models.ApplicationStatus) ([]models.JobApplication, error) {
	return r.find(db, "job_id = ? AND status = ?", jobID, status)
}

func (r *ApplicationRepositoryImpl) FindByJobSeekerAndStatus(db *gorm.DB, jobSeekerID string, status models.ApplicationStatus) ([]models.JobApplication, error) {
	return r.find(db, "job_seeker_id = ? AND status = ?", jobSeekerID, status)
}

func (r *ApplicationRepositoryImpl) FindByStatus(db *gorm.DB, status models.ApplicationStatus) ([]models.JobApplication, error) {
	return r.find(db, "status = ?", status)
}

func (r *ApplicationRepositoryImpl) FindByExperience(db *gorm.DB, experience string) ([]models.JobApplication, error) {
	return r.find(db, `LOWER(experience) LIKE ? ESCAPE '\'`, likePattern(experience))
}

func (r *ApplicationRepositoryImpl) FindByDegree(db *gorm.DB, degree string) ([]models.JobApplication, error) {
	return r.find(db, `LOWER(degree) LIKE ? ESCAPE '\'`, likePattern(degree))
}

func (r *ApplicationRepositoryImpl) ExistsPending(db *gorm.DB, jobSeekerID, jobID string) (bool, error) {
	var count int64
	err := db.Model(&models.JobApplication{}).
		Where("job_seeker_id = ? AND job_id = ? AND status = ?", jobSeekerID, jobID, models.ApplicationStatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) CountByJob(db *gorm.DB, jobID string) (int64, error) {
	var count int64
	err := db.Model(&models.JobApplication{}).Where("job_id = ?", jobID).Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountByJobAndStatus(db *gorm.DB, jobID string, status models.ApplicationStatus) (int64, error) {
	var count int64
	err := db.Model(&models.JobApplication{}).
		Where("job_id = ? AND status = ?", jobID, status).
		Count(&count).Error
	return count, err
}

// UpdateStatus меняет статус только если текущий все еще равен from
func (r *ApplicationRepositoryImpl) UpdateStatus(db *gorm.DB, id string, from, to models.ApplicationStatus) error {
	result := db.Model(&models.JobApplication{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return translateWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStaleStatus
	}
	return nil
}

func (r *ApplicationRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.JobApplication{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
