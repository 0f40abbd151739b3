package models

import (
	"time"

	"gorm.io/datatypes"
)

// JobApplication - отклик соискателя на вакансию
type JobApplication struct {
	BaseModel
	JobID           string                      `gorm:"type:varchar(36);not null;index" json:"jobId"`
	JobSeekerID     string                      `gorm:"type:varchar(36);not null;index" json:"jobSeekerId"`
	Name            string                      `gorm:"type:varchar(255);not null" json:"name"`
	Email           string                      `gorm:"type:varchar(255);not null" json:"email"`
	Phone           string                      `gorm:"type:varchar(20);not null" json:"phone"`
	Skills          datatypes.JSONSlice[string] `json:"skills"`
	Experience      string                      `json:"experience"`
	Degree          string                      `json:"degree"`
	CVURL           string                      `gorm:"column:cv_url" json:"cvUrl,omitempty"`
	Status          ApplicationStatus           `gorm:"type:varchar(16);not null;default:PENDING;index" json:"status"`
	ApplicationDate time.Time                   `gorm:"not null;index" json:"applicationDate"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}
