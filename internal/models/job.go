package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	CompanyName    string                      `gorm:"type:varchar(255);not null;index" json:"companyName"`
	JobTitle       string                      `gorm:"type:varchar(255);not null" json:"jobTitle"`
	ExpectedSalary *float64                    `json:"expectedSalary"`
	Preference     WorkPreference              `gorm:"type:varchar(16);not null" json:"preference"`
	RequiredSkills datatypes.JSONSlice[string] `json:"requiredSkills"`
	Experience     string                      `json:"experience"`
	WorkingHours   string                      `json:"workingHours"`
	Prerequisites  string                      `json:"prerequisites,omitempty"`
	HirerID        string                      `gorm:"type:varchar(36);not null;index" json:"hirerId"`
	PostedDate     time.Time                   `gorm:"not null;index" json:"postedDate"`
	UpdatedAt      time.Time                   `json:"updatedAt"`
}

func (Job) TableName() string {
	return "jobs"
}
