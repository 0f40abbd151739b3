package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel - строковый UUID-идентификатор, генерируется на стороне приложения
type BaseModel struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`
}

func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
