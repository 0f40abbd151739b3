package models

import "time"

type User struct {
	BaseModel
	Username     string   `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email        string   `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string   `gorm:"column:password;not null"`
	Role         UserRole `gorm:"type:varchar(20);not null;index"`
	Phone        string   `gorm:"type:varchar(20)"`
	CompanyName  string   `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsHirer() bool {
	return u.Role == UserRoleJobHirer
}
