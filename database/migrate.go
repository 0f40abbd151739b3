package database

import (
	"fmt"
	"time"

	"jobportal/internal/config"
	"jobportal/internal/logger"
	"jobportal/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// pendingApplicationIndex закрывает гонку двух одновременных откликов:
// пара (job_id, job_seeker_id) уникальна среди PENDING.
const pendingApplicationIndex = `CREATE UNIQUE INDEX IF NOT EXISTS ux_job_applications_pending
ON job_applications (job_id, job_seeker_id) WHERE status = 'PENDING'`

// Connect открывает пул PostgreSQL по настройкам из конфига
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	}
	if cfg.Server.Env == "production" {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Error)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
	}
	if cfg.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}
	if cfg.Database.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Minute)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database unavailable: %w", err)
	}

	return db, nil
}

// MigrateUsers - схема user service
func MigrateUsers(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	logger.Info("Users schema migrated")
	return nil
}

// MigrateJobs - схема job service
func MigrateJobs(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Job{}); err != nil {
		return fmt.Errorf("migrate jobs: %w", err)
	}
	logger.Info("Jobs schema migrated")
	return nil
}

// MigrateApplications - схема application service вместе с частичным уникальным индексом
func MigrateApplications(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.JobApplication{}); err != nil {
		return fmt.Errorf("migrate job_applications: %w", err)
	}
	if err := db.Exec(pendingApplicationIndex).Error; err != nil {
		return fmt.Errorf("create pending application index: %w", err)
	}
	logger.Info("Applications schema migrated")
	return nil
}
