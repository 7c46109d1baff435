package database

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/SeanSun10/ProjectManager/internal/config"
	"github.com/SeanSun10/ProjectManager/internal/logger"
	"github.com/SeanSun10/ProjectManager/internal/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN())
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN())
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	logMode := gormlogger.Warn
	if cfg.Server.Mode == "debug" {
		logMode = gormlogger.Info
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(logMode),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Infof("database connection established (%s)", cfg.Database.Driver)
	return nil
}

func Migrate() error {
	logger.Infof("running database migrations")
	err := DB.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Sprint{},
		&models.TeamMember{},
		&models.ProjectMember{},
		&models.Task{},
		&models.CostRecord{},
		&models.Activity{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Infof("database migrations completed")
	return nil
}

// SeedAdmin creates the configured superuser if it does not exist yet.
func SeedAdmin(cfg *config.AdminConfig) error {
	if !cfg.Seed {
		return nil
	}

	var user models.User
	err := DB.Where("username = ?", cfg.Username).First(&user).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		Username:       cfg.Username,
		Email:          cfg.Email,
		HashedPassword: string(hashed),
		IsActive:       true,
		IsSuperuser:    true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	logger.Infof("seeded admin user %q", cfg.Username)
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
