package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SeanSun10/ProjectManager/internal/models"
	"github.com/SeanSun10/ProjectManager/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Sprint{},
		&models.TeamMember{},
		&models.ProjectMember{},
		&models.Task{},
		&models.CostRecord{},
		&models.Activity{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func countActivities(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Activity{}).Count(&count).Error)
	return count
}

func createTestProject(t *testing.T, db *gorm.DB, name, status string) *models.Project {
	t.Helper()
	project := &models.Project{
		Name:      name,
		Status:    status,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

func newActivityService(db *gorm.DB) *ActivityService {
	return NewActivityService(repository.NewActivityRepository(db))
}
