package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SeanSun10/ProjectManager/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestStatsRepository_ProjectCostBucketsQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(CASE WHEN cost_type = \? THEN amount ELSE 0 END\), 0\) AS fixed`).
		WithArgs(models.CostTypeFixed, models.CostTypeHuman, models.CostTypeFixed, models.CostTypeHuman, uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"fixed", "human", "other"}).AddRow(100.0, 50.0, 25.0))

	buckets, err := repo.ProjectCostBuckets(7)
	require.NoError(t, err)
	require.Equal(t, 100.0, buckets.Fixed)
	require.Equal(t, 50.0, buckets.Human)
	require.Equal(t, 25.0, buckets.Other)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_ProjectTaskCountsQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery(`CASE WHEN status = 'in_progress' THEN 1 ELSE 0 END`).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"total", "in_progress", "completed"}).AddRow(3, 1, 1))

	counts, err := repo.ProjectTaskCounts(7)
	require.NoError(t, err)
	require.Equal(t, int64(3), counts.Total)
	require.Equal(t, int64(1), counts.InProgress)
	require.Equal(t, int64(1), counts.Completed)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_EmptyProjectSet(t *testing.T) {
	// No projects means no task queries run at all; the zero results
	// come straight back.
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Project{}, &models.Task{}))
	repo := NewStatsRepository(db)

	count, err := repo.CountTasksIn(nil, "done")
	require.NoError(t, err)
	require.Equal(t, int64(0), count)

	sums, err := repo.SumTaskHoursIn(nil)
	require.NoError(t, err)
	require.Equal(t, float64(0), sums.Estimated)
	require.Equal(t, float64(0), sums.Actual)

	statusCounts, err := repo.TaskStatusCounts(nil)
	require.NoError(t, err)
	require.Empty(t, statusCounts)
}
