package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SeanSun10/ProjectManager/internal/models"
	"github.com/SeanSun10/ProjectManager/internal/repository"
	"github.com/SeanSun10/ProjectManager/internal/utils"
)

func newStatsService(db *gorm.DB) *StatsService {
	return NewStatsService(
		repository.NewProjectRepository(db),
		repository.NewStatsRepository(db),
		repository.NewActivityRepository(db),
	)
}

func createTestCost(t *testing.T, db *gorm.DB, projectID uint64, costType string, amount float64) {
	t.Helper()
	cost := &models.CostRecord{
		ProjectID:  projectID,
		RecordDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		CostType:   costType,
		Amount:     amount,
	}
	require.NoError(t, db.Create(cost).Error)
}

func createTestTask(t *testing.T, db *gorm.DB, projectID uint64, status string, estimated, actual float64) {
	t.Helper()
	task := &models.Task{
		ProjectID:      projectID,
		Title:          "task",
		Status:         status,
		EstimatedHours: estimated,
		ActualHours:    actual,
	}
	require.NoError(t, db.Create(task).Error)
}

func TestStatsService_ProjectCostStatsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)
	project := createTestProject(t, db, "Alpha", "IN_PROGRESS")

	stats, err := svc.ProjectCostStats(project.ID)
	require.NoError(t, err)
	require.Equal(t, float64(0), stats.Fixed)
	require.Equal(t, float64(0), stats.Human)
	require.Equal(t, float64(0), stats.Other)
}

func TestStatsService_ProjectCostStatsBuckets(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)
	project := createTestProject(t, db, "Alpha", "IN_PROGRESS")
	other := createTestProject(t, db, "Unrelated", "IN_PROGRESS")

	createTestCost(t, db, project.ID, models.CostTypeFixed, 100)
	createTestCost(t, db, project.ID, models.CostTypeHuman, 50)
	createTestCost(t, db, project.ID, "misc", 25)
	createTestCost(t, db, other.ID, models.CostTypeFixed, 999)

	stats, err := svc.ProjectCostStats(project.ID)
	require.NoError(t, err)
	require.Equal(t, float64(100), stats.Fixed)
	require.Equal(t, float64(50), stats.Human)
	require.Equal(t, float64(25), stats.Other)
}

func TestStatsService_ProjectCostStatsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)

	_, err := svc.ProjectCostStats(42)
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestStatsService_ProjectStats(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)
	project := createTestProject(t, db, "Alpha", "IN_PROGRESS")

	// "done" counts toward the total here but not toward completed;
	// the per-project counter matches the literal "completed".
	createTestTask(t, db, project.ID, "completed", 8, 10)
	createTestTask(t, db, project.ID, "in_progress", 4, 2)
	createTestTask(t, db, project.ID, "done", 3, 3)

	createTestCost(t, db, project.ID, models.CostTypeFixed, 100)
	createTestCost(t, db, project.ID, models.CostTypeHuman, 50)
	createTestCost(t, db, project.ID, "misc", 25)

	stats, err := svc.ProjectStats(project.ID)
	require.NoError(t, err)

	require.Equal(t, int64(3), stats.TaskStats.Total)
	require.Equal(t, int64(1), stats.TaskStats.InProgress)
	require.Equal(t, int64(1), stats.TaskStats.Completed)

	require.Equal(t, float64(15), stats.TimeStats.Estimated)
	require.Equal(t, float64(15), stats.TimeStats.Actual)

	// Two buckets only; the misc amount is absent from this view.
	require.Equal(t, float64(100), stats.CostStats.Fixed)
	require.Equal(t, float64(50), stats.CostStats.Human)
}

func TestStatsService_SystemStatistics(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)

	// Status is matched literally; only the lowercase "active" row
	// counts as active.
	beta := createTestProject(t, db, "Beta", "active")
	gamma := createTestProject(t, db, "Gamma", "IN_PROGRESS")

	createTestTask(t, db, beta.ID, "done", 5, 4)
	createTestTask(t, db, beta.ID, "done", 3, 3)
	createTestTask(t, db, beta.ID, "in_progress", 8, 2)
	createTestTask(t, db, gamma.ID, "todo", 2, 0)

	stats, err := svc.SystemStatistics()
	require.NoError(t, err)

	require.Equal(t, int64(2), stats.ProjectCount)
	require.Equal(t, int64(1), stats.ActiveProjectCount)
	require.Equal(t, int64(4), stats.TotalTasks)
	require.Equal(t, int64(2), stats.CompletedTasks)
	require.Equal(t, int64(1), stats.InProgressTasks)
	require.Equal(t, float64(18), stats.TotalEstimatedHours)
	require.Equal(t, float64(9), stats.TotalActualHours)

	byStatus := map[string]float64{}
	var sum float64
	for _, d := range stats.StatusDistribution {
		byStatus[d.Status] = d.Percentage
		sum += d.Percentage
	}
	require.Equal(t, float64(50), byStatus["done"])
	require.Equal(t, float64(25), byStatus["in_progress"])
	require.Equal(t, float64(25), byStatus["todo"])
	require.InDelta(t, 100, sum, 0.02)
}

func TestStatsService_SystemStatisticsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)

	stats, err := svc.SystemStatistics()
	require.NoError(t, err)

	require.Equal(t, int64(0), stats.ProjectCount)
	require.Equal(t, int64(0), stats.TotalTasks)
	require.Equal(t, int64(0), stats.CompletedTasks)
	require.Empty(t, stats.StatusDistribution)
}

func TestStatsService_ProjectActivitiesSubstringMatch(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)
	projectSvc := newProjectService(db)

	apollo, err := projectSvc.Create(1, validProjectInput("Apollo"))
	require.NoError(t, err)
	phaseTwo, err := projectSvc.Create(1, validProjectInput("Apollo Phase Two"))
	require.NoError(t, err)

	params := utils.PaginationParams{Skip: 0, Limit: 10}

	// "Apollo" is a substring of "Apollo Phase Two", so the shorter
	// name picks up the other project's entries as well.
	activities, err := svc.ProjectActivities(apollo.ID, params)
	require.NoError(t, err)
	require.Len(t, activities, 2)

	activities, err = svc.ProjectActivities(phaseTwo.ID, params)
	require.NoError(t, err)
	require.Len(t, activities, 1)
}

func TestRoundHalfUp2(t *testing.T) {
	require.Equal(t, 33.33, roundHalfUp2(100.0/3))
	require.Equal(t, 66.67, roundHalfUp2(200.0/3))
	require.Equal(t, 0.38, roundHalfUp2(0.375))
	require.Equal(t, 50.0, roundHalfUp2(50))
}
