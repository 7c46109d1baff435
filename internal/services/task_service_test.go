package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SeanSun10/ProjectManager/internal/models"
	"github.com/SeanSun10/ProjectManager/internal/repository"
)

func newTaskService(db *gorm.DB) *TaskService {
	return NewTaskService(repository.NewTaskRepository(db), newActivityService(db))
}

func TestTaskService_CreateRecordsActivity(t *testing.T) {
	db := newTestDB(t)
	svc := newTaskService(db)
	project := createTestProject(t, db, "Apollo", "IN_PROGRESS")

	task, err := svc.Create(1, TaskInput{
		ProjectID: project.ID,
		Title:     "Write docs",
		Status:    "todo",
	})
	require.NoError(t, err)
	require.NotZero(t, task.ID)

	var activity models.Activity
	require.NoError(t, db.Order("id DESC").First(&activity).Error)
	require.Equal(t, "task_created", activity.Type)
	require.Contains(t, activity.Content, "Write docs")
}

func TestTaskService_UpdateTitleOnlyIsSilent(t *testing.T) {
	db := newTestDB(t)
	svc := newTaskService(db)
	project := createTestProject(t, db, "Apollo", "IN_PROGRESS")

	task, err := svc.Create(1, TaskInput{ProjectID: project.ID, Title: "Write docs", Status: "todo"})
	require.NoError(t, err)
	before := countActivities(t, db)

	updated, err := svc.Update(1, task.ID, TaskInput{
		ProjectID: project.ID,
		Title:     "Write better docs",
		Status:    "todo",
	})
	require.NoError(t, err)
	require.Equal(t, "Write better docs", updated.Title)

	require.Equal(t, before, countActivities(t, db))
}

func TestTaskService_UpdateStatusRecordsOnce(t *testing.T) {
	db := newTestDB(t)
	svc := newTaskService(db)
	project := createTestProject(t, db, "Apollo", "IN_PROGRESS")

	task, err := svc.Create(1, TaskInput{ProjectID: project.ID, Title: "Write docs", Status: "todo"})
	require.NoError(t, err)
	before := countActivities(t, db)

	_, err = svc.Update(1, task.ID, TaskInput{
		ProjectID: project.ID,
		Title:     "Write docs",
		Status:    "done",
	})
	require.NoError(t, err)

	require.Equal(t, before+1, countActivities(t, db))

	var activity models.Activity
	require.NoError(t, db.Order("id DESC").First(&activity).Error)
	require.Equal(t, "task_updated", activity.Type)
	require.Contains(t, activity.Content, "Write docs")
	require.Contains(t, activity.Content, "done")
}

func TestTaskService_GetNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newTaskService(db)

	_, err := svc.Get(42)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_DeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newTaskService(db)

	err := svc.Delete(42)
	require.ErrorIs(t, err, ErrTaskNotFound)
}
