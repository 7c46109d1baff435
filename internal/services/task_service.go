package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/SeanSun10/ProjectManager/internal/models"
	"github.com/SeanSun10/ProjectManager/internal/repository"
	"github.com/SeanSun10/ProjectManager/internal/utils"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskService handles task business logic.
type TaskService struct {
	taskRepo   repository.TaskRepository
	activities *ActivityService
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, activities *ActivityService) *TaskService {
	return &TaskService{
		taskRepo:   taskRepo,
		activities: activities,
	}
}

// TaskInput represents the full set of writable task fields. Updates
// replace all of them.
type TaskInput struct {
	ProjectID      uint64
	SprintID       *uint64
	Title          string
	Description    string
	Status         string
	Priority       string
	AssigneeID     *uint64
	EstimatedHours float64
	ActualHours    float64
	DueDate        *time.Time
}

// Create persists a new task and always records a task_created
// activity.
func (s *TaskService) Create(userID uint64, input TaskInput) (*models.Task, error) {
	task := &models.Task{
		ProjectID:      input.ProjectID,
		SprintID:       input.SprintID,
		Title:          input.Title,
		Description:    input.Description,
		Status:         input.Status,
		Priority:       input.Priority,
		AssigneeID:     input.AssigneeID,
		EstimatedHours: input.EstimatedHours,
		ActualHours:    input.ActualHours,
		DueDate:        input.DueDate,
	}
	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if _, err := s.activities.RecordCreated(userID, EntityTask, task.Title); err != nil {
		return nil, err
	}

	return task, nil
}

// List returns tasks, optionally restricted to one project.
func (s *TaskService) List(projectID *uint64, params utils.PaginationParams) ([]models.Task, error) {
	if projectID != nil {
		return s.taskRepo.ListByProject(*projectID, params)
	}
	return s.taskRepo.List(params)
}

// ListBySprint returns all tasks of one sprint.
func (s *TaskService) ListBySprint(sprintID uint64) ([]models.Task, error) {
	return s.taskRepo.ListBySprint(sprintID)
}

// Get returns one task with its project and assignee.
func (s *TaskService) Get(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// Update replaces a task's fields. A task_updated activity is
// recorded only when the status changed; title or any other edits are
// silent.
func (s *TaskService) Update(userID, id uint64, input TaskInput) (*models.Task, error) {
	task, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	oldStatus := task.Status
	task.ProjectID = input.ProjectID
	task.SprintID = input.SprintID
	task.Title = input.Title
	task.Description = input.Description
	task.Status = input.Status
	task.Priority = input.Priority
	task.AssigneeID = input.AssigneeID
	task.EstimatedHours = input.EstimatedHours
	task.ActualHours = input.ActualHours
	task.DueDate = input.DueDate

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if _, err := s.activities.RecordWatchedChange(userID, EntityTask, task.Title, oldStatus, task.Status); err != nil {
		return nil, err
	}

	return task, nil
}

// Delete deletes a task.
func (s *TaskService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
