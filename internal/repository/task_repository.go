package repository

import (
	"gorm.io/gorm"

	"github.com/SeanSun10/ProjectManager/internal/database"
	"github.com/SeanSun10/ProjectManager/internal/models"
	"github.com/SeanSun10/ProjectManager/internal/utils"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with its project and assignee preloaded
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Preload("Project").Preload("Assignee").First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks with pagination
func (r *GormTaskRepository) List(params utils.PaginationParams) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Preload("Project").Preload("Assignee").
		Scopes(database.Paginate(params)).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByProject retrieves one project's tasks with pagination
func (r *GormTaskRepository) ListByProject(projectID uint64, params utils.PaginationParams) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Preload("Project").Preload("Assignee").
		Where("project_id = ?", projectID).
		Scopes(database.Paginate(params)).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListBySprint lists all tasks of one sprint
func (r *GormTaskRepository) ListBySprint(sprintID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("sprint_id = ?", sprintID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete deletes a task
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Task{}, id).Error
}
