package repository

import (
	"gorm.io/gorm"

	"github.com/SeanSun10/ProjectManager/internal/database"
	"github.com/SeanSun10/ProjectManager/internal/models"
	"github.com/SeanSun10/ProjectManager/internal/utils"
)

// GormSprintRepository is a GORM implementation of SprintRepository
type GormSprintRepository struct {
	db *gorm.DB
}

// NewSprintRepository creates a new SprintRepository
func NewSprintRepository(db *gorm.DB) SprintRepository {
	return &GormSprintRepository{db: db}
}

// Create creates a new sprint
func (r *GormSprintRepository) Create(sprint *models.Sprint) error {
	return r.db.Create(sprint).Error
}

// FindByID finds a sprint by ID
func (r *GormSprintRepository) FindByID(id uint64) (*models.Sprint, error) {
	var sprint models.Sprint
	if err := r.db.First(&sprint, id).Error; err != nil {
		return nil, err
	}
	return &sprint, nil
}

// List retrieves sprints with pagination
func (r *GormSprintRepository) List(params utils.PaginationParams) ([]models.Sprint, error) {
	var sprints []models.Sprint
	if err := r.db.Scopes(database.Paginate(params)).Find(&sprints).Error; err != nil {
		return nil, err
	}
	return sprints, nil
}

// ListByProject lists all sprints of one project
func (r *GormSprintRepository) ListByProject(projectID uint64) ([]models.Sprint, error) {
	var sprints []models.Sprint
	if err := r.db.Where("project_id = ?", projectID).Find(&sprints).Error; err != nil {
		return nil, err
	}
	return sprints, nil
}

// Update updates a sprint
func (r *GormSprintRepository) Update(sprint *models.Sprint) error {
	return r.db.Save(sprint).Error
}

// Delete deletes a sprint
func (r *GormSprintRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Sprint{}, id).Error
}
