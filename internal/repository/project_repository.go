package repository

import (
	"gorm.io/gorm"

	"github.com/SeanSun10/ProjectManager/internal/database"
	"github.com/SeanSun10/ProjectManager/internal/models"
	"github.com/SeanSun10/ProjectManager/internal/utils"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves projects with pagination
func (r *GormProjectRepository) List(params utils.PaginationParams) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Scopes(database.Paginate(params)).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update updates a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes the project row. Sprints, tasks, members, and costs
// keep their foreign keys; deletion is row-local.
func (r *GormProjectRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Project{}, id).Error
}
