package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/SeanSun10/ProjectManager/internal/database"
	"github.com/SeanSun10/ProjectManager/internal/models"
	"github.com/SeanSun10/ProjectManager/internal/utils"
)

// GormCostRepository is a GORM implementation of CostRepository
type GormCostRepository struct {
	db *gorm.DB
}

// NewCostRepository creates a new CostRepository
func NewCostRepository(db *gorm.DB) CostRepository {
	return &GormCostRepository{db: db}
}

// Create creates a new cost record
func (r *GormCostRepository) Create(cost *models.CostRecord) error {
	return r.db.Create(cost).Error
}

// FindByID finds a cost record by ID
func (r *GormCostRepository) FindByID(id uint64) (*models.CostRecord, error) {
	var cost models.CostRecord
	if err := r.db.First(&cost, id).Error; err != nil {
		return nil, err
	}
	return &cost, nil
}

// List retrieves cost records with pagination
func (r *GormCostRepository) List(params utils.PaginationParams) ([]models.CostRecord, error) {
	var costs []models.CostRecord
	if err := r.db.Scopes(database.Paginate(params)).Find(&costs).Error; err != nil {
		return nil, err
	}
	return costs, nil
}

// ListByProject lists all cost records of one project
func (r *GormCostRepository) ListByProject(projectID uint64) ([]models.CostRecord, error) {
	var costs []models.CostRecord
	if err := r.db.Where("project_id = ?", projectID).Find(&costs).Error; err != nil {
		return nil, err
	}
	return costs, nil
}

// ListByProjectBetween lists one project's cost records in the
// half-open interval [from, to)
func (r *GormCostRepository) ListByProjectBetween(projectID uint64, from, to time.Time) ([]models.CostRecord, error) {
	var costs []models.CostRecord
	err := r.db.
		Where("project_id = ? AND record_date >= ? AND record_date < ?", projectID, from, to).
		Find(&costs).Error
	if err != nil {
		return nil, err
	}
	return costs, nil
}

// Update updates a cost record
func (r *GormCostRepository) Update(cost *models.CostRecord) error {
	return r.db.Save(cost).Error
}

// Delete deletes a cost record
func (r *GormCostRepository) Delete(id uint64) error {
	return r.db.Delete(&models.CostRecord{}, id).Error
}
