package repository

import (
	"gorm.io/gorm"

	"github.com/SeanSun10/ProjectManager/internal/database"
	"github.com/SeanSun10/ProjectManager/internal/models"
	"github.com/SeanSun10/ProjectManager/internal/utils"
)

// GormActivityRepository is a GORM implementation of ActivityRepository
type GormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &GormActivityRepository{db: db}
}

// Create appends an activity. There is no Update or Delete; the log
// is append-only.
func (r *GormActivityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

// List returns activities newest-first with pagination
func (r *GormActivityRepository) List(params utils.PaginationParams) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Order("created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// ListByContentSubstring returns activities whose content contains the
// given text, newest-first. The association is textual: activity rows
// carry no subject foreign key.
func (r *GormActivityRepository) ListByContentSubstring(text string, params utils.PaginationParams) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("content LIKE ?", "%"+text+"%").
		Order("created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}
