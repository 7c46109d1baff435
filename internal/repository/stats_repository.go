package repository

import (
	"gorm.io/gorm"

	"github.com/SeanSun10/ProjectManager/internal/models"
)

// GormStatsRepository is a GORM implementation of StatsRepository
type GormStatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &GormStatsRepository{db: db}
}

// ProjectCostBuckets sums one project's cost amounts into the
// fixed/human/other buckets. Buckets with no rows come back as 0.
func (r *GormStatsRepository) ProjectCostBuckets(projectID uint64) (CostBuckets, error) {
	var buckets CostBuckets
	err := r.db.Model(&models.CostRecord{}).
		Select(
			"COALESCE(SUM(CASE WHEN cost_type = ? THEN amount ELSE 0 END), 0) AS fixed, "+
				"COALESCE(SUM(CASE WHEN cost_type = ? THEN amount ELSE 0 END), 0) AS human, "+
				"COALESCE(SUM(CASE WHEN cost_type NOT IN (?, ?) THEN amount ELSE 0 END), 0) AS other",
			models.CostTypeFixed, models.CostTypeHuman,
			models.CostTypeFixed, models.CostTypeHuman).
		Where("project_id = ?", projectID).
		Scan(&buckets).Error
	return buckets, err
}

// ProjectTaskCounts counts one project's tasks. The broken-out
// counters match the literals 'in_progress' and 'completed'.
func (r *GormStatsRepository) ProjectTaskCounts(projectID uint64) (TaskCounts, error) {
	var counts TaskCounts
	err := r.db.Model(&models.Task{}).
		Select(
			"COUNT(id) AS total, " +
				"COALESCE(SUM(CASE WHEN status = 'in_progress' THEN 1 ELSE 0 END), 0) AS in_progress, " +
				"COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed").
		Where("project_id = ?", projectID).
		Scan(&counts).Error
	return counts, err
}

// ProjectHourSums totals estimated and actual hours over one
// project's tasks.
func (r *GormStatsRepository) ProjectHourSums(projectID uint64) (HourSums, error) {
	var sums HourSums
	err := r.db.Model(&models.Task{}).
		Select("COALESCE(SUM(estimated_hours), 0) AS estimated, COALESCE(SUM(actual_hours), 0) AS actual").
		Where("project_id = ?", projectID).
		Scan(&sums).Error
	return sums, err
}

// ProjectIDs returns the ids of all projects.
func (r *GormStatsRepository) ProjectIDs() ([]uint64, error) {
	var ids []uint64
	if err := r.db.Model(&models.Project{}).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// CountProjectsWithStatus counts projects by the stored status literal.
func (r *GormStatsRepository) CountProjectsWithStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// CountTasksIn counts tasks in the given projects. An empty status
// counts all of them.
func (r *GormStatsRepository) CountTasksIn(projectIDs []uint64, status string) (int64, error) {
	if len(projectIDs) == 0 {
		return 0, nil
	}
	query := r.db.Model(&models.Task{}).Where("project_id IN ?", projectIDs)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// SumTaskHoursIn totals hours over tasks in the given projects.
func (r *GormStatsRepository) SumTaskHoursIn(projectIDs []uint64) (HourSums, error) {
	if len(projectIDs) == 0 {
		return HourSums{}, nil
	}
	var sums HourSums
	err := r.db.Model(&models.Task{}).
		Select("COALESCE(SUM(estimated_hours), 0) AS estimated, COALESCE(SUM(actual_hours), 0) AS actual").
		Where("project_id IN ?", projectIDs).
		Scan(&sums).Error
	return sums, err
}

// TaskStatusCounts groups tasks in the given projects by their status
// value.
func (r *GormStatsRepository) TaskStatusCounts(projectIDs []uint64) ([]StatusCount, error) {
	if len(projectIDs) == 0 {
		return []StatusCount{}, nil
	}
	var counts []StatusCount
	err := r.db.Model(&models.Task{}).
		Select("status, COUNT(id) AS count").
		Where("project_id IN ?", projectIDs).
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
