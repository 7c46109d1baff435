package services

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/SeanSun10/ProjectManager/internal/dto"
	"github.com/SeanSun10/ProjectManager/internal/models"
	"github.com/SeanSun10/ProjectManager/internal/repository"
	"github.com/SeanSun10/ProjectManager/internal/utils"
)

// StatsService computes the derived statistics over tasks and cost
// records. All reads, no mutations.
type StatsService struct {
	projectRepo  repository.ProjectRepository
	statsRepo    repository.StatsRepository
	activityRepo repository.ActivityRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(projectRepo repository.ProjectRepository, statsRepo repository.StatsRepository, activityRepo repository.ActivityRepository) *StatsService {
	return &StatsService{
		projectRepo:  projectRepo,
		statsRepo:    statsRepo,
		activityRepo: activityRepo,
	}
}

// ProjectCostStats sums one project's cost records into fixed, human,
// and other buckets.
func (s *StatsService) ProjectCostStats(projectID uint64) (*dto.CostStatsDTO, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	buckets, err := s.statsRepo.ProjectCostBuckets(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate cost records: %w", err)
	}

	return &dto.CostStatsDTO{
		Fixed: buckets.Fixed,
		Human: buckets.Human,
		Other: buckets.Other,
	}, nil
}

// ProjectStats combines task counts, hour totals, and the two-bucket
// cost summary of one project. Cost amounts outside fixed/human are
// not included here.
func (s *StatsService) ProjectStats(projectID uint64) (*dto.ProjectStatsDTO, error) {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	taskCounts, err := s.statsRepo.ProjectTaskCounts(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate tasks: %w", err)
	}

	hourSums, err := s.statsRepo.ProjectHourSums(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate task hours: %w", err)
	}

	costBuckets, err := s.statsRepo.ProjectCostBuckets(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate cost records: %w", err)
	}

	return &dto.ProjectStatsDTO{
		TaskStats: dto.TaskStatsDTO{
			Total:      taskCounts.Total,
			InProgress: taskCounts.InProgress,
			Completed:  taskCounts.Completed,
		},
		TimeStats: dto.TimeStatsDTO{
			Estimated: hourSums.Estimated,
			Actual:    hourSums.Actual,
		},
		CostStats: dto.CostPairDTO{
			Fixed: costBuckets.Fixed,
			Human: costBuckets.Human,
		},
	}, nil
}

// ProjectActivities returns the activity entries associated with one
// project, newest-first. The association is a substring match of the
// project name against activity content; entries mentioning the name
// for unrelated reasons will match too.
func (s *StatsService) ProjectActivities(projectID uint64, params utils.PaginationParams) ([]models.Activity, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	activities, err := s.activityRepo.ListByContentSubstring(project.Name, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list project activities: %w", err)
	}
	return activities, nil
}

// SystemStatistics computes counters over every project and task in
// the store. The result is not scoped to the requesting user.
func (s *StatsService) SystemStatistics() (*dto.SystemStatisticsDTO, error) {
	projectIDs, err := s.statsRepo.ProjectIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	// "active" is matched literally against the stored status.
	activeCount, err := s.statsRepo.CountProjectsWithStatus("active")
	if err != nil {
		return nil, fmt.Errorf("failed to count active projects: %w", err)
	}

	totalTasks, err := s.statsRepo.CountTasksIn(projectIDs, "")
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}
	completedTasks, err := s.statsRepo.CountTasksIn(projectIDs, "done")
	if err != nil {
		return nil, fmt.Errorf("failed to count completed tasks: %w", err)
	}
	inProgressTasks, err := s.statsRepo.CountTasksIn(projectIDs, "in_progress")
	if err != nil {
		return nil, fmt.Errorf("failed to count in-progress tasks: %w", err)
	}

	hourSums, err := s.statsRepo.SumTaskHoursIn(projectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to sum task hours: %w", err)
	}

	statusCounts, err := s.statsRepo.TaskStatusCounts(projectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to group tasks by status: %w", err)
	}

	distribution := make([]dto.StatusDistributionDTO, 0, len(statusCounts))
	for _, sc := range statusCounts {
		var percentage float64
		if totalTasks > 0 {
			percentage = roundHalfUp2(float64(sc.Count) / float64(totalTasks) * 100)
		}
		distribution = append(distribution, dto.StatusDistributionDTO{
			Status:     sc.Status,
			Count:      sc.Count,
			Percentage: percentage,
		})
	}

	return &dto.SystemStatisticsDTO{
		ProjectCount:        int64(len(projectIDs)),
		ActiveProjectCount:  activeCount,
		TotalTasks:          totalTasks,
		CompletedTasks:      completedTasks,
		InProgressTasks:     inProgressTasks,
		TotalEstimatedHours: hourSums.Estimated,
		TotalActualHours:    hourSums.Actual,
		StatusDistribution:  distribution,
	}, nil
}

// roundHalfUp2 rounds half-up to two decimal places.
func roundHalfUp2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}
