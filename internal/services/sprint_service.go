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

var ErrSprintNotFound = errors.New("sprint not found")

// SprintService handles sprint business logic.
type SprintService struct {
	sprintRepo repository.SprintRepository
	activities *ActivityService
}

// NewSprintService creates a new SprintService.
func NewSprintService(sprintRepo repository.SprintRepository, activities *ActivityService) *SprintService {
	return &SprintService{
		sprintRepo: sprintRepo,
		activities: activities,
	}
}

// SprintInput represents the writable sprint fields.
type SprintInput struct {
	ProjectID uint64
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Status    string
	Velocity  *float64
}

// Create persists a new sprint and records a sprint_created activity.
func (s *SprintService) Create(userID uint64, input SprintInput) (*models.Sprint, error) {
	sprint := &models.Sprint{
		ProjectID: input.ProjectID,
		Name:      input.Name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    input.Status,
		Velocity:  input.Velocity,
	}
	if err := s.sprintRepo.Create(sprint); err != nil {
		return nil, fmt.Errorf("failed to create sprint: %w", err)
	}

	if _, err := s.activities.RecordCreated(userID, EntitySprint, sprint.Name); err != nil {
		return nil, err
	}

	return sprint, nil
}

// List returns sprints with pagination.
func (s *SprintService) List(params utils.PaginationParams) ([]models.Sprint, error) {
	return s.sprintRepo.List(params)
}

// ListByProject returns all sprints of one project.
func (s *SprintService) ListByProject(projectID uint64) ([]models.Sprint, error) {
	return s.sprintRepo.ListByProject(projectID)
}

// Get returns one sprint.
func (s *SprintService) Get(id uint64) (*models.Sprint, error) {
	sprint, err := s.sprintRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSprintNotFound
		}
		return nil, fmt.Errorf("failed to find sprint: %w", err)
	}
	return sprint, nil
}

// Update replaces a sprint's fields, recording a sprint_updated
// activity only when the name changed.
func (s *SprintService) Update(userID, id uint64, input SprintInput) (*models.Sprint, error) {
	sprint, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	oldName := sprint.Name
	sprint.ProjectID = input.ProjectID
	sprint.Name = input.Name
	sprint.StartDate = input.StartDate
	sprint.EndDate = input.EndDate
	sprint.Status = input.Status
	sprint.Velocity = input.Velocity

	if err := s.sprintRepo.Update(sprint); err != nil {
		return nil, fmt.Errorf("failed to update sprint: %w", err)
	}

	if _, err := s.activities.RecordWatchedChange(userID, EntitySprint, sprint.Name, oldName, sprint.Name); err != nil {
		return nil, err
	}

	return sprint, nil
}

// Delete deletes a sprint.
func (s *SprintService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.sprintRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete sprint: %w", err)
	}
	return nil
}
