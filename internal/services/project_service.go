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

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectStatus = errors.New("status must be one of PLANNING, IN_PROGRESS, COMPLETED, ON_HOLD")
	ErrNegativeFixedCost    = errors.New("fixed cost cannot be negative")
	ErrEndBeforeStart       = errors.New("end date must be after start date")
)

// ProjectService handles project business logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	activities  *ActivityService
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, activities *ActivityService) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		activities:  activities,
	}
}

// ProjectInput represents the full set of writable project fields.
// Updates replace all of them.
type ProjectInput struct {
	Name             string
	Description      string
	StartDate        time.Time
	EndDate          time.Time
	Status           string
	FixedCostMonthly float64
}

func (in *ProjectInput) validate() error {
	if !models.ValidProjectStatus(in.Status) {
		return ErrInvalidProjectStatus
	}
	if in.FixedCostMonthly < 0 {
		return ErrNegativeFixedCost
	}
	if in.EndDate.Before(in.StartDate) {
		return ErrEndBeforeStart
	}
	return nil
}

// Create persists a new project and always records a project_created
// activity attributed to the acting user.
func (s *ProjectService) Create(userID uint64, input ProjectInput) (*models.Project, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	project := &models.Project{
		Name:             input.Name,
		Description:      input.Description,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Status:           input.Status,
		FixedCostMonthly: input.FixedCostMonthly,
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if _, err := s.activities.RecordCreated(userID, EntityProject, project.Name); err != nil {
		return nil, err
	}

	return project, nil
}

// List returns projects with pagination.
func (s *ProjectService) List(params utils.PaginationParams) ([]models.Project, error) {
	return s.projectRepo.List(params)
}

// Get returns one project.
func (s *ProjectService) Get(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// Update replaces a project's fields. A project_updated activity is
// recorded only when the name changed; edits to any other field are
// silent.
func (s *ProjectService) Update(userID, id uint64, input ProjectInput) (*models.Project, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	project, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	oldName := project.Name
	project.Name = input.Name
	project.Description = input.Description
	project.StartDate = input.StartDate
	project.EndDate = input.EndDate
	project.Status = input.Status
	project.FixedCostMonthly = input.FixedCostMonthly

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	if _, err := s.activities.RecordWatchedChange(userID, EntityProject, project.Name, oldName, project.Name); err != nil {
		return nil, err
	}

	return project, nil
}

// Delete removes a project row. Child rows keep their foreign keys.
func (s *ProjectService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.projectRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
