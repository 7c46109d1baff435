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
	ErrCostRecordNotFound = errors.New("cost record not found")
	ErrInvalidYearMonth   = errors.New("year must be positive and month must be between 1 and 12")
)

// CostService handles cost record business logic.
type CostService struct {
	costRepo repository.CostRepository
}

// NewCostService creates a new CostService.
func NewCostService(costRepo repository.CostRepository) *CostService {
	return &CostService{
		costRepo: costRepo,
	}
}

// CostRecordInput represents the writable cost record fields.
type CostRecordInput struct {
	ProjectID   uint64
	RecordDate  time.Time
	CostType    string
	Amount      float64
	Description string
}

// Create persists a new cost record.
func (s *CostService) Create(input CostRecordInput) (*models.CostRecord, error) {
	cost := &models.CostRecord{
		ProjectID:   input.ProjectID,
		RecordDate:  input.RecordDate,
		CostType:    input.CostType,
		Amount:      input.Amount,
		Description: input.Description,
	}
	if err := s.costRepo.Create(cost); err != nil {
		return nil, fmt.Errorf("failed to create cost record: %w", err)
	}
	return cost, nil
}

// List returns cost records with pagination.
func (s *CostService) List(params utils.PaginationParams) ([]models.CostRecord, error) {
	return s.costRepo.List(params)
}

// Get returns one cost record.
func (s *CostService) Get(id uint64) (*models.CostRecord, error) {
	cost, err := s.costRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCostRecordNotFound
		}
		return nil, fmt.Errorf("failed to find cost record: %w", err)
	}
	return cost, nil
}

// ListByProject returns all cost records of one project.
func (s *CostService) ListByProject(projectID uint64) ([]models.CostRecord, error) {
	return s.costRepo.ListByProject(projectID)
}

// ListByProjectMonthly returns one project's cost records for a
// calendar month. Invalid year/month input is a validation error, not
// a storage failure.
func (s *CostService) ListByProjectMonthly(projectID uint64, year, month int) ([]models.CostRecord, error) {
	if year <= 0 || month < 1 || month > 12 {
		return nil, ErrInvalidYearMonth
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	return s.costRepo.ListByProjectBetween(projectID, from, to)
}

// Update replaces a cost record's fields.
func (s *CostService) Update(id uint64, input CostRecordInput) (*models.CostRecord, error) {
	cost, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	cost.ProjectID = input.ProjectID
	cost.RecordDate = input.RecordDate
	cost.CostType = input.CostType
	cost.Amount = input.Amount
	cost.Description = input.Description

	if err := s.costRepo.Update(cost); err != nil {
		return nil, fmt.Errorf("failed to update cost record: %w", err)
	}
	return cost, nil
}

// Delete deletes a cost record.
func (s *CostService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.costRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete cost record: %w", err)
	}
	return nil
}
