package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SeanSun10/ProjectManager/internal/models"
	"github.com/SeanSun10/ProjectManager/internal/repository"
)

func newCostService(db *gorm.DB) *CostService {
	return NewCostService(repository.NewCostRepository(db))
}

func TestCostService_ListByProjectMonthly(t *testing.T) {
	db := newTestDB(t)
	svc := newCostService(db)
	project := createTestProject(t, db, "Alpha", "IN_PROGRESS")

	records := []struct {
		date   time.Time
		amount float64
	}{
		{time.Date(2025, 2, 28, 23, 59, 0, 0, time.UTC), 10},
		{time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 20},
		{time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC), 30},
		{time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 40},
	}
	for _, r := range records {
		_, err := svc.Create(CostRecordInput{
			ProjectID:  project.ID,
			RecordDate: r.date,
			CostType:   models.CostTypeFixed,
			Amount:     r.amount,
		})
		require.NoError(t, err)
	}

	// Half-open range: March rows only, the April 1st row excluded.
	costs, err := svc.ListByProjectMonthly(project.ID, 2025, 3)
	require.NoError(t, err)
	require.Len(t, costs, 2)
	for _, c := range costs {
		require.Equal(t, time.March, c.RecordDate.Month())
	}
}

func TestCostService_ListByProjectMonthlyValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newCostService(db)

	_, err := svc.ListByProjectMonthly(1, 2025, 0)
	require.ErrorIs(t, err, ErrInvalidYearMonth)

	_, err = svc.ListByProjectMonthly(1, 2025, 13)
	require.ErrorIs(t, err, ErrInvalidYearMonth)

	_, err = svc.ListByProjectMonthly(1, 0, 6)
	require.ErrorIs(t, err, ErrInvalidYearMonth)
}

func TestCostService_GetNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCostService(db)

	_, err := svc.Get(42)
	require.ErrorIs(t, err, ErrCostRecordNotFound)
}
