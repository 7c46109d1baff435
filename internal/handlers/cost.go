package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SeanSun10/ProjectManager/internal/constants"
	apierrors "github.com/SeanSun10/ProjectManager/internal/errors"
	"github.com/SeanSun10/ProjectManager/internal/services"
	"github.com/SeanSun10/ProjectManager/internal/utils"
)

type CostHandler struct {
	costService  *services.CostService
	statsService *services.StatsService
}

func NewCostHandler(costService *services.CostService, statsService *services.StatsService) *CostHandler {
	return &CostHandler{
		costService:  costService,
		statsService: statsService,
	}
}

type costRecordRequest struct {
	ProjectID   uint64    `json:"project_id" binding:"required"`
	RecordDate  time.Time `json:"record_date" binding:"required"`
	CostType    string    `json:"cost_type" binding:"required"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
}

func (r *costRecordRequest) toInput() services.CostRecordInput {
	return services.CostRecordInput{
		ProjectID:   r.ProjectID,
		RecordDate:  r.RecordDate,
		CostType:    r.CostType,
		Amount:      r.Amount,
		Description: r.Description,
	}
}

func respondCostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCostRecordNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidYearMonth):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}

// CreateCostRecord creates a cost record
func (h *CostHandler) CreateCostRecord(c *gin.Context) {
	var req costRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	cost, err := h.costService.Create(req.toInput())
	if err != nil {
		respondCostError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cost)
}

// ListCostRecords returns cost records with skip/limit pagination
func (h *CostHandler) ListCostRecords(c *gin.Context) {
	params := utils.GetPaginationParams(c, constants.DefaultListLimit)

	costs, err := h.costService.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch cost records")
		return
	}

	c.JSON(http.StatusOK, costs)
}

// GetCostRecord returns one cost record by ID
func (h *CostHandler) GetCostRecord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cost, err := h.costService.Get(id)
	if err != nil {
		respondCostError(c, err)
		return
	}

	c.JSON(http.StatusOK, cost)
}

// ListProjectCostRecords returns one project's cost records. With
// year and month query parameters the result is limited to that
// calendar month.
func (h *CostHandler) ListProjectCostRecords(c *gin.Context) {
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}

	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr != "" || monthStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			apierrors.BadRequest(c, "Invalid year")
			return
		}
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			apierrors.BadRequest(c, "Invalid month")
			return
		}

		costs, err := h.costService.ListByProjectMonthly(projectID, year, month)
		if err != nil {
			respondCostError(c, err)
			return
		}
		c.JSON(http.StatusOK, costs)
		return
	}

	costs, err := h.costService.ListByProject(projectID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch cost records")
		return
	}

	c.JSON(http.StatusOK, costs)
}

// GetProjectCostStats returns the fixed/human/other cost totals of one
// project
func (h *CostHandler) GetProjectCostStats(c *gin.Context) {
	projectID, ok := parseIDParam(c, "project_id")
	if !ok {
		return
	}

	stats, err := h.statsService.ProjectCostStats(projectID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// UpdateCostRecord replaces a cost record's fields
func (h *CostHandler) UpdateCostRecord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req costRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	cost, err := h.costService.Update(id, req.toInput())
	if err != nil {
		respondCostError(c, err)
		return
	}

	c.JSON(http.StatusOK, cost)
}

// DeleteCostRecord deletes a cost record
func (h *CostHandler) DeleteCostRecord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.costService.Delete(id); err != nil {
		respondCostError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cost record deleted successfully"})
}
