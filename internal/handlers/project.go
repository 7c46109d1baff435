package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SeanSun10/ProjectManager/internal/constants"
	apierrors "github.com/SeanSun10/ProjectManager/internal/errors"
	"github.com/SeanSun10/ProjectManager/internal/middleware"
	"github.com/SeanSun10/ProjectManager/internal/services"
	"github.com/SeanSun10/ProjectManager/internal/utils"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	statsService   *services.StatsService
}

func NewProjectHandler(projectService *services.ProjectService, statsService *services.StatsService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		statsService:   statsService,
	}
}

type projectRequest struct {
	Name             string    `json:"name" binding:"required"`
	Description      string    `json:"description"`
	StartDate        time.Time `json:"start_date" binding:"required"`
	EndDate          time.Time `json:"end_date" binding:"required"`
	Status           string    `json:"status" binding:"required"`
	FixedCostMonthly float64   `json:"fixed_cost_monthly"`
}

func (r *projectRequest) toInput() services.ProjectInput {
	return services.ProjectInput{
		Name:             r.Name,
		Description:      r.Description,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		Status:           r.Status,
		FixedCostMonthly: r.FixedCostMonthly,
	}
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidProjectStatus),
		errors.Is(err, services.ErrNegativeFixedCost),
		errors.Is(err, services.ErrEndBeforeStart):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}

// CreateProject creates a project and records a project_created
// activity for the acting user
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Create(userID, req.toInput())
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ListProjects returns projects with skip/limit pagination
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	params := utils.GetPaginationParams(c, constants.DefaultListLimit)

	projects, err := h.projectService.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject returns one project by ID
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.Get(id)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject replaces a project's fields
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Update(userID, id, req.toInput())
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject deletes a project
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// GetProjectStats returns the task, time, and cost summary of one
// project
func (h *ProjectHandler) GetProjectStats(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	stats, err := h.statsService.ProjectStats(id)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetProjectActivities returns the activity feed entries associated
// with one project, newest first
func (h *ProjectHandler) GetProjectActivities(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c, constants.DefaultActivityLimit)

	activities, err := h.statsService.ProjectActivities(id, params)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}
