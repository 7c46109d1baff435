package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SeanSun10/ProjectManager/internal/constants"
	apierrors "github.com/SeanSun10/ProjectManager/internal/errors"
	"github.com/SeanSun10/ProjectManager/internal/middleware"
	"github.com/SeanSun10/ProjectManager/internal/services"
	"github.com/SeanSun10/ProjectManager/internal/utils"
)

type SprintHandler struct {
	sprintService *services.SprintService
	taskService   *services.TaskService
}

func NewSprintHandler(sprintService *services.SprintService, taskService *services.TaskService) *SprintHandler {
	return &SprintHandler{
		sprintService: sprintService,
		taskService:   taskService,
	}
}

type sprintRequest struct {
	ProjectID uint64    `json:"project_id" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	Status    string    `json:"status"`
	Velocity  *float64  `json:"velocity"`
}

func (r *sprintRequest) toInput() services.SprintInput {
	return services.SprintInput{
		ProjectID: r.ProjectID,
		Name:      r.Name,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Status:    r.Status,
		Velocity:  r.Velocity,
	}
}

func respondSprintError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrSprintNotFound) {
		apierrors.NotFound(c, err.Error())
		return
	}
	apierrors.InternalError(c, "")
}

// CreateSprint creates a sprint and records a sprint_created activity
func (h *SprintHandler) CreateSprint(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req sprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	sprint, err := h.sprintService.Create(userID, req.toInput())
	if err != nil {
		respondSprintError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sprint)
}

// ListSprints returns sprints, optionally restricted to one project
// via the project_id query parameter
func (h *SprintHandler) ListSprints(c *gin.Context) {
	if projectIDStr := c.Query("project_id"); projectIDStr != "" {
		projectID, err := strconv.ParseUint(projectIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid project_id")
			return
		}
		sprints, err := h.sprintService.ListByProject(projectID)
		if err != nil {
			apierrors.InternalError(c, "Failed to fetch sprints")
			return
		}
		c.JSON(http.StatusOK, sprints)
		return
	}

	params := utils.GetPaginationParams(c, constants.DefaultListLimit)

	sprints, err := h.sprintService.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch sprints")
		return
	}

	c.JSON(http.StatusOK, sprints)
}

// GetSprint returns one sprint by ID
func (h *SprintHandler) GetSprint(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sprint, err := h.sprintService.Get(id)
	if err != nil {
		respondSprintError(c, err)
		return
	}

	c.JSON(http.StatusOK, sprint)
}

// GetSprintTasks returns all tasks of one sprint
func (h *SprintHandler) GetSprintTasks(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.sprintService.Get(id); err != nil {
		respondSprintError(c, err)
		return
	}

	tasks, err := h.taskService.ListBySprint(id)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UpdateSprint replaces a sprint's fields
func (h *SprintHandler) UpdateSprint(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req sprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	sprint, err := h.sprintService.Update(userID, id, req.toInput())
	if err != nil {
		respondSprintError(c, err)
		return
	}

	c.JSON(http.StatusOK, sprint)
}

// DeleteSprint deletes a sprint
func (h *SprintHandler) DeleteSprint(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.sprintService.Delete(id); err != nil {
		respondSprintError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sprint deleted successfully"})
}
