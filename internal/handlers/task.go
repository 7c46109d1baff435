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

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

type taskRequest struct {
	ProjectID      uint64     `json:"project_id" binding:"required"`
	SprintID       *uint64    `json:"sprint_id"`
	Title          string     `json:"title" binding:"required"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	AssigneeID     *uint64    `json:"assignee_id"`
	EstimatedHours float64    `json:"estimated_hours"`
	ActualHours    float64    `json:"actual_hours"`
	DueDate        *time.Time `json:"due_date"`
}

func (r *taskRequest) toInput() services.TaskInput {
	return services.TaskInput{
		ProjectID:      r.ProjectID,
		SprintID:       r.SprintID,
		Title:          r.Title,
		Description:    r.Description,
		Status:         r.Status,
		Priority:       r.Priority,
		AssigneeID:     r.AssigneeID,
		EstimatedHours: r.EstimatedHours,
		ActualHours:    r.ActualHours,
		DueDate:        r.DueDate,
	}
}

func respondTaskError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrTaskNotFound) {
		apierrors.NotFound(c, err.Error())
		return
	}
	apierrors.InternalError(c, "")
}

// CreateTask creates a task and records a task_created activity
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.Create(userID, req.toInput())
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks returns tasks, optionally filtered by project_id
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var projectID *uint64
	if projectIDStr := c.Query("project_id"); projectIDStr != "" {
		id, err := strconv.ParseUint(projectIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid project_id")
			return
		}
		projectID = &id
	}

	params := utils.GetPaginationParams(c, constants.DefaultListLimit)

	tasks, err := h.taskService.List(projectID, params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask returns one task with its project and assignee
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.Get(id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask replaces a task's fields; a task_updated activity is
// recorded only when the status changed
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.Update(userID, id, req.toInput())
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(id); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
