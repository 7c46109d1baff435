package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SeanSun10/ProjectManager/internal/constants"
	apierrors "github.com/SeanSun10/ProjectManager/internal/errors"
	"github.com/SeanSun10/ProjectManager/internal/middleware"
	"github.com/SeanSun10/ProjectManager/internal/services"
	"github.com/SeanSun10/ProjectManager/internal/utils"
)

type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// CreateActivity appends an activity entry attributed to the acting
// user
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req struct {
		Type    string `json:"type" binding:"required"`
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	activity, err := h.activityService.Record(userID, req.Type, req.Content)
	if err != nil {
		apierrors.InternalError(c, "Failed to record activity")
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// ListActivities returns activities newest-first with skip/limit
// pagination
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	params := utils.GetPaginationParams(c, constants.DefaultActivityLimit)

	activities, err := h.activityService.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch activities")
		return
	}

	c.JSON(http.StatusOK, activities)
}
