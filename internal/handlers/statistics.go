package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/SeanSun10/ProjectManager/internal/errors"
	"github.com/SeanSun10/ProjectManager/internal/services"
)

type StatisticsHandler struct {
	statsService *services.StatsService
}

func NewStatisticsHandler(statsService *services.StatsService) *StatisticsHandler {
	return &StatisticsHandler{
		statsService: statsService,
	}
}

// GetSystemStatistics returns counters over every project and task in
// the store
func (h *StatisticsHandler) GetSystemStatistics(c *gin.Context) {
	stats, err := h.statsService.SystemStatistics()
	if err != nil {
		apierrors.InternalError(c, "Failed to compute statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}
