package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SeanSun10/ProjectManager/internal/constants"
)

// PaginationParams holds skip/limit pagination parameters
type PaginationParams struct {
	Skip  int
	Limit int
}

// GetPaginationParams extracts and validates skip/limit query
// parameters from the request
func GetPaginationParams(c *gin.Context, defaultLimit int) PaginationParams {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > constants.MaxListLimit {
		limit = defaultLimit
	}

	return PaginationParams{
		Skip:  skip,
		Limit: limit,
	}
}
