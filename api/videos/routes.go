package videos

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/api/types"
	"github.com/coursekit/video-api/pkg/errors"
)

// RegisterRoutes registers video management routes
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.POST("", Post(deps))
	group.GET("", GetAll(deps))
	group.GET("/:id", GetByID(deps))
	group.PUT("/:id", Put(deps))
	group.DELETE("/:id", Delete(deps))
}

// parseVideoID reads the :id path parameter.
func parseVideoID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.ValidationError("id", "must be a positive integer")
	}
	return uint(id), nil
}
