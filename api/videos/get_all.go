package videos

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/api/types"
)

// GetAll handles GET /api/v1/videos
// @Summary List registered videos
// @Tags videos
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/videos [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videos, err := deps.VideoService.ListVideos(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to list videos: %v", err)
			types.ErrorResponse(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"videos": videos,
			"count":  len(videos),
		})
	}
}
