package videos

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/api/types"
)

// Delete handles DELETE /api/v1/videos/:id
// @Summary Delete a registered video
// @Tags videos
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/videos/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseVideoID(c)
		if err != nil {
			types.ErrorResponse(c, err)
			return
		}

		if err := deps.VideoService.DeleteVideo(c.Request.Context(), id); err != nil {
			log.Printf("[ERROR] Failed to delete video %d: %v", id, err)
			types.ErrorResponse(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  types.StatusOK,
			"message": "video deleted",
		})
	}
}
