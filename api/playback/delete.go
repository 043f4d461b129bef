package playback

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/api/types"
)

// Delete handles DELETE /api/v1/videos/:id/playback
// @Summary Reset every student's playback state for a video
// @Tags playback
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/videos/{id}/playback [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID, err := parseVideoID(c)
		if err != nil {
			types.ErrorResponse(c, err)
			return
		}

		if err := deps.PlaybackService.ResetStates(c.Request.Context(), videoID); err != nil {
			log.Printf("[ERROR] Failed to reset playback states for video %d: %v", videoID, err)
			types.ErrorResponse(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  types.StatusOK,
			"message": "playback states reset",
		})
	}
}
