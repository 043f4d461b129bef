package transcripts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/api/types"
)

// GetAll handles GET /api/v1/videos/:id/transcripts
// @Summary List stored transcripts for a video
// @Tags transcripts
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/videos/{id}/transcripts [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		video, ok := loadVideo(c, deps)
		if !ok {
			return
		}

		transcripts, err := deps.TranscriptService.ListTranscripts(c.Request.Context(), video.ID)
		if err != nil {
			types.ErrorResponse(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"transcripts": transcripts,
			"count":       len(transcripts),
		})
	}
}
