package transcripts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/api/types"
)

// Delete handles DELETE /api/v1/videos/:id/transcripts/:lang
// @Summary Delete a stored transcript
// @Tags transcripts
// @Produce json
// @Param id path int true "Video ID"
// @Param lang path string true "Language code"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/videos/{id}/transcripts/{lang} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		video, ok := loadVideo(c, deps)
		if !ok {
			return
		}

		if err := deps.TranscriptService.DeleteTranscript(c.Request.Context(), video.ID, c.Param("lang")); err != nil {
			types.ErrorResponse(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  types.StatusOK,
			"message": "transcript deleted",
		})
	}
}
