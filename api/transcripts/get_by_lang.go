package transcripts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/api/types"
)

// GetByLang handles GET /api/v1/videos/:id/transcripts/:lang
// @Summary Get a stored transcript as WebVTT
// @Tags transcripts
// @Produce text/vtt
// @Param id path int true "Video ID"
// @Param lang path string true "Language code"
// @Success 200 {string} string "WebVTT content"
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/videos/{id}/transcripts/{lang} [get]
func GetByLang(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		video, ok := loadVideo(c, deps)
		if !ok {
			return
		}

		transcript, err := deps.TranscriptService.GetTranscript(c.Request.Context(), video.ID, c.Param("lang"))
		if err != nil {
			types.ErrorResponse(c, err)
			return
		}

		c.Data(http.StatusOK, "text/vtt; charset=utf-8", []byte(transcript.Content))
	}
}
