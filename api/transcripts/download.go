package transcripts

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/api/types"
)

// Download handles GET /api/v1/videos/:id/transcripts/:lang/download
// @Summary Download a default transcript from the video's platform
// @Description Fetches the platform's caption track in the requested language
// @Description and returns it converted to WebVTT
// @Tags transcripts
// @Produce text/vtt
// @Param id path int true "Video ID"
// @Param lang path string true "Language code"
// @Success 200 {string} string "WebVTT content"
// @Failure 404 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/videos/{id}/transcripts/{lang}/download [get]
func Download(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		video, ok := loadVideo(c, deps)
		if !ok {
			return
		}

		creds := deps.CredentialsFor(video.PlayerName)
		content, err := deps.TranscriptService.DownloadDefaultTranscript(c.Request.Context(), video, c.Param("lang"), creds)
		if err != nil {
			log.Printf("[ERROR] Failed to download transcript for video %d lang %s: %v", video.ID, c.Param("lang"), err)
			types.ErrorResponse(c, err)
			return
		}

		c.Data(http.StatusOK, "text/vtt; charset=utf-8", []byte(content))
	}
}
