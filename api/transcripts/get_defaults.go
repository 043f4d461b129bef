package transcripts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/api/types"
)

// GetDefaults handles GET /api/v1/videos/:id/transcripts/defaults
// @Summary List the platform's default transcripts merged with manual uploads
// @Description Queries the video's platform for its caption tracks and merges
// @Description them with stored manual transcripts; a manual transcript shadows
// @Description the default one in the same language. A message in the response
// @Description explains an empty list.
// @Tags transcripts
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/videos/{id}/transcripts/defaults [get]
func GetDefaults(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		video, ok := loadVideo(c, deps)
		if !ok {
			return
		}

		creds := deps.CredentialsFor(video.PlayerName)
		transcripts, message := deps.TranscriptService.FetchDefaultTranscripts(c.Request.Context(), video, creds)

		response := gin.H{
			"transcripts": transcripts,
			"count":       len(transcripts),
		}
		if message != "" {
			response["message"] = message
		}

		c.JSON(http.StatusOK, response)
	}
}
