package transcripts

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/api/types"
	"github.com/coursekit/video-api/pkg/errors"
)

// PostRequest is the payload for uploading a manual transcript
type PostRequest struct {
	Lang    string `json:"lang" binding:"required"`
	Label   string `json:"label"`
	Content string `json:"content" binding:"required"`
}

// Post handles POST /api/v1/videos/:id/transcripts
// @Summary Upload a manual transcript
// @Description Converts the uploaded captions to WebVTT and stores them,
// @Description replacing any previous manual transcript in that language
// @Tags transcripts
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Param request body PostRequest true "Transcript to upload"
// @Success 201 {object} models.Transcript
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/videos/{id}/transcripts [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		video, ok := loadVideo(c, deps)
		if !ok {
			return
		}

		var req PostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			types.ErrorResponse(c, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid request body"))
			return
		}

		transcript, err := deps.TranscriptService.UploadManualTranscript(c.Request.Context(), video.ID, req.Lang, req.Content)
		if err != nil {
			log.Printf("[ERROR] Failed to upload transcript for video %d lang %s: %v", video.ID, req.Lang, err)
			types.ErrorResponse(c, err)
			return
		}

		c.JSON(http.StatusCreated, transcript)
	}
}
