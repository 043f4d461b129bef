package playback

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/api/types"
	"github.com/coursekit/video-api/internal/models"
	"github.com/coursekit/video-api/pkg/errors"
)

// PutRequest is the payload for saving playback state
type PutRequest struct {
	UserID             string  `json:"user_id" binding:"required"`
	CurrentTime        float64 `json:"current_time"`
	PlaybackRate       float64 `json:"playback_rate"`
	Volume             float64 `json:"volume"`
	Muted              bool    `json:"muted"`
	CaptionsLanguage   string  `json:"captions_language"`
	TranscriptsEnabled bool    `json:"transcripts_enabled"`
	CaptionsEnabled    bool    `json:"captions_enabled"`
}

// Put handles PUT /api/v1/videos/:id/playback
// @Summary Save a student's playback state for a video
// @Tags playback
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Param request body PutRequest true "Playback state"
// @Success 200 {object} models.PlaybackState
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/videos/{id}/playback [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID, err := parseVideoID(c)
		if err != nil {
			types.ErrorResponse(c, err)
			return
		}

		var req PutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			types.ErrorResponse(c, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid request body"))
			return
		}

		state := &models.PlaybackState{
			VideoID:            videoID,
			UserID:             req.UserID,
			CurrentTime:        req.CurrentTime,
			PlaybackRate:       req.PlaybackRate,
			Volume:             req.Volume,
			Muted:              req.Muted,
			CaptionsLanguage:   req.CaptionsLanguage,
			TranscriptsEnabled: req.TranscriptsEnabled,
			CaptionsEnabled:    req.CaptionsEnabled,
		}

		saved, err := deps.PlaybackService.SaveState(c.Request.Context(), state)
		if err != nil {
			types.ErrorResponse(c, err)
			return
		}

		c.JSON(http.StatusOK, saved)
	}
}
