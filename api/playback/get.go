package playback

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/api/types"
	"github.com/coursekit/video-api/pkg/errors"
)

// Get handles GET /api/v1/videos/:id/playback?user_id=
// @Summary Get a student's playback state for a video
// @Description Returns the stored state, or the initial defaults when the
// @Description student has never played the video
// @Tags playback
// @Produce json
// @Param id path int true "Video ID"
// @Param user_id query string true "Student identifier"
// @Success 200 {object} models.PlaybackState
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/videos/{id}/playback [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID, err := parseVideoID(c)
		if err != nil {
			types.ErrorResponse(c, err)
			return
		}

		userID := c.Query("user_id")
		if userID == "" {
			types.ErrorResponse(c, errors.MissingFieldError("user_id"))
			return
		}

		state, err := deps.PlaybackService.GetState(c.Request.Context(), videoID, userID)
		if err != nil {
			types.ErrorResponse(c, err)
			return
		}

		c.JSON(http.StatusOK, state)
	}
}
