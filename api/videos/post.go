package videos

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/api/types"
	"github.com/coursekit/video-api/pkg/errors"
)

// PostRequest is the payload for registering a video
type PostRequest struct {
	DisplayName string `json:"display_name"`
	Href        string `json:"href" binding:"required"`
}

// Post handles POST /api/v1/videos
// @Summary Register a video
// @Description Resolves the video URL to a platform adapter, extracts the media id and stores the video
// @Tags videos
// @Accept json
// @Produce json
// @Param request body PostRequest true "Video to register"
// @Success 201 {object} models.Video
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/videos [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			types.ErrorResponse(c, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid request body"))
			return
		}

		video, err := deps.VideoService.RegisterVideo(c.Request.Context(), req.DisplayName, req.Href)
		if err != nil {
			log.Printf("[ERROR] Failed to register video %s: %v", req.Href, err)
			types.ErrorResponse(c, err)
			return
		}

		log.Printf("[INFO] Registered video %d (%s) via %s", video.ID, video.MediaID, video.PlayerName)
		c.JSON(http.StatusCreated, video)
	}
}
