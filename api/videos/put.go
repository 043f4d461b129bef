package videos

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/api/types"
	"github.com/coursekit/video-api/pkg/errors"
)

// PutRequest is the payload for updating a video
type PutRequest struct {
	DisplayName string `json:"display_name"`
	Href        string `json:"href" binding:"required"`
}

// Put handles PUT /api/v1/videos/:id
// @Summary Update a registered video
// @Description Re-resolves the platform adapter when the video URL changes
// @Tags videos
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Param request body PutRequest true "Updated video"
// @Success 200 {object} models.Video
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/videos/{id} [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseVideoID(c)
		if err != nil {
			types.ErrorResponse(c, err)
			return
		}

		var req PutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			types.ErrorResponse(c, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid request body"))
			return
		}

		video, err := deps.VideoService.UpdateVideo(c.Request.Context(), id, req.DisplayName, req.Href)
		if err != nil {
			log.Printf("[ERROR] Failed to update video %d: %v", id, err)
			types.ErrorResponse(c, err)
			return
		}

		c.JSON(http.StatusOK, video)
	}
}
