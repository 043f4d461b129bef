package videos

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/api/types"
)

// GetByID handles GET /api/v1/videos/:id
// @Summary Get a registered video
// @Tags videos
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} models.Video
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/videos/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseVideoID(c)
		if err != nil {
			types.ErrorResponse(c, err)
			return
		}

		video, err := deps.VideoService.GetVideoByID(c.Request.Context(), id)
		if err != nil {
			types.ErrorResponse(c, err)
			return
		}

		c.JSON(http.StatusOK, video)
	}
}
