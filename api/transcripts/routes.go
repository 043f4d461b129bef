package transcripts

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/api/types"
	"github.com/coursekit/video-api/internal/models"
	"github.com/coursekit/video-api/pkg/errors"
)

// RegisterRoutes registers transcript routes under /videos/:id/transcripts
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("", GetAll(deps))
	group.POST("", Post(deps))
	group.GET("/defaults", GetDefaults(deps))
	group.GET("/:lang", GetByLang(deps))
	group.GET("/:lang/download", Download(deps))
	group.DELETE("/:lang", Delete(deps))
}

// loadVideo resolves the :id path parameter into a stored video. On failure
// it writes the error response and returns false.
func loadVideo(c *gin.Context, deps *types.Dependencies) (*models.Video, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		types.ErrorResponse(c, errors.ValidationError("id", "must be a positive integer"))
		return nil, false
	}

	video, err := deps.VideoService.GetVideoByID(c.Request.Context(), uint(id))
	if err != nil {
		types.ErrorResponse(c, err)
		return nil, false
	}
	return video, true
}
