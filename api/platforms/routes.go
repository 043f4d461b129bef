package platforms

import (
	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/api/types"
)

// RegisterRoutes registers platform catalog routes
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("", GetAll(deps))
	group.POST("/:name/auth", PostAuth(deps))
}
