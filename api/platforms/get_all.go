package platforms

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/api/types"
)

// editableFields is the full set of editor fields a platform may use. Each
// adapter filters out the ones it has no use for.
var editableFields = []string{"display_name", "href", "account_id", "player_id", "token"}

// GetAll handles GET /api/v1/platforms
// @Summary List supported video platforms
// @Description Returns each platform's editor field set and setup help text
// @Tags platforms
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/platforms [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		players := deps.Registry.Players()
		platforms := make([]gin.H, 0, len(players))
		for _, player := range players {
			help, fields := player.CustomizeEditableFields(editableFields)
			platforms = append(platforms, gin.H{
				"name":   player.Name(),
				"fields": fields,
				"help":   help,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"platforms": platforms,
			"count":     len(platforms),
		})
	}
}
