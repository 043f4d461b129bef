package platforms

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursekit/video-api/api/types"
	"github.com/coursekit/video-api/internal/backends"
	"github.com/coursekit/video-api/pkg/errors"
)

// PostAuthRequest carries credential overrides for an authentication probe.
// Fields left empty fall back to the configured course-wide credentials.
type PostAuthRequest struct {
	Token     string `json:"token"`
	AccountID string `json:"account_id"`
}

// PostAuth handles POST /api/v1/platforms/:name/auth
// @Summary Exchange platform credentials for API tokens
// @Description Runs the platform's credential exchange. Expected failures come
// @Description back as a message with status 200; only transport-level problems
// @Description produce an error status.
// @Tags platforms
// @Accept json
// @Produce json
// @Param name path string true "Platform name"
// @Param request body PostAuthRequest false "Credential overrides"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/platforms/{name}/auth [post]
func PostAuth(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		player, ok := deps.Registry.Get(name)
		if !ok {
			types.ErrorResponse(c, errors.NotFound("platform", name))
			return
		}

		var req PostAuthRequest
		if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
			types.ErrorResponse(c, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid request body"))
			return
		}

		creds := deps.CredentialsFor(name)
		if req.Token != "" {
			creds.Token = req.Token
		}
		if req.AccountID != "" {
			creds.AccountID = req.AccountID
		}

		authData, message := player.AuthenticateAPI(c.Request.Context(), creds)
		if message != "" {
			log.Printf("[INFO] Authentication against %s failed: %s", name, message)
		}

		if authData == nil {
			authData = backends.AuthData{}
		}

		response := gin.H{
			"status":    types.StatusOK,
			"auth_data": authData,
		}
		if message != "" {
			response["message"] = message
		}

		c.JSON(http.StatusOK, response)
	}
}
