package platforms

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursekit/video-api/api/types"
	"github.com/coursekit/video-api/internal/backends"
)

func newTestRouter(t *testing.T, cfg backends.Config, creds map[string]backends.Credentials) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	deps := &types.Dependencies{
		Registry:    backends.NewRegistry(cfg),
		Credentials: creds,
	}

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1/platforms"), deps)
	return router
}

func TestGetAllListsPlatforms(t *testing.T) {
	router := newTestRouter(t, backends.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/platforms", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Platforms []struct {
			Name   string   `json:"name"`
			Fields []string `json:"fields"`
			Help   string   `json:"help"`
		} `json:"platforms"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, 5, response.Count)

	byName := map[string][]string{}
	for _, platform := range response.Platforms {
		byName[platform.Name] = platform.Fields
	}

	// YouTube hides the credential fields, Brightcove keeps all of them.
	assert.Equal(t, []string{"display_name", "href"}, byName[backends.PlayerYouTube])
	assert.Equal(t, []string{"display_name", "href", "account_id", "player_id", "token"}, byName[backends.PlayerBrightcove])
	assert.Equal(t, []string{"display_name", "href", "token"}, byName[backends.PlayerWistia])
}

func TestPostAuthUnknownPlatform(t *testing.T) {
	router := newTestRouter(t, backends.Config{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/platforms/dailymotion/auth", strings.NewReader(""))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostAuthNoCredentialPlatform(t *testing.T) {
	router := newTestRouter(t, backends.Config{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/platforms/youtube/auth", strings.NewReader(""))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
	assert.NotContains(t, response, "message")
}

func TestPostAuthWistiaProbe(t *testing.T) {
	var gotPassword string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPassword = r.URL.Query().Get("api_password")
		if gotPassword != "valid-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `[]`)
	}))
	t.Cleanup(server.Close)

	cfg := backends.Config{Wistia: backends.WistiaConfig{APIURL: server.URL}}

	t.Run("request credentials override configured ones", func(t *testing.T) {
		router := newTestRouter(t, cfg, map[string]backends.Credentials{
			backends.PlayerWistia: {Token: "configured-token"},
		})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/platforms/wistia/auth",
			strings.NewReader(`{"token": "valid-token"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "valid-token", gotPassword)

		var response struct {
			Status   string            `json:"status"`
			AuthData map[string]string `json:"auth_data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "ok", response.Status)
		assert.Equal(t, "valid-token", response.AuthData["token"])
	})

	t.Run("rejected credentials return a message", func(t *testing.T) {
		router := newTestRouter(t, cfg, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/platforms/wistia/auth",
			strings.NewReader(`{"token": "wrong-token"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response["message"])
	})
}
