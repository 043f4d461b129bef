package api

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/coursekit/video-api/api/health"
	"github.com/coursekit/video-api/api/platforms"
	"github.com/coursekit/video-api/api/playback"
	"github.com/coursekit/video-api/api/transcripts"
	"github.com/coursekit/video-api/api/types"
	"github.com/coursekit/video-api/api/version"
	"github.com/coursekit/video-api/api/videos"
	_ "github.com/coursekit/video-api/docs/swagger"
	"github.com/coursekit/video-api/internal/backends"
	playbackService "github.com/coursekit/video-api/internal/services/playback"
	transcriptsService "github.com/coursekit/video-api/internal/services/transcripts"
	videosService "github.com/coursekit/video-api/internal/services/videos"
	"github.com/coursekit/video-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Load config for API routes
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Initialize the platform adapter registry if not set
	if deps.Registry == nil {
		deps.Registry = backends.NewRegistry(backends.Config{
			Timeout: cfg.Backends.Timeout,
			YouTube: backends.YouTubeConfig{
				TimedTextURL: cfg.Backends.YouTube.TimedTextURL,
			},
			Brightcove: backends.BrightcoveConfig{
				OAuthURL: cfg.Backends.Brightcove.OAuthURL,
				CMSURL:   cfg.Backends.Brightcove.CMSURL,
			},
			Wistia: backends.WistiaConfig{
				APIURL: cfg.Backends.Wistia.APIURL,
			},
		})
	}

	// Course-wide platform credentials from configuration
	if deps.Credentials == nil {
		deps.Credentials = map[string]backends.Credentials{
			backends.PlayerBrightcove: {
				Token:     cfg.Brightcove.Token,
				AccountID: cfg.Brightcove.AccountID,
			},
			backends.PlayerWistia: {
				Token: cfg.Wistia.Token,
			},
		}
	}

	// Platform catalog routes with general rate limiting (10 req/s, burst of 20)
	platformGroup := v1.Group("/platforms")
	platformGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	platforms.RegisterRoutes(platformGroup, deps)

	// Routes below need the database
	if deps.DB != nil && deps.DB.DB != nil {
		if deps.VideoService == nil {
			deps.VideoService = videosService.NewService(
				videosService.NewRepository(deps.DB.DB), deps.Registry)
		}
		if deps.TranscriptService == nil {
			deps.TranscriptService = transcriptsService.NewService(
				transcriptsService.NewRepository(deps.DB.DB), deps.Registry)
		}
		if deps.PlaybackService == nil {
			deps.PlaybackService = playbackService.NewService(
				playbackService.NewRepository(deps.DB.DB))
		}

		// Register video routes with general rate limiting (10 req/s, burst of 20)
		videoGroup := v1.Group("/videos")
		videoGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
		videos.RegisterRoutes(videoGroup, deps)

		// Transcript routes hit external platform APIs, so the limit is
		// tighter (5 req/s, burst of 10)
		transcriptGroup := v1.Group("/videos/:id/transcripts")
		transcriptGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
		transcripts.RegisterRoutes(transcriptGroup, deps)

		// Register playback state routes (20 req/s, burst of 40: players
		// save state frequently while a video plays)
		playbackGroup := v1.Group("/videos/:id/playback")
		playbackGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 20, 40))
		playback.RegisterRoutes(playbackGroup, deps)
	}

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
