package videos

import (
	"context"

	"github.com/coursekit/video-api/internal/backends"
	"github.com/coursekit/video-api/internal/models"
)

// Repository defines the interface for video data access
type Repository interface {
	// Create operations
	CreateVideo(ctx context.Context, video *models.Video) error

	// Read operations
	GetVideoByID(ctx context.Context, id uint) (*models.Video, error)
	GetVideoByHref(ctx context.Context, href string) (*models.Video, error)
	ListVideos(ctx context.Context) ([]models.Video, error)

	// Update operations
	UpdateVideo(ctx context.Context, video *models.Video) error

	// Delete operations
	DeleteVideo(ctx context.Context, id uint) error
}

// Service defines the interface for video business logic
type Service interface {
	// RegisterVideo resolves a video URL to its platform adapter, extracts
	// the media id and persists the video record.
	RegisterVideo(ctx context.Context, displayName, href string) (*models.Video, error)

	// Read operations
	GetVideoByID(ctx context.Context, id uint) (*models.Video, error)
	ListVideos(ctx context.Context) ([]models.Video, error)

	// UpdateVideo re-resolves the platform when the URL changes.
	UpdateVideo(ctx context.Context, id uint, displayName, href string) (*models.Video, error)

	// Delete operations
	DeleteVideo(ctx context.Context, id uint) error

	// ResolvePlayer returns the adapter that recognizes a URL, plus the
	// editor metadata produced by its field customization.
	ResolvePlayer(href string) (backends.Player, error)
}
