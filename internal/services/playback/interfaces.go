package playback

import (
	"context"

	"github.com/coursekit/video-api/internal/models"
)

// Repository defines the interface for playback state data access
type Repository interface {
	GetState(ctx context.Context, videoID uint, userID string) (*models.PlaybackState, error)
	UpsertState(ctx context.Context, state *models.PlaybackState) error
	DeleteStatesByVideoID(ctx context.Context, videoID uint) error
}

// Service defines the interface for playback state business logic
type Service interface {
	// GetState returns the stored state for a (video, user) pair, or the
	// initial defaults when the student has never played the video.
	GetState(ctx context.Context, videoID uint, userID string) (*models.PlaybackState, error)

	// SaveState validates and persists a state update.
	SaveState(ctx context.Context, state *models.PlaybackState) (*models.PlaybackState, error)

	// ResetStates drops every student's state for a video.
	ResetStates(ctx context.Context, videoID uint) error
}
