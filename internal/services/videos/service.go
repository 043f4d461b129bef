package videos

import (
	"context"

	"github.com/coursekit/video-api/internal/backends"
	"github.com/coursekit/video-api/internal/models"
	"github.com/coursekit/video-api/pkg/errors"
)

// MsgUnsupportedURL is shown when no platform adapter recognizes a URL.
const MsgUnsupportedURL = "Incorrect or unsupported video URL, please recheck."

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	registry   *backends.Registry
}

// NewService creates a new video service
func NewService(repository Repository, registry *backends.Registry) Service {
	return &ServiceImpl{
		repository: repository,
		registry:   registry,
	}
}

// RegisterVideo resolves the URL, extracts the media id and persists the video
func (s *ServiceImpl) RegisterVideo(ctx context.Context, displayName, href string) (*models.Video, error) {
	if href == "" {
		return nil, errors.MissingFieldError("href")
	}

	player, err := s.ResolvePlayer(href)
	if err != nil {
		return nil, err
	}
	mediaID, err := player.MediaID(href)
	if err != nil {
		return nil, err
	}

	video := &models.Video{
		DisplayName: displayName,
		Href:        href,
		PlayerName:  player.Name(),
		MediaID:     mediaID,
	}
	if err := s.repository.CreateVideo(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// GetVideoByID retrieves a video by its ID
func (s *ServiceImpl) GetVideoByID(ctx context.Context, id uint) (*models.Video, error) {
	return s.repository.GetVideoByID(ctx, id)
}

// ListVideos retrieves all registered videos
func (s *ServiceImpl) ListVideos(ctx context.Context) ([]models.Video, error) {
	return s.repository.ListVideos(ctx)
}

// UpdateVideo updates a video, re-resolving the platform when the URL changed
func (s *ServiceImpl) UpdateVideo(ctx context.Context, id uint, displayName, href string) (*models.Video, error) {
	video, err := s.repository.GetVideoByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if displayName != "" {
		video.DisplayName = displayName
	}
	if href != "" && href != video.Href {
		player, err := s.ResolvePlayer(href)
		if err != nil {
			return nil, err
		}
		mediaID, err := player.MediaID(href)
		if err != nil {
			return nil, err
		}
		video.Href = href
		video.PlayerName = player.Name()
		video.MediaID = mediaID
	}

	if err := s.repository.UpdateVideo(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// DeleteVideo deletes a video by its ID
func (s *ServiceImpl) DeleteVideo(ctx context.Context, id uint) error {
	return s.repository.DeleteVideo(ctx, id)
}

// ResolvePlayer returns the adapter recognizing the URL. The dummy fallback
// is treated as a validation failure here: a video cannot be registered
// against a platform that will never play it.
func (s *ServiceImpl) ResolvePlayer(href string) (backends.Player, error) {
	player := s.registry.Resolve(href)
	if player.Name() == backends.PlayerDummy {
		return nil, errors.New(errors.ErrCodeInvalidURL, MsgUnsupportedURL).
			WithDetail("href", href)
	}
	return player, nil
}
