package playback

import (
	"context"
	"fmt"
	"strings"

	"github.com/coursekit/video-api/internal/models"
	"github.com/coursekit/video-api/pkg/errors"
	"github.com/coursekit/video-api/pkg/lang"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new playback state service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// GetState returns the stored state, or the initial defaults when the
// student has no state yet. Other repository failures propagate.
func (s *ServiceImpl) GetState(ctx context.Context, videoID uint, userID string) (*models.PlaybackState, error) {
	if userID == "" {
		return nil, errors.MissingFieldError("user_id")
	}
	state, err := s.repository.GetState(ctx, videoID, userID)
	if err != nil {
		if strings.HasSuffix(err.Error(), "not found") {
			return models.DefaultPlaybackState(videoID, userID), nil
		}
		return nil, err
	}
	return state, nil
}

// SaveState validates and persists a state update
func (s *ServiceImpl) SaveState(ctx context.Context, state *models.PlaybackState) (*models.PlaybackState, error) {
	if state.UserID == "" {
		return nil, errors.MissingFieldError("user_id")
	}
	if state.CurrentTime < 0 {
		return nil, errors.ValidationError("current_time", "must not be negative")
	}
	if state.PlaybackRate <= 0 {
		return nil, errors.ValidationError("playback_rate", "must be positive")
	}
	if state.Volume < 0 || state.Volume > 1 {
		return nil, errors.ValidationError("volume", "must be between 0 and 1")
	}
	if state.CaptionsLanguage != "" {
		code, _, err := lang.Normalize(state.CaptionsLanguage)
		if err != nil {
			return nil, err
		}
		state.CaptionsLanguage = code
	}

	if err := s.repository.UpsertState(ctx, state); err != nil {
		return nil, fmt.Errorf("saving playback state: %w", err)
	}
	return state, nil
}

// ResetStates drops every student's state for a video
func (s *ServiceImpl) ResetStates(ctx context.Context, videoID uint) error {
	return s.repository.DeleteStatesByVideoID(ctx, videoID)
}
