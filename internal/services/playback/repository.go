package playback

import (
	"context"
	"errors"
	"fmt"

	"github.com/coursekit/video-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new playback state repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// GetState retrieves the state for a (video, user) pair
func (r *RepositoryImpl) GetState(ctx context.Context, videoID uint, userID string) (*models.PlaybackState, error) {
	var state models.PlaybackState
	err := r.db.WithContext(ctx).
		Where("video_id = ? AND user_id = ?", videoID, userID).
		First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("playback state not found")
		}
		return nil, fmt.Errorf("getting playback state: %w", err)
	}
	return &state, nil
}

// UpsertState inserts or replaces the state for a (video, user) pair
func (r *RepositoryImpl) UpsertState(ctx context.Context, state *models.PlaybackState) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "video_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"current_time", "playback_rate", "volume", "muted",
			"captions_language", "transcripts_enabled", "captions_enabled", "updated_at",
		}),
	}).Create(state).Error
	if err != nil {
		return fmt.Errorf("upserting playback state: %w", err)
	}
	return nil
}

// DeleteStatesByVideoID removes every state row for a video
func (r *RepositoryImpl) DeleteStatesByVideoID(ctx context.Context, videoID uint) error {
	result := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&models.PlaybackState{})
	if result.Error != nil {
		return fmt.Errorf("deleting playback states: %w", result.Error)
	}
	return nil
}
