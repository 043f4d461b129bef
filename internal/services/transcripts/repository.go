package transcripts

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

// NewRepository creates a new transcript repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateTranscript creates a new transcript in the database
func (r *RepositoryImpl) CreateTranscript(ctx context.Context, transcript *models.Transcript) error {
	if err := r.db.WithContext(ctx).Create(transcript).Error; err != nil {
		return fmt.Errorf("creating transcript: %w", err)
	}
	return nil
}

// UpsertTranscript inserts or replaces the transcript for a (video, lang) pair
func (r *RepositoryImpl) UpsertTranscript(ctx context.Context, transcript *models.Transcript) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "video_id"}, {Name: "lang"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"label", "source", "url", "content", "updated_at",
		}),
	}).Create(transcript).Error
	if err != nil {
		return fmt.Errorf("upserting transcript: %w", err)
	}
	return nil
}

// GetTranscript retrieves one transcript by video and language
func (r *RepositoryImpl) GetTranscript(ctx context.Context, videoID uint, lang string) (*models.Transcript, error) {
	var transcript models.Transcript
	err := r.db.WithContext(ctx).
		Where("video_id = ? AND lang = ?", videoID, lang).
		First(&transcript).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("transcript not found")
		}
		return nil, fmt.Errorf("getting transcript: %w", err)
	}
	return &transcript, nil
}

// GetTranscriptsByVideoID retrieves all transcripts for a video
func (r *RepositoryImpl) GetTranscriptsByVideoID(ctx context.Context, videoID uint) ([]models.Transcript, error) {
	var transcripts []models.Transcript
	err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("lang ASC").
		Find(&transcripts).Error
	if err != nil {
		return nil, fmt.Errorf("listing transcripts: %w", err)
	}
	return transcripts, nil
}

// GetTranscriptsBySource retrieves a video's transcripts of one source
func (r *RepositoryImpl) GetTranscriptsBySource(ctx context.Context, videoID uint, source models.TranscriptSource) ([]models.Transcript, error) {
	var transcripts []models.Transcript
	err := r.db.WithContext(ctx).
		Where("video_id = ? AND source = ?", videoID, source).
		Order("lang ASC").
		Find(&transcripts).Error
	if err != nil {
		return nil, fmt.Errorf("listing transcripts by source: %w", err)
	}
	return transcripts, nil
}

// DeleteTranscript removes one transcript by video and language
func (r *RepositoryImpl) DeleteTranscript(ctx context.Context, videoID uint, lang string) error {
	result := r.db.WithContext(ctx).
		Where("video_id = ? AND lang = ?", videoID, lang).
		Delete(&models.Transcript{})
	if result.Error != nil {
		return fmt.Errorf("deleting transcript: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("transcript not found")
	}
	return nil
}
