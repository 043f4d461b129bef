package videos

import (
	"context"
	"errors"
	"fmt"

	"github.com/coursekit/video-api/internal/models"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new video repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateVideo creates a new video in the database
func (r *RepositoryImpl) CreateVideo(ctx context.Context, video *models.Video) error {
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		return fmt.Errorf("creating video: %w", err)
	}
	return nil
}

// GetVideoByID retrieves a video by its ID
func (r *RepositoryImpl) GetVideoByID(ctx context.Context, id uint) (*models.Video, error) {
	var video models.Video
	if err := r.db.WithContext(ctx).First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("video not found")
		}
		return nil, fmt.Errorf("getting video: %w", err)
	}
	return &video, nil
}

// GetVideoByHref retrieves a video by its source URL
func (r *RepositoryImpl) GetVideoByHref(ctx context.Context, href string) (*models.Video, error) {
	var video models.Video
	if err := r.db.WithContext(ctx).Where("href = ?", href).First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("video not found")
		}
		return nil, fmt.Errorf("getting video: %w", err)
	}
	return &video, nil
}

// ListVideos retrieves all videos ordered by creation time
func (r *RepositoryImpl) ListVideos(ctx context.Context) ([]models.Video, error) {
	var videos []models.Video
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, fmt.Errorf("listing videos: %w", err)
	}
	return videos, nil
}

// UpdateVideo updates an existing video
func (r *RepositoryImpl) UpdateVideo(ctx context.Context, video *models.Video) error {
	result := r.db.WithContext(ctx).Save(video)
	if result.Error != nil {
		return fmt.Errorf("updating video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("video not found")
	}
	return nil
}

// DeleteVideo deletes a video by its ID
func (r *RepositoryImpl) DeleteVideo(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Video{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("video not found")
	}
	return nil
}
