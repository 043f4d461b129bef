package transcripts

import (
	"context"

	"github.com/coursekit/video-api/internal/backends"
	"github.com/coursekit/video-api/internal/models"
)

// Repository defines the interface for transcript data access
type Repository interface {
	// Create operations
	CreateTranscript(ctx context.Context, transcript *models.Transcript) error
	UpsertTranscript(ctx context.Context, transcript *models.Transcript) error

	// Read operations
	GetTranscript(ctx context.Context, videoID uint, lang string) (*models.Transcript, error)
	GetTranscriptsByVideoID(ctx context.Context, videoID uint) ([]models.Transcript, error)
	GetTranscriptsBySource(ctx context.Context, videoID uint, source models.TranscriptSource) ([]models.Transcript, error)

	// Delete operations
	DeleteTranscript(ctx context.Context, videoID uint, lang string) error
}

// Service defines the interface for transcript business logic
type Service interface {
	// ListTranscripts returns the stored transcripts for a video.
	ListTranscripts(ctx context.Context, videoID uint) ([]models.Transcript, error)

	// FetchDefaultTranscripts lists the platform's default transcripts for a
	// video and merges them with the video's stored manual transcripts. A
	// non-empty message explains an empty result.
	FetchDefaultTranscripts(ctx context.Context, video *models.Video, creds backends.Credentials) ([]models.Transcript, string)

	// DownloadDefaultTranscript fetches one default transcript from the
	// platform and returns it as WebVTT.
	DownloadDefaultTranscript(ctx context.Context, video *models.Video, lang string, creds backends.Credentials) (string, error)

	// UploadManualTranscript converts uploaded caption content to WebVTT and
	// stores it, replacing any previous manual transcript in that language.
	UploadManualTranscript(ctx context.Context, videoID uint, lang, content string) (*models.Transcript, error)

	// GetTranscript returns one stored transcript.
	GetTranscript(ctx context.Context, videoID uint, lang string) (*models.Transcript, error)

	// DeleteTranscript removes one stored transcript.
	DeleteTranscript(ctx context.Context, videoID uint, lang string) error
}
