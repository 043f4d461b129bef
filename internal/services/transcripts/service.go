package transcripts

import (
	"context"
	"fmt"
	"log"

	"github.com/coursekit/video-api/internal/backends"
	"github.com/coursekit/video-api/internal/models"
	"github.com/coursekit/video-api/pkg/errors"
	"github.com/coursekit/video-api/pkg/lang"
	"github.com/coursekit/video-api/pkg/subtitle"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	registry   *backends.Registry
}

// NewService creates a new transcript service
func NewService(repository Repository, registry *backends.Registry) Service {
	return &ServiceImpl{
		repository: repository,
		registry:   registry,
	}
}

// ListTranscripts returns the stored transcripts for a video
func (s *ServiceImpl) ListTranscripts(ctx context.Context, videoID uint) ([]models.Transcript, error) {
	return s.repository.GetTranscriptsByVideoID(ctx, videoID)
}

// FetchDefaultTranscripts lists platform defaults merged against stored manual transcripts
func (s *ServiceImpl) FetchDefaultTranscripts(ctx context.Context, video *models.Video, creds backends.Credentials) ([]models.Transcript, string) {
	player, ok := s.registry.Get(video.PlayerName)
	if !ok {
		return nil, backends.MsgTransportFailure
	}

	defaults, message := player.GetDefaultTranscripts(ctx, video.MediaID, creds)
	if message != "" {
		log.Printf("[INFO] no default transcripts for video %d (%s): %s", video.ID, video.PlayerName, message)
		return nil, message
	}
	for i := range defaults {
		defaults[i].VideoID = video.ID
	}

	manual, err := s.repository.GetTranscriptsBySource(ctx, video.ID, models.TranscriptSourceManual)
	if err != nil {
		log.Printf("[ERROR] loading manual transcripts for video %d: %v", video.ID, err)
		return nil, backends.MsgTransportFailure
	}
	return MergeDefaults(defaults, manual), ""
}

// DownloadDefaultTranscript fetches one platform default transcript as WebVTT
func (s *ServiceImpl) DownloadDefaultTranscript(ctx context.Context, video *models.Video, langCode string, creds backends.Credentials) (string, error) {
	code, _, err := lang.Normalize(langCode)
	if err != nil {
		return "", err
	}

	player, ok := s.registry.Get(video.PlayerName)
	if !ok {
		return "", errors.Newf(errors.ErrCodeExternalService, "no player registered under %q", video.PlayerName)
	}

	defaults, message := player.GetDefaultTranscripts(ctx, video.MediaID, creds)
	if message != "" {
		return "", errors.New(errors.ErrCodeExternalService, message)
	}
	for _, transcript := range defaults {
		if transcript.Lang == code {
			return player.DownloadDefaultTranscript(ctx, transcript.URL, code)
		}
	}
	return "", errors.NotFound("transcript", fmt.Sprintf("video %d lang %s", video.ID, code))
}

// UploadManualTranscript converts and stores an uploaded transcript
func (s *ServiceImpl) UploadManualTranscript(ctx context.Context, videoID uint, langCode, content string) (*models.Transcript, error) {
	code, label, err := lang.Normalize(langCode)
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, errors.MissingFieldError("content")
	}

	converted := subtitle.Convert(content)
	if converted == "" {
		return nil, errors.New(errors.ErrCodeValidation, "uploaded transcript is not in a supported caption format").
			WithDetail("lang", code)
	}

	transcript := &models.Transcript{
		VideoID: videoID,
		Lang:    code,
		Label:   label,
		Source:  models.TranscriptSourceManual,
		Content: converted,
	}
	if err := s.repository.UpsertTranscript(ctx, transcript); err != nil {
		return nil, err
	}
	return transcript, nil
}

// GetTranscript returns one stored transcript
func (s *ServiceImpl) GetTranscript(ctx context.Context, videoID uint, langCode string) (*models.Transcript, error) {
	code, _, err := lang.Normalize(langCode)
	if err != nil {
		return nil, err
	}
	return s.repository.GetTranscript(ctx, videoID, code)
}

// DeleteTranscript removes one stored transcript
func (s *ServiceImpl) DeleteTranscript(ctx context.Context, videoID uint, langCode string) error {
	code, _, err := lang.Normalize(langCode)
	if err != nil {
		return err
	}
	return s.repository.DeleteTranscript(ctx, videoID, code)
}
