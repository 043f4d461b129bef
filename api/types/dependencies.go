package types

import (
	"github.com/coursekit/video-api/internal/backends"
	"github.com/coursekit/video-api/internal/database"
	"github.com/coursekit/video-api/internal/services/playback"
	"github.com/coursekit/video-api/internal/services/transcripts"
	"github.com/coursekit/video-api/internal/services/videos"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	Registry          *backends.Registry
	VideoService      videos.Service
	TranscriptService transcripts.Service
	PlaybackService   playback.Service

	// Course-wide platform credentials, keyed by player name
	Credentials map[string]backends.Credentials
}

// CredentialsFor returns the stored credentials for a platform, or the zero
// value when none are configured.
func (d *Dependencies) CredentialsFor(playerName string) backends.Credentials {
	if d == nil || d.Credentials == nil {
		return backends.Credentials{}
	}
	return d.Credentials[playerName]
}
