package backends

import (
	"context"

	"github.com/coursekit/video-api/internal/models"
	"github.com/coursekit/video-api/pkg/errors"
)

// Dummy is the fallback adapter returned when no platform recognizes a URL.
// It matches nothing and every operation reports the unsupported state, so
// callers never have to nil-check the registry's dispatch result.
type Dummy struct{}

// NewDummy creates the fallback adapter.
func NewDummy() *Dummy { return &Dummy{} }

// Name implements Player.
func (d *Dummy) Name() string { return PlayerDummy }

// Match implements Player. The dummy never claims a URL.
func (d *Dummy) Match(_ string) bool { return false }

// MediaID implements Player. The placeholder keeps templates rendering
// without a real id.
func (d *Dummy) MediaID(_ string) (string, error) {
	return "<media_id>", nil
}

// AuthenticateAPI implements Player.
func (d *Dummy) AuthenticateAPI(_ context.Context, _ Credentials) (AuthData, string) {
	return AuthData{}, ""
}

// GetDefaultTranscripts implements Player.
func (d *Dummy) GetDefaultTranscripts(_ context.Context, _ string, _ Credentials) ([]models.Transcript, string) {
	return nil, MsgNoTranscripts
}

// DownloadDefaultTranscript implements Player.
func (d *Dummy) DownloadDefaultTranscript(_ context.Context, _, _ string) (string, error) {
	return "", errors.New(errors.ErrCodeExternalService, MsgTransportFailure)
}

// CustomizeEditableFields implements Player.
func (d *Dummy) CustomizeEditableFields(fields []string) (string, []string) {
	return "This video URL is not supported by any available player.", fields
}
