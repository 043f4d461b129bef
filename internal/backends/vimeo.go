package backends

import (
	"context"
	"regexp"

	"github.com/coursekit/video-api/internal/models"
	"github.com/coursekit/video-api/pkg/errors"
)

var vimeoURLRe = regexp.MustCompile(
	`https?://(.+)?(vimeo\.com)/(?P<media_id>.*)`,
)

// Vimeo adapts videos hosted on vimeo.com. The player embeds fine without
// credentials, but Vimeo exposes no public captions listing, so the
// transcript operations are no-ops returning empty success.
type Vimeo struct{}

// NewVimeo creates the Vimeo adapter.
func NewVimeo() *Vimeo { return &Vimeo{} }

// Name implements Player.
func (v *Vimeo) Name() string { return PlayerVimeo }

// Match implements Player.
func (v *Vimeo) Match(href string) bool {
	return vimeoURLRe.MatchString(href)
}

// MediaID implements Player.
func (v *Vimeo) MediaID(href string) (string, error) {
	id, ok := submatch(vimeoURLRe, href, "media_id")
	if !ok || id == "" {
		return "", errors.InvalidURLError(PlayerVimeo, href)
	}
	return id, nil
}

// AuthenticateAPI implements Player. Playback needs no credentials.
func (v *Vimeo) AuthenticateAPI(_ context.Context, _ Credentials) (AuthData, string) {
	return AuthData{}, ""
}

// GetDefaultTranscripts implements Player. There is no captions API to
// query, so the listing is empty.
func (v *Vimeo) GetDefaultTranscripts(_ context.Context, _ string, _ Credentials) ([]models.Transcript, string) {
	return nil, ""
}

// DownloadDefaultTranscript implements Player.
func (v *Vimeo) DownloadDefaultTranscript(_ context.Context, _, _ string) (string, error) {
	return "", nil
}

// CustomizeEditableFields implements Player.
func (v *Vimeo) CustomizeEditableFields(fields []string) (string, []string) {
	help := "Vimeo videos play without credentials; default transcripts are not available."
	return help, removeFields(fields, "account_id", "player_id", "token")
}
