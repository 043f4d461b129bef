package backends

import (
	"context"
	"path"
	"regexp"
	"strings"

	"github.com/coursekit/video-api/internal/models"
	"github.com/coursekit/video-api/pkg/errors"
)

// Direct links to media files with a recognized container extension.
var html5URLRe = regexp.MustCompile(
	`^(https?|ftp)://[^\s/$.?#].[^\s]*\.(mpeg|mp4|ogg|webm)`,
)

// HTML5 adapts direct file links played by the browser's native video
// element. There is no platform API: the URL itself is the media id and
// transcripts only come from manual uploads.
type HTML5 struct{}

// NewHTML5 creates the HTML5 adapter.
func NewHTML5() *HTML5 { return &HTML5{} }

// Name implements Player.
func (h *HTML5) Name() string { return PlayerHTML5 }

// Match implements Player.
func (h *HTML5) Match(href string) bool {
	return html5URLRe.MatchString(href)
}

// MediaID implements Player. The full URL is the id; the player needs
// nothing shorter.
func (h *HTML5) MediaID(href string) (string, error) {
	if !h.Match(href) {
		return "", errors.InvalidURLError(PlayerHTML5, href)
	}
	return href, nil
}

// ContentType returns the MIME type for a media URL based on its extension.
func (h *HTML5) ContentType(href string) string {
	ext := strings.TrimPrefix(path.Ext(href), ".")
	return "video/" + ext
}

// AuthenticateAPI implements Player.
func (h *HTML5) AuthenticateAPI(_ context.Context, _ Credentials) (AuthData, string) {
	return AuthData{}, ""
}

// GetDefaultTranscripts implements Player. There is no platform API to
// query, so the listing is empty.
func (h *HTML5) GetDefaultTranscripts(_ context.Context, _ string, _ Credentials) ([]models.Transcript, string) {
	return nil, ""
}

// DownloadDefaultTranscript implements Player.
func (h *HTML5) DownloadDefaultTranscript(_ context.Context, _, _ string) (string, error) {
	return "", nil
}

// CustomizeEditableFields implements Player.
func (h *HTML5) CustomizeEditableFields(fields []string) (string, []string) {
	help := "Direct media links play natively; transcripts must be uploaded manually."
	return help, removeFields(fields, "account_id", "player_id", "token")
}
