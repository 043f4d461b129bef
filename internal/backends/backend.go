// Package backends contains the per-platform video adapters. Each adapter
// recognizes its platform's URLs, talks to the platform's captions API and
// normalizes fetched transcripts into WebVTT.
package backends

import (
	"context"
	"regexp"

	"github.com/coursekit/video-api/internal/models"
)

// Platform identifiers. The set of backends is closed; there is no runtime
// plugin discovery.
const (
	PlayerYouTube    = "youtube"
	PlayerBrightcove = "brightcove"
	PlayerWistia     = "wistia"
	PlayerVimeo      = "vimeo"
	PlayerHTML5      = "html5"
	PlayerDummy      = "dummy"
)

// User-facing messages for the listing operations. Callers distinguish
// "platform unreachable" from "platform has nothing" by comparing against
// these constants.
const (
	MsgTransportFailure = "No timed transcript may be fetched from a video platform."
	MsgNoTranscripts    = "There are no default transcripts for the video on the video platform."
	MsgNoCredentials    = "No API credentials provided"
)

// Credentials is the platform-specific bag of secrets supplied by the host's
// stored configuration.
type Credentials struct {
	Token        string `json:"token,omitempty"`
	AccountID    string `json:"account_id,omitempty"`
	ClientID     string `json:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
}

// AuthData carries whatever tokens an authentication exchange produced.
// Nothing here is persisted by the backends; the caller decides.
type AuthData map[string]string

// Player is the contract every video platform adapter implements.
type Player interface {
	// Name returns the platform identifier.
	Name() string

	// Match tests whether the adapter recognizes a video URL.
	Match(href string) bool

	// MediaID extracts the platform's media id from a matched URL.
	// Calling it on an unmatched URL returns an invalid-URL error.
	MediaID(href string) (string, error)

	// AuthenticateAPI performs the platform's credential exchange. Expected
	// failures come back as a non-empty message, never as a raised transport
	// error.
	AuthenticateAPI(ctx context.Context, creds Credentials) (AuthData, string)

	// GetDefaultTranscripts lists the captions the platform holds for a
	// video, languages normalized against the reference table. Transport
	// failures yield an empty list plus MsgTransportFailure.
	GetDefaultTranscripts(ctx context.Context, videoID string, creds Credentials) ([]models.Transcript, string)

	// DownloadDefaultTranscript fetches one transcript and converts it to
	// WebVTT. Unparseable payloads produce a typed malformed-response error.
	DownloadDefaultTranscript(ctx context.Context, url, languageCode string) (string, error)

	// CustomizeEditableFields filters out configuration fields the platform
	// has no use for and returns a help message for the editor.
	CustomizeEditableFields(fields []string) (string, []string)
}

// captionsAPI statically describes a platform's captions endpoint: the URL
// template, its request parameters and the response field names holding the
// language code, label and subtitle body. Descriptors are fixed at adapter
// construction; per-request URLs are always built as local values so that
// concurrent requests against one adapter cannot corrupt each other.
type captionsAPI struct {
	URL      string
	Params   map[string]string
	Response map[string]string
}

// submatch extracts a named capture group from the first match of re.
func submatch(re *regexp.Regexp, href, group string) (string, bool) {
	match := re.FindStringSubmatch(href)
	if match == nil {
		return "", false
	}
	for i, name := range re.SubexpNames() {
		if name == group && i < len(match) {
			return match[i], true
		}
	}
	return "", false
}

// removeFields filters fields out of the editable field list, preserving order.
func removeFields(fields []string, drop ...string) []string {
	dropSet := make(map[string]bool, len(drop))
	for _, name := range drop {
		dropSet[name] = true
	}
	kept := make([]string, 0, len(fields))
	for _, field := range fields {
		if !dropSet[field] {
			kept = append(kept, field)
		}
	}
	return kept
}
