package backends

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"

	"github.com/coursekit/video-api/internal/models"
	"github.com/coursekit/video-api/pkg/errors"
	"github.com/coursekit/video-api/pkg/lang"
	"github.com/coursekit/video-api/pkg/subtitle"
)

var wistiaURLRe = regexp.MustCompile(
	`https?://(.+)?(wistia\.com|wi\.st)/(medias|embed)/(?P<media_id>.*)`,
)

const msgWistiaAuthFailed = "Authentication to Wistia API failed: please check the API token provided."

// WistiaConfig overrides the Data API endpoint, mainly for tests.
type WistiaConfig struct {
	APIURL string
}

// Wistia adapts videos hosted on wistia.com and wi.st embeds.
//
// Captions are listed from the Data API,
// https://api.wistia.com/v1/medias/{media_id}/captions.json, authenticated
// with an api_password query parameter. Wistia reports languages as
// three-letter ISO 639-2 codes, which the adapter converts to the two-letter
// codes the rest of the system speaks.
type Wistia struct {
	client      *http.Client
	captionsAPI captionsAPI
	apiURL      string
}

// NewWistia creates the Wistia adapter.
func NewWistia(client *http.Client, cfg WistiaConfig) *Wistia {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = "https://api.wistia.com/v1"
	}
	return &Wistia{
		client: client,
		apiURL: apiURL,
		captionsAPI: captionsAPI{
			URL: apiURL + "/medias/{media_id}/captions.json",
			Params: map[string]string{
				"api_password": "",
			},
			Response: map[string]string{
				"language_code":  "language",
				"language_label": "english_name",
				"subs":           "text",
			},
		},
	}
}

// Name implements Player.
func (w *Wistia) Name() string { return PlayerWistia }

// Match implements Player.
func (w *Wistia) Match(href string) bool {
	return wistiaURLRe.MatchString(href)
}

// MediaID implements Player.
func (w *Wistia) MediaID(href string) (string, error) {
	id, ok := submatch(wistiaURLRe, href, "media_id")
	if !ok || id == "" {
		return "", errors.InvalidURLError(PlayerWistia, href)
	}
	return id, nil
}

// AuthenticateAPI implements Player. The token is probed against the medias
// listing endpoint; Wistia has no token exchange, so a token that works is
// the auth data.
func (w *Wistia) AuthenticateAPI(ctx context.Context, creds Credentials) (AuthData, string) {
	if creds.Token == "" {
		return AuthData{}, MsgNoCredentials
	}

	probeURL := fmt.Sprintf("%s/medias.json?%s", w.apiURL, url.Values{
		"api_password": {creds.Token},
	}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL, nil)
	if err != nil {
		return AuthData{}, msgWistiaAuthFailed
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return AuthData{}, msgWistiaAuthFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return AuthData{}, msgWistiaAuthFailed
	}
	return AuthData{"token": creds.Token}, ""
}

// wistiaCaption is one entry of the captions.json listing.
type wistiaCaption struct {
	Language    string `json:"language"`
	EnglishName string `json:"english_name"`
}

// GetDefaultTranscripts implements Player. Listing entries whose three-letter
// code converts to the same two-letter code are deduplicated, first entry
// winning. A code that cannot be converted aborts the listing with the
// conversion error message.
func (w *Wistia) GetDefaultTranscripts(ctx context.Context, videoID string, creds Credentials) ([]models.Transcript, string) {
	listURL := fmt.Sprintf("%s/medias/%s/captions.json?%s", w.apiURL, videoID, url.Values{
		"api_password": {creds.Token},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, MsgTransportFailure
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return nil, MsgTransportFailure
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, msgWistiaAuthFailed
	}
	if resp.StatusCode != http.StatusOK {
		return nil, MsgTransportFailure
	}

	var captions []wistiaCaption
	if err := json.NewDecoder(resp.Body).Decode(&captions); err != nil {
		return nil, errors.MalformedResponseError(PlayerWistia, err).Message
	}
	if len(captions) == 0 {
		return nil, MsgNoTranscripts
	}

	seen := make(map[string]bool, len(captions))
	var transcripts []models.Transcript
	for _, caption := range captions {
		twoLetter, err := lang.ToISO6391(caption.Language)
		if err != nil {
			return nil, err.Error()
		}
		code, label, err := lang.Normalize(twoLetter)
		if err != nil {
			return nil, err.Error()
		}
		if seen[code] {
			continue
		}
		seen[code] = true

		downloadURL := fmt.Sprintf("%s/medias/%s/captions/%s.json?%s", w.apiURL, videoID, caption.Language, url.Values{
			"api_password": {creds.Token},
		}.Encode())
		transcripts = append(transcripts, models.Transcript{
			Lang:   code,
			Label:  label,
			Source: models.TranscriptSourceDefault,
			URL:    downloadURL,
		})
	}
	return transcripts, ""
}

// DownloadDefaultTranscript implements Player. The per-language captions
// resource wraps the subtitle body in a JSON object; the body itself may be
// SRT, DFXP or WebVTT, so it goes through the converter.
func (w *Wistia) DownloadDefaultTranscript(ctx context.Context, downloadURL, _ string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return "", errors.ExternalServiceError(PlayerWistia, err)
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeExternalService, MsgTransportFailure)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf(errors.ErrCodeExternalService, "wistia returned status %d for transcript download", resp.StatusCode)
	}

	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", errors.MalformedResponseError(PlayerWistia, err)
	}

	converted := subtitle.Convert(payload.Text)
	if converted == "" {
		return "", errors.MalformedResponseError(PlayerWistia, fmt.Errorf("unrecognized caption format"))
	}
	return converted, nil
}

// CustomizeEditableFields implements Player. Wistia authenticates with a
// single API password, so the OAuth-style fields are hidden.
func (w *Wistia) CustomizeEditableFields(fields []string) (string, []string) {
	help := "Wistia videos require an API password (token) to fetch default transcripts."
	return help, removeFields(fields, "account_id", "player_id")
}
