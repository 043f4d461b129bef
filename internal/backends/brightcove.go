package backends

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/coursekit/video-api/internal/models"
	"github.com/coursekit/video-api/pkg/errors"
	"github.com/coursekit/video-api/pkg/lang"
	"github.com/coursekit/video-api/pkg/subtitle"
)

var brightcoveURLRe = regexp.MustCompile(
	`https://studio\.brightcove\.com/products/videocloud/media/videos/(?P<media_id>\d+)`,
)

// Authentication step messages. Each OAuth round-trip reports its own
// failure so the editor can show which step broke.
const (
	msgBrightcoveNoClientCredentials = "Authentication to Brightcove API failed: no client credentials have been retrieved. " +
		"Please ensure you have provided an appropriate BC token."
	msgBrightcoveNoAccessToken = "Authentication to Brightcove API failed: no access token has been fetched. " +
		"Check the client credentials provided."
	msgBrightcoveTokenRejected = "Authentication to Brightcove API failed: the access token is invalid or expired."
)

// BrightcoveConfig overrides the OAuth and CMS endpoints, mainly for tests.
type BrightcoveConfig struct {
	OAuthURL string
	CMSURL   string
}

// Brightcove adapts videos hosted on the Brightcove Video Cloud.
//
// Captions live on the CMS API video resource,
// https://cms.api.brightcove.com/v1/accounts/{account_id}/videos/{media_id},
// which requires a client-credentials OAuth access token.
type Brightcove struct {
	client      *http.Client
	oauthURL    string
	captionsAPI captionsAPI
}

// NewBrightcove creates the Brightcove adapter.
func NewBrightcove(client *http.Client, cfg BrightcoveConfig) *Brightcove {
	oauthURL := cfg.OAuthURL
	if oauthURL == "" {
		oauthURL = "https://oauth.brightcove.com/v4"
	}
	cmsURL := cfg.CMSURL
	if cmsURL == "" {
		cmsURL = "https://cms.api.brightcove.com/v1"
	}
	return &Brightcove{
		client:   client,
		oauthURL: oauthURL,
		captionsAPI: captionsAPI{
			URL: cmsURL + "/accounts/{account_id}/videos/{media_id}",
			Response: map[string]string{
				"language_code": "srclang",
				"subs":          "src",
			},
		},
	}
}

// Name implements Player.
func (b *Brightcove) Name() string { return PlayerBrightcove }

// Match implements Player.
func (b *Brightcove) Match(href string) bool {
	return brightcoveURLRe.MatchString(href)
}

// MediaID implements Player.
func (b *Brightcove) MediaID(href string) (string, error) {
	id, ok := submatch(brightcoveURLRe, href, "media_id")
	if !ok {
		return "", errors.InvalidURLError(PlayerBrightcove, href)
	}
	return id, nil
}

// AuthenticateAPI implements Player. Brightcove authentication is a two-step
// exchange: a manually obtained BC token plus the account id buy client
// credentials, which in turn buy a short-lived access token. The access token
// is returned to the caller and never persisted here.
func (b *Brightcove) AuthenticateAPI(ctx context.Context, creds Credentials) (AuthData, string) {
	if creds.Token == "" || creds.AccountID == "" {
		return AuthData{}, MsgNoCredentials
	}

	clientSecret, clientID, errMessage := b.getClientCredentials(ctx, creds.Token, creds.AccountID)
	if errMessage != "" {
		return AuthData{}, errMessage
	}

	accessToken, errMessage := b.getAccessToken(ctx, clientID, clientSecret)
	if errMessage != "" {
		return AuthData{
			"client_id":     clientID,
			"client_secret": clientSecret,
		}, errMessage
	}

	return AuthData{
		"client_id":     clientID,
		"client_secret": clientSecret,
		"access_token":  accessToken,
	}, ""
}

// getClientCredentials exchanges a BC token and account id for client
// credentials via the OAuth identity/operations payload.
func (b *Brightcove) getClientCredentials(ctx context.Context, token, accountID string) (clientSecret, clientID, errMessage string) {
	payload := map[string]interface{}{
		"type": "credential",
		"maximum_scope": []map[string]interface{}{
			{
				"identity": map[string]string{
					"type":       "video-cloud-account",
					"account-id": accountID,
				},
				"operations": []string{
					"video-cloud/video/all",
					"video-cloud/data/all",
				},
			},
		},
		"name": "course-video-api-credentials",
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.oauthURL+"/client_credentials", bytes.NewReader(body))
	if err != nil {
		return "", "", msgBrightcoveNoClientCredentials
	}
	req.Header.Set("Authorization", "BC_TOKEN "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", "", msgBrightcoveNoClientCredentials
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", "", msgBrightcoveNoClientCredentials
	}

	var result struct {
		ClientSecret string `json:"client_secret"`
		ClientID     string `json:"client_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result.ClientID == "" {
		return "", "", msgBrightcoveNoClientCredentials
	}
	return result.ClientSecret, result.ClientID, ""
}

// getAccessToken exchanges client credentials for a bearer access token via
// the client-credentials grant.
func (b *Brightcove) getAccessToken(ctx context.Context, clientID, clientSecret string) (accessToken, errMessage string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		b.oauthURL+"/access_token?grant_type=client_credentials", strings.NewReader(""))
	if err != nil {
		return "", msgBrightcoveNoAccessToken
	}
	basic := base64.StdEncoding.EncodeToString([]byte(clientID + ":" + clientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", msgBrightcoveNoAccessToken
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", msgBrightcoveNoAccessToken
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result.AccessToken == "" {
		return "", msgBrightcoveNoAccessToken
	}
	return result.AccessToken, ""
}

// brightcoveVideo is the CMS API video resource subset the adapter reads.
type brightcoveVideo struct {
	TextTracks []struct {
		SrcLang string `json:"srclang"`
		Src     string `json:"src"`
		Label   string `json:"label"`
	} `json:"text_tracks"`
}

// GetDefaultTranscripts implements Player. Missing client credentials
// short-circuit before any network call.
func (b *Brightcove) GetDefaultTranscripts(ctx context.Context, videoID string, creds Credentials) ([]models.Transcript, string) {
	if creds.ClientID == "" || creds.ClientSecret == "" || creds.AccountID == "" {
		return nil, MsgNoCredentials
	}

	accessToken, errMessage := b.getAccessToken(ctx, creds.ClientID, creds.ClientSecret)
	if errMessage != "" {
		return nil, errMessage
	}

	videoURL := strings.NewReplacer(
		"{account_id}", creds.AccountID,
		"{media_id}", videoID,
	).Replace(b.captionsAPI.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, videoURL, nil)
	if err != nil {
		return nil, MsgTransportFailure
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, MsgTransportFailure
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, msgBrightcoveTokenRejected
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Sprintf("Brightcove API returned status %d.", resp.StatusCode)
	}

	var video brightcoveVideo
	if err := json.NewDecoder(resp.Body).Decode(&video); err != nil {
		return nil, errors.MalformedResponseError(PlayerBrightcove, err).Message
	}
	if len(video.TextTracks) == 0 {
		return nil, MsgNoTranscripts
	}

	var transcripts []models.Transcript
	for _, track := range video.TextTracks {
		code, label, err := lang.Normalize(track.SrcLang)
		if err != nil {
			return nil, err.Error()
		}
		transcripts = append(transcripts, models.Transcript{
			Lang:   code,
			Label:  label,
			Source: models.TranscriptSourceDefault,
			URL:    track.Src,
		})
	}
	return transcripts, ""
}

// DownloadDefaultTranscript implements Player. Brightcove serves WebVTT
// files directly; the payload still goes through the converter to normalize
// headers and timestamps.
func (b *Brightcove) DownloadDefaultTranscript(ctx context.Context, downloadURL, _ string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return "", errors.ExternalServiceError(PlayerBrightcove, err)
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeExternalService, MsgTransportFailure)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf(errors.ErrCodeExternalService, "brightcove returned status %d for transcript download", resp.StatusCode)
	}

	var body bytes.Buffer
	if _, err := body.ReadFrom(resp.Body); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeExternalService, MsgTransportFailure)
	}

	converted := subtitle.Convert(body.String())
	if converted == "" {
		return "", errors.MalformedResponseError(PlayerBrightcove, fmt.Errorf("unrecognized caption format"))
	}
	return converted, nil
}

// CustomizeEditableFields implements Player. Brightcove needs the account id
// and a BC token, so every credential field stays editable.
func (b *Brightcove) CustomizeEditableFields(fields []string) (string, []string) {
	help := "Brightcove videos require your account id and a Video Cloud API token to fetch default transcripts."
	return help, fields
}
