package backends

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"github.com/coursekit/video-api/internal/models"
	"github.com/coursekit/video-api/pkg/errors"
	"github.com/coursekit/video-api/pkg/lang"
	"github.com/coursekit/video-api/pkg/subtitle"
)

// Matches youtube.com/watch?v=, youtube.com/embed/ and youtu.be/ short links.
// Media ids are 6-11 characters of [a-zA-Z0-9_-].
var youtubeURLRe = regexp.MustCompile(
	`(?:youtube\.com/\S*(?:(?:/e(?:mbed))?/|watch\?(?:\S*?&?v=))|youtu\.be/)(?P<media_id>[a-zA-Z0-9_-]{6,11})`,
)

// YouTubeConfig overrides the timed-text endpoint, mainly for tests.
type YouTubeConfig struct {
	TimedTextURL string
}

// YouTube adapts videos hosted on youtube.com.
//
// Transcript listing and download go through the public timed-text API,
// e.g. http://video.google.com/timedtext?lang=en&v=QLQ-85Td2Gs.
type YouTube struct {
	client      *http.Client
	captionsAPI captionsAPI
}

// NewYouTube creates the YouTube adapter.
func NewYouTube(client *http.Client, cfg YouTubeConfig) *YouTube {
	endpoint := cfg.TimedTextURL
	if endpoint == "" {
		endpoint = "http://video.google.com/timedtext"
	}
	return &YouTube{
		client: client,
		captionsAPI: captionsAPI{
			URL: endpoint,
			Params: map[string]string{
				"v":    "",
				"lang": "en",
				"name": "",
			},
			Response: map[string]string{
				"language_code":  "lang_code",
				"language_label": "lang_translated",
				"subs":           "text",
			},
		},
	}
}

// Name implements Player.
func (y *YouTube) Name() string { return PlayerYouTube }

// Match implements Player.
func (y *YouTube) Match(href string) bool {
	return youtubeURLRe.MatchString(href)
}

// MediaID implements Player.
func (y *YouTube) MediaID(href string) (string, error) {
	id, ok := submatch(youtubeURLRe, href, "media_id")
	if !ok {
		return "", errors.InvalidURLError(PlayerYouTube, href)
	}
	return id, nil
}

// AuthenticateAPI implements Player. YouTube's timed-text API is public.
func (y *YouTube) AuthenticateAPI(_ context.Context, _ Credentials) (AuthData, string) {
	return AuthData{}, ""
}

// youtubeTrackList is the XML track catalog returned by the listing endpoint.
type youtubeTrackList struct {
	XMLName xml.Name       `xml:"transcript_list"`
	Tracks  []youtubeTrack `xml:"track"`
}

type youtubeTrack struct {
	LangCode       string `xml:"lang_code,attr"`
	LangTranslated string `xml:"lang_translated,attr"`
	Name           string `xml:"name,attr"`
}

// GetDefaultTranscripts implements Player. Tracks carrying a non-empty name
// attribute need that name echoed on download, otherwise the API serves the
// wrong track.
func (y *YouTube) GetDefaultTranscripts(ctx context.Context, videoID string, _ Credentials) ([]models.Transcript, string) {
	listURL := fmt.Sprintf("%s?%s", y.captionsAPI.URL, url.Values{
		"type": {"list"},
		"v":    {videoID},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, MsgTransportFailure
	}
	resp, err := y.client.Do(req)
	if err != nil {
		return nil, MsgTransportFailure
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, MsgTransportFailure
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, MsgTransportFailure
	}

	var trackList youtubeTrackList
	if err := xml.Unmarshal(body, &trackList); err != nil {
		return nil, errors.MalformedResponseError(PlayerYouTube, err).Message
	}
	if len(trackList.Tracks) == 0 {
		return nil, MsgNoTranscripts
	}

	var transcripts []models.Transcript
	for _, track := range trackList.Tracks {
		code, label, err := lang.Normalize(track.LangCode)
		if err != nil {
			return nil, err.Error()
		}
		params := url.Values{"v": {videoID}, "lang": {track.LangCode}}
		if track.Name != "" {
			params.Set("name", track.Name)
		}
		transcripts = append(transcripts, models.Transcript{
			Lang:   code,
			Label:  label,
			Source: models.TranscriptSourceDefault,
			URL:    fmt.Sprintf("%s?%s", y.captionsAPI.URL, params.Encode()),
		})
	}
	return transcripts, ""
}

// youtubeTimedText is the per-track XML payload: float-second start/duration
// pairs with escaped cue text.
type youtubeTimedText struct {
	XMLName xml.Name          `xml:"transcript"`
	Texts   []youtubeTextNode `xml:"text"`
}

type youtubeTextNode struct {
	Start   string `xml:"start,attr"`
	Dur     string `xml:"dur,attr"`
	Content string `xml:",chardata"`
}

// DownloadDefaultTranscript implements Player.
func (y *YouTube) DownloadDefaultTranscript(ctx context.Context, downloadURL, _ string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return "", errors.ExternalServiceError(PlayerYouTube, err)
	}
	resp, err := y.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeExternalService, MsgTransportFailure)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf(errors.ErrCodeExternalService, "youtube timed-text API returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeExternalService, MsgTransportFailure)
	}

	var timedText youtubeTimedText
	if err := xml.Unmarshal(body, &timedText); err != nil {
		return "", errors.MalformedResponseError(PlayerYouTube, err)
	}

	cues := make([]subtitle.Cue, 0, len(timedText.Texts))
	for _, node := range timedText.Texts {
		start, _ := strconv.ParseFloat(node.Start, 64)
		dur, _ := strconv.ParseFloat(node.Dur, 64)
		cues = append(cues, subtitle.NewCue(start, dur, html.UnescapeString(node.Content)))
	}
	return subtitle.BuildVTT(cues), nil
}

// CustomizeEditableFields implements Player. YouTube needs no platform
// credentials, so the credential fields are hidden in the editor.
func (y *YouTube) CustomizeEditableFields(fields []string) (string, []string) {
	help := "YouTube videos require no API credentials; captions are fetched from the public timed-text API."
	return help, removeFields(fields, "account_id", "player_id", "token")
}
