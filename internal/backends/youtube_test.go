package backends

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const youtubeTrackListXML = `<?xml version="1.0" encoding="utf-8"?>
<transcript_list docid="437362086">
	<track id="0" name="" lang_code="en" lang_original="English" lang_translated="English" lang_default="true"/>
	<track id="1" name="" lang_code="uk" lang_original="Українська" lang_translated="Ukrainian"/>
</transcript_list>`

const youtubeTimedTextXML = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
	<text start="0" dur="12">First subtitle line</text>
	<text start="12" dur="3.5">Second &amp; escaped line</text>
</transcript>`

func newYouTubeTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *YouTube) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	adapter := NewYouTube(server.Client(), YouTubeConfig{TimedTextURL: server.URL + "/timedtext"})
	return server, adapter
}

func TestYouTubeGetDefaultTranscripts(t *testing.T) {
	t.Run("lists available tracks", func(t *testing.T) {
		_, adapter := newYouTubeTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "list", r.URL.Query().Get("type"))
			assert.Equal(t, "44zaxzFsthY", r.URL.Query().Get("v"))
			w.Header().Set("Content-Type", "text/xml")
			_, _ = w.Write([]byte(youtubeTrackListXML))
		})

		transcripts, message := adapter.GetDefaultTranscripts(context.Background(), "44zaxzFsthY", Credentials{})
		require.Empty(t, message)
		require.Len(t, transcripts, 2)

		assert.Equal(t, "en", transcripts[0].Lang)
		assert.Equal(t, "English", transcripts[0].Label)
		assert.Contains(t, transcripts[0].URL, "lang=en")
		assert.Contains(t, transcripts[0].URL, "v=44zaxzFsthY")
		assert.NotContains(t, transcripts[0].URL, "name=")

		assert.Equal(t, "uk", transcripts[1].Lang)
		assert.Equal(t, "Ukrainian", transcripts[1].Label)
	})

	t.Run("echoes track name on download url", func(t *testing.T) {
		_, adapter := newYouTubeTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<transcript_list><track lang_code="en" lang_translated="English" name="community"/></transcript_list>`))
		})

		transcripts, message := adapter.GetDefaultTranscripts(context.Background(), "44zaxzFsthY", Credentials{})
		require.Empty(t, message)
		require.Len(t, transcripts, 1)
		assert.Contains(t, transcripts[0].URL, "name=community")
	})

	t.Run("no tracks", func(t *testing.T) {
		_, adapter := newYouTubeTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<transcript_list docid="437362086"></transcript_list>`))
		})

		transcripts, message := adapter.GetDefaultTranscripts(context.Background(), "44zaxzFsthY", Credentials{})
		assert.Empty(t, transcripts)
		assert.Equal(t, MsgNoTranscripts, message)
	})

	t.Run("transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		adapter := NewYouTube(server.Client(), YouTubeConfig{TimedTextURL: server.URL + "/timedtext"})
		server.Close()

		transcripts, message := adapter.GetDefaultTranscripts(context.Background(), "44zaxzFsthY", Credentials{})
		assert.Empty(t, transcripts)
		assert.Equal(t, MsgTransportFailure, message)
	})

	t.Run("non-200 response", func(t *testing.T) {
		_, adapter := newYouTubeTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		transcripts, message := adapter.GetDefaultTranscripts(context.Background(), "44zaxzFsthY", Credentials{})
		assert.Empty(t, transcripts)
		assert.Equal(t, MsgTransportFailure, message)
	})

	t.Run("malformed xml", func(t *testing.T) {
		_, adapter := newYouTubeTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"not": "xml"}`))
		})

		transcripts, message := adapter.GetDefaultTranscripts(context.Background(), "44zaxzFsthY", Credentials{})
		assert.Empty(t, transcripts)
		assert.Contains(t, message, "malformed response")
	})

	t.Run("unsupported track language", func(t *testing.T) {
		_, adapter := newYouTubeTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<transcript_list><track lang_code="xx" lang_translated="Mystery"/></transcript_list>`))
		})

		transcripts, message := adapter.GetDefaultTranscripts(context.Background(), "44zaxzFsthY", Credentials{})
		assert.Empty(t, transcripts)
		assert.Contains(t, message, "not consistent with the configured languages")
	})
}

func TestYouTubeDownloadDefaultTranscript(t *testing.T) {
	t.Run("converts timed text to vtt", func(t *testing.T) {
		server, adapter := newYouTubeTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "en", r.URL.Query().Get("lang"))
			w.Header().Set("Content-Type", "text/xml")
			_, _ = w.Write([]byte(youtubeTimedTextXML))
		})

		vtt, err := adapter.DownloadDefaultTranscript(context.Background(), server.URL+"/timedtext?v=44zaxzFsthY&lang=en", "en")
		require.NoError(t, err)

		expected := "WEBVTT\n" +
			"\n1\n00:00:00.000 --> 00:00:12.000\nFirst subtitle line\n" +
			"\n2\n00:00:12.000 --> 00:00:15.500\nSecond & escaped line\n"
		assert.Equal(t, expected, vtt)
	})

	t.Run("malformed payload", func(t *testing.T) {
		server, adapter := newYouTubeTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not xml at all"))
		})

		_, err := adapter.DownloadDefaultTranscript(context.Background(), server.URL+"/timedtext?v=44zaxzFsthY&lang=en", "en")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed response")
	})
}

func TestYouTubeAuthenticateAPI(t *testing.T) {
	adapter := NewYouTube(http.DefaultClient, YouTubeConfig{})
	auth, message := adapter.AuthenticateAPI(context.Background(), Credentials{})
	assert.Empty(t, message)
	assert.Empty(t, auth)
}

func TestYouTubeCustomizeEditableFields(t *testing.T) {
	adapter := NewYouTube(http.DefaultClient, YouTubeConfig{})
	fields := []string{"display_name", "href", "account_id", "player_id", "token"}

	help, editable := adapter.CustomizeEditableFields(fields)
	assert.NotEmpty(t, help)
	assert.Equal(t, []string{"display_name", "href"}, editable)
}
