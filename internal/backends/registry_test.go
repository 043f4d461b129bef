package backends

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolve(t *testing.T) {
	registry := NewRegistry(Config{})

	tests := []struct {
		name   string
		href   string
		player string
	}{
		{"youtube short link", "https://youtu.be/44zaxzFsthY", PlayerYouTube},
		{"youtube watch link", "https://www.youtube.com/watch?v=44zaxzFsthY", PlayerYouTube},
		{"youtube embed link", "https://www.youtube.com/embed/44zaxzFsthY", PlayerYouTube},
		{"brightcove studio link", "https://studio.brightcove.com/products/videocloud/media/videos/45263567468485", PlayerBrightcove},
		{"wistia medias link", "https://raccoongang.wistia.com/medias/HRrr784kH8932Z", PlayerWistia},
		{"wistia short link", "https://wi.st/medias/HRrr784kH8932Z", PlayerWistia},
		{"vimeo link", "https://vimeo.com/202889234", PlayerVimeo},
		{"html5 direct mp4", "https://example.com/media/intro.mp4", PlayerHTML5},
		{"html5 direct webm", "https://example.com/media/intro.webm", PlayerHTML5},
		{"unsupported url", "https://example.com/page.html", PlayerDummy},
		{"not a url", "just some text", PlayerDummy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := registry.Resolve(tt.href)
			require.NotNil(t, player)
			assert.Equal(t, tt.player, player.Name())
		})
	}
}

func TestRegistryGet(t *testing.T) {
	registry := NewRegistry(Config{})

	t.Run("known platform", func(t *testing.T) {
		player, ok := registry.Get(PlayerWistia)
		require.True(t, ok)
		assert.Equal(t, PlayerWistia, player.Name())
	})

	t.Run("dummy platform", func(t *testing.T) {
		player, ok := registry.Get(PlayerDummy)
		require.True(t, ok)
		assert.Equal(t, PlayerDummy, player.Name())
	})

	t.Run("unknown platform", func(t *testing.T) {
		_, ok := registry.Get("dailymotion")
		assert.False(t, ok)
	})
}

func TestRegistryPlayers(t *testing.T) {
	registry := NewRegistry(Config{})
	players := registry.Players()
	require.Len(t, players, 5)
	assert.Equal(t, PlayerYouTube, players[0].Name())
	assert.Equal(t, PlayerHTML5, players[4].Name())
}

func TestMediaIDExtraction(t *testing.T) {
	registry := NewRegistry(Config{})

	tests := []struct {
		name    string
		href    string
		mediaID string
	}{
		{"youtube short link", "https://youtu.be/44zaxzFsthY", "44zaxzFsthY"},
		{"youtube watch link", "https://www.youtube.com/watch?v=44zaxzFsthY", "44zaxzFsthY"},
		{"brightcove studio link", "https://studio.brightcove.com/products/videocloud/media/videos/45263567468485", "45263567468485"},
		{"wistia short link", "https://wi.st/medias/HRrr784kH8932Z", "HRrr784kH8932Z"},
		{"vimeo link", "https://vimeo.com/202889234", "202889234"},
		{"html5 link keeps full url", "https://example.com/media/intro.mp4", "https://example.com/media/intro.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := registry.Resolve(tt.href)
			mediaID, err := player.MediaID(tt.href)
			require.NoError(t, err)
			assert.Equal(t, tt.mediaID, mediaID)
		})
	}
}

func TestDummyFallback(t *testing.T) {
	dummy := NewDummy()

	assert.False(t, dummy.Match("https://youtu.be/44zaxzFsthY"))

	mediaID, err := dummy.MediaID("anything")
	require.NoError(t, err)
	assert.Equal(t, "<media_id>", mediaID)

	transcripts, message := dummy.GetDefaultTranscripts(context.Background(), "anything", Credentials{})
	assert.Empty(t, transcripts)
	assert.Equal(t, MsgNoTranscripts, message)
}
