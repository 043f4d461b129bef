package backends

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVimeoMatch(t *testing.T) {
	adapter := NewVimeo()

	assert.True(t, adapter.Match("https://vimeo.com/202889234"))
	assert.True(t, adapter.Match("http://player.vimeo.com/video/202889234"))
	assert.False(t, adapter.Match("https://youtu.be/44zaxzFsthY"))
	assert.False(t, adapter.Match("just some text"))
}

func TestVimeoMediaID(t *testing.T) {
	adapter := NewVimeo()

	t.Run("numeric id", func(t *testing.T) {
		id, err := adapter.MediaID("https://vimeo.com/202889234")
		require.NoError(t, err)
		assert.Equal(t, "202889234", id)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := adapter.MediaID("https://vimeo.com/")
		assert.Error(t, err)
	})
}

func TestVimeoTranscriptOperations(t *testing.T) {
	adapter := NewVimeo()
	ctx := context.Background()

	t.Run("authenticate needs no credentials", func(t *testing.T) {
		auth, message := adapter.AuthenticateAPI(ctx, Credentials{})
		assert.Empty(t, auth)
		assert.Empty(t, message)
	})

	t.Run("listing is an empty success", func(t *testing.T) {
		transcripts, message := adapter.GetDefaultTranscripts(ctx, "202889234", Credentials{})
		assert.Empty(t, transcripts)
		assert.Empty(t, message)
	})

	t.Run("download yields empty content", func(t *testing.T) {
		content, err := adapter.DownloadDefaultTranscript(ctx, "https://vimeo.com/202889234", "en")
		require.NoError(t, err)
		assert.Empty(t, content)
	})
}

func TestVimeoCustomizeEditableFields(t *testing.T) {
	adapter := NewVimeo()
	fields := []string{"display_name", "href", "account_id", "player_id", "token"}

	help, editable := adapter.CustomizeEditableFields(fields)
	assert.NotEmpty(t, help)
	assert.Equal(t, []string{"display_name", "href"}, editable)
}
