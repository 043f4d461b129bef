package backends

import (
	"net/http"
	"time"
)

// Registry holds the closed, ordered set of platform adapters. URL dispatch
// is a linear scan over Match; the dummy adapter is the fallback when no
// platform recognizes a URL.
type Registry struct {
	players []Player
	dummy   Player
}

// Config carries the per-platform endpoint overrides, mainly for tests.
type Config struct {
	HTTPClient *http.Client
	YouTube    YouTubeConfig
	Brightcove BrightcoveConfig
	Wistia     WistiaConfig
	Timeout    time.Duration
}

// NewRegistry builds the registry with every supported platform adapter
// registered in match-priority order.
func NewRegistry(cfg Config) *Registry {
	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	dummy := NewDummy()
	return &Registry{
		players: []Player{
			NewYouTube(client, cfg.YouTube),
			NewBrightcove(client, cfg.Brightcove),
			NewWistia(client, cfg.Wistia),
			NewVimeo(),
			NewHTML5(),
		},
		dummy: dummy,
	}
}

// Resolve returns the first adapter whose pattern matches the href, falling
// back to the dummy adapter.
func (r *Registry) Resolve(href string) Player {
	for _, player := range r.players {
		if player.Match(href) {
			return player
		}
	}
	return r.dummy
}

// Get returns the adapter registered under a platform name.
func (r *Registry) Get(name string) (Player, bool) {
	if name == PlayerDummy {
		return r.dummy, true
	}
	for _, player := range r.players {
		if player.Name() == name {
			return player, true
		}
	}
	return nil, false
}

// Players returns the registered adapters in dispatch order, dummy excluded.
func (r *Registry) Players() []Player {
	return r.players
}
