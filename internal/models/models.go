// Package models defines the persisted records: registered videos, their
// transcripts and per-student playback state.
package models

// AllModels lists every model for auto-migration, in dependency order.
func AllModels() []any {
	return []any{
		&Video{},
		&Transcript{},
		&PlaybackState{},
	}
}
