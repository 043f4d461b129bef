package models

import (
	"time"

	"gorm.io/gorm"
)

// PlaybackState holds per-student playback data for one video
type PlaybackState struct {
	ID                 uint           `gorm:"primarykey" json:"-"`
	VideoID            uint           `gorm:"index:idx_video_user,unique" json:"video_id"`
	UserID             string         `gorm:"index:idx_video_user,unique" json:"user_id"`
	CurrentTime        float64        `json:"current_time"`
	PlaybackRate       float64        `json:"playback_rate"`
	Volume             float64        `json:"volume"`
	Muted              bool           `json:"muted"`
	CaptionsLanguage   string         `json:"captions_language"`
	TranscriptsEnabled bool           `json:"transcripts_enabled"`
	CaptionsEnabled    bool           `json:"captions_enabled"`
	CreatedAt          time.Time      `json:"-"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for PlaybackState
func (PlaybackState) TableName() string {
	return "playback_states"
}

// DefaultPlaybackState returns the initial state for a (video, user) pair
func DefaultPlaybackState(videoID uint, userID string) *PlaybackState {
	return &PlaybackState{
		VideoID:      videoID,
		UserID:       userID,
		PlaybackRate: 1,
		Volume:       1,
	}
}
