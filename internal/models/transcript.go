package models

import (
	"time"

	"gorm.io/gorm"
)

// TranscriptSource tags where a transcript came from
type TranscriptSource string

const (
	// TranscriptSourceDefault marks transcripts fetched from the platform's captions API
	TranscriptSourceDefault TranscriptSource = "default"
	// TranscriptSourceManual marks transcripts uploaded by a course author
	TranscriptSourceManual TranscriptSource = "manual"
)

// Transcript describes one transcript of a video in one language. Rows are
// persisted only for manual uploads; default transcripts use the same shape
// as unsaved descriptors pointing at the platform's download URL.
type Transcript struct {
	ID        uint             `gorm:"primarykey" json:"-"`
	VideoID   uint             `gorm:"index:idx_video_lang,unique" json:"-"`
	Lang      string           `gorm:"index:idx_video_lang,unique" json:"lang"`
	Label     string           `json:"label"`
	Source    TranscriptSource `json:"source"`
	URL       string           `json:"url,omitempty"`
	Content   string           `gorm:"type:text" json:"-"`
	CreatedAt time.Time        `json:"-"`
	UpdatedAt time.Time        `json:"-"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`
}

// TableName specifies the table name for Transcript
func (Transcript) TableName() string {
	return "transcripts"
}
