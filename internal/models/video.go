package models

import (
	"time"

	"gorm.io/gorm"
)

// Video represents an embedded course video and its platform binding
type Video struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	DisplayName string         `json:"display_name"`
	Href        string         `gorm:"not null" json:"href"`
	PlayerName  string         `gorm:"index" json:"player_name"`
	MediaID     string         `json:"media_id"`
	AccountID   string         `json:"account_id,omitempty"`
	PlayerID    string         `json:"player_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Video
func (Video) TableName() string {
	return "videos"
}
