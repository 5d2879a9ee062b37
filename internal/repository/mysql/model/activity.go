package model

import (
	"time"

	"github.com/soundnest/soundnest/domain"
)

type PlaylistActivity struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	PlaylistID int64     `gorm:"column:playlist_id;not null;index"`
	SongID     int64     `gorm:"column:song_id;not null"`
	UserID     int64     `gorm:"column:user_id;not null"`
	Action     string    `gorm:"type:varchar(32);not null"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (PlaylistActivity) TableName() string {
	return "playlist_activity"
}

func (m *PlaylistActivity) ToDomain() domain.PlaylistActivity {
	return domain.PlaylistActivity{
		ID:         m.ID,
		PlaylistID: m.PlaylistID,
		SongID:     m.SongID,
		UserID:     m.UserID,
		Action:     m.Action,
		CreatedAt:  m.CreatedAt,
	}
}

func NewPlaylistActivityFromDomain(a *domain.PlaylistActivity) *PlaylistActivity {
	return &PlaylistActivity{
		ID:         a.ID,
		PlaylistID: a.PlaylistID,
		SongID:     a.SongID,
		UserID:     a.UserID,
		Action:     a.Action,
		CreatedAt:  a.CreatedAt,
	}
}
