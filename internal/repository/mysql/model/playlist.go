package model

import (
	"time"

	"github.com/soundnest/soundnest/domain"
)

type Playlist struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(255);not null"`
	UserID    int64     `gorm:"column:user_id;not null"`
	UpdatedAt time.Time `gorm:"type:datetime"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Playlist) TableName() string {
	return "playlist"
}

func (m *Playlist) ToDomain() domain.Playlist {
	return domain.Playlist{
		ID:        m.ID,
		Title:     m.Title,
		UserID:    m.UserID,
		UpdatedAt: m.UpdatedAt,
		CreatedAt: m.CreatedAt,
	}
}

func NewPlaylistFromDomain(p *domain.Playlist) *Playlist {
	return &Playlist{
		ID:        p.ID,
		Title:     p.Title,
		UserID:    p.UserID,
		UpdatedAt: p.UpdatedAt,
		CreatedAt: p.CreatedAt,
	}
}

// PlaylistSong edges are unique per (playlist_id, song_id).
type PlaylistSong struct {
	PlaylistID int64     `gorm:"column:playlist_id;not null;uniqueIndex:uk_playlist_song,priority:1"`
	SongID     int64     `gorm:"column:song_id;not null;uniqueIndex:uk_playlist_song,priority:2"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (PlaylistSong) TableName() string {
	return "playlist_songs"
}

func (m *PlaylistSong) ToDomain() domain.PlaylistSong {
	return domain.PlaylistSong{
		PlaylistID: m.PlaylistID,
		SongID:     m.SongID,
		CreatedAt:  m.CreatedAt,
	}
}
