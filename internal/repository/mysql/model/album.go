package model

import (
	"time"

	"github.com/soundnest/soundnest/domain"
)

type Album struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Artist    string    `gorm:"type:varchar(255);not null"`
	Year      int       `gorm:"column:release_year"`
	UpdatedAt time.Time `gorm:"type:datetime"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Album) TableName() string {
	return "album"
}

func (m *Album) ToDomain() domain.Album {
	return domain.Album{
		ID:        m.ID,
		Title:     m.Title,
		Artist:    m.Artist,
		Year:      m.Year,
		UpdatedAt: m.UpdatedAt,
		CreatedAt: m.CreatedAt,
	}
}

func NewAlbumFromDomain(a *domain.Album) *Album {
	return &Album{
		ID:        a.ID,
		Title:     a.Title,
		Artist:    a.Artist,
		Year:      a.Year,
		UpdatedAt: a.UpdatedAt,
		CreatedAt: a.CreatedAt,
	}
}
