package model

import (
	"time"

	"github.com/soundnest/soundnest/domain"
)

// AlbumLike rows are unique per (album_id, user_id); the uk_album_user key
// is what turns a duplicate like into a constraint violation.
type AlbumLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	AlbumID   int64     `gorm:"column:album_id;not null;uniqueIndex:uk_album_user,priority:1"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_album_user,priority:2"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (AlbumLike) TableName() string {
	return "album_likes"
}

func NewAlbumLikeFromDomain(l *domain.AlbumLike) AlbumLike {
	return AlbumLike{
		ID:        l.ID,
		AlbumID:   l.AlbumID,
		UserID:    l.UserID,
		CreatedAt: l.CreatedAt,
	}
}

func (m *AlbumLike) ToDomain() domain.AlbumLike {
	return domain.AlbumLike{
		ID:        m.ID,
		AlbumID:   m.AlbumID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}
