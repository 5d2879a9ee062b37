package response

import (
	"github.com/soundnest/soundnest/domain"
)

const DateTimeFormat = "2006-01-02 15:04:05"

type Album struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Year      int    `json:"year,omitempty"`
	Likes     int64  `json:"likes"`
	UpdatedAt string `json:"updated_at"`
	CreatedAt string `json:"created_at"`
}

// NewAlbumFromDomain: Domain -> Response
func NewAlbumFromDomain(a *domain.Album) Album {
	return Album{
		ID:        a.ID,
		Title:     a.Title,
		Artist:    a.Artist,
		Year:      a.Year,
		Likes:     a.Likes,
		UpdatedAt: a.UpdatedAt.Format(DateTimeFormat),
		CreatedAt: a.CreatedAt.Format(DateTimeFormat),
	}
}

// LikeCount carries the count and where it was served from.
type LikeCount struct {
	AlbumID int64  `json:"album_id"`
	Count   int64  `json:"count"`
	Source  string `json:"source"`
}
