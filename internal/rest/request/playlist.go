package request

import "github.com/soundnest/soundnest/domain"

type Playlist struct {
	Title string `json:"title" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Playlist) ToDomain() domain.Playlist {
	return domain.Playlist{
		Title: r.Title,
	}
}

type PlaylistSong struct {
	SongID int64 `json:"song_id" binding:"required,gt=0"`
}
