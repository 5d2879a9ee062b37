package response

import "github.com/soundnest/soundnest/domain"

type PlaylistSong struct {
	SongID  int64  `json:"song_id"`
	AddedAt string `json:"added_at"`
}

type Playlist struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	UserID    int64          `json:"user_id"`
	Songs     []PlaylistSong `json:"songs,omitempty"`
	UpdatedAt string         `json:"updated_at"`
	CreatedAt string         `json:"created_at"`
}

// NewPlaylistFromDomain: Domain -> Response
func NewPlaylistFromDomain(p *domain.Playlist) Playlist {
	res := Playlist{
		ID:        p.ID,
		Title:     p.Title,
		UserID:    p.UserID,
		UpdatedAt: p.UpdatedAt.Format(DateTimeFormat),
		CreatedAt: p.CreatedAt.Format(DateTimeFormat),
	}

	if len(p.Songs) > 0 {
		res.Songs = make([]PlaylistSong, len(p.Songs))
		for i, s := range p.Songs {
			res.Songs[i] = PlaylistSong{
				SongID:  s.SongID,
				AddedAt: s.CreatedAt.Format(DateTimeFormat),
			}
		}
	}
	return res
}

type Activity struct {
	ID         int64  `json:"id"`
	PlaylistID int64  `json:"playlist_id"`
	SongID     int64  `json:"song_id"`
	UserID     int64  `json:"user_id"`
	Action     string `json:"action"`
	CreatedAt  string `json:"created_at"`
}

// NewActivityFromDomain: Domain -> Response
func NewActivityFromDomain(a *domain.PlaylistActivity) Activity {
	return Activity{
		ID:         a.ID,
		PlaylistID: a.PlaylistID,
		SongID:     a.SongID,
		UserID:     a.UserID,
		Action:     a.Action,
		CreatedAt:  a.CreatedAt.Format(DateTimeFormat),
	}
}
