package domain

import (
	"context"
	"time"
)

const (
	ActivityAddSong    = "add_song"
	ActivityRemoveSong = "remove_song"
)

// PlaylistActivity is one immutable entry of a playlist's mutation log.
// Records are never updated or deleted.
type PlaylistActivity struct {
	ID         int64
	PlaylistID int64
	SongID     int64
	UserID     int64  // The acting user
	Action     string // ActivityAddSong or ActivityRemoveSong
	CreatedAt  time.Time
}

// PlaylistActivityRepository is append-only by contract.
type PlaylistActivityRepository interface {
	// Append writes one record with a server-assigned timestamp
	// and backfills its ID.
	Append(ctx context.Context, a *PlaylistActivity) error

	// ListByPlaylist returns the playlist's records in chronological
	// ascending order. An empty slice, not an error, for a quiet playlist.
	ListByPlaylist(ctx context.Context, playlistID int64) ([]PlaylistActivity, error)
}
