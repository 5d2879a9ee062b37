package domain

import (
	"context"
	"time"
)

// Playlist is a user-owned, mutable song collection.
// The owner never changes for the playlist's lifetime.
type Playlist struct {
	ID        int64
	Title     string
	UserID    int64 // Owning user
	UpdatedAt time.Time
	CreatedAt time.Time
	Songs     []PlaylistSong
}

// PlaylistSong is a song-in-playlist edge, unique per (playlist, song).
type PlaylistSong struct {
	PlaylistID int64
	SongID     int64
	CreatedAt  time.Time
}

// PlaylistRepository defines the contract for playlist data persistence
type PlaylistRepository interface {
	// GetByID retrieves a playlist with its songs.
	// Returns ErrNotFound if the playlist doesn't exist.
	GetByID(ctx context.Context, id int64) (Playlist, error)

	// GetOwner retrieves the owning user's ID.
	// Returns ErrNotFound if the playlist doesn't exist.
	GetOwner(ctx context.Context, id int64) (int64, error)

	// FetchByUser retrieves all playlists owned by a user, newest first.
	FetchByUser(ctx context.Context, userID int64) ([]Playlist, error)

	// Store creates a new playlist and backfills its ID and timestamps.
	Store(ctx context.Context, p *Playlist) error

	// Update renames a playlist. The owner predicate is part of the
	// statement so the write itself re-authorizes.
	// Returns ErrNotFound if no row matched.
	Update(ctx context.Context, p *Playlist) error

	// Delete removes a playlist owned by userID.
	// Returns ErrNotFound if no row matched.
	Delete(ctx context.Context, id, userID int64) error

	// AddSong inserts a membership edge.
	// Returns ErrConflict if the song is already in the playlist.
	AddSong(ctx context.Context, playlistID, songID int64) error

	// RemoveSong deletes a membership edge.
	// Returns ErrNotFound if the song is not in the playlist.
	RemoveSong(ctx context.Context, playlistID, songID int64) error
}

type PlaylistUsecase interface {
	// VerifyOwner returns nil when userID owns the playlist,
	// ErrForbidden when someone else does, ErrNotFound when it doesn't exist.
	// It always reads fresh; ownership is never cached.
	VerifyOwner(ctx context.Context, playlistID, userID int64) error

	GetByID(ctx context.Context, id int64) (Playlist, error)
	FetchByUser(ctx context.Context, userID int64) ([]Playlist, error)
	Create(ctx context.Context, p *Playlist) error
	Update(ctx context.Context, p *Playlist, userID int64) error
	Delete(ctx context.Context, id, userID int64) error
	AddSong(ctx context.Context, playlistID, songID, userID int64) error
	RemoveSong(ctx context.Context, playlistID, songID, userID int64) error
	ListActivity(ctx context.Context, playlistID int64) ([]PlaylistActivity, error)
}
