package domain

import (
	"context"
	"time"
)

// Album is representing the Album data struct
type Album struct {
	ID        int64     // Unique identifier for the album
	Title     string    // Album title
	Artist    string    // Recording artist
	Year      int       // Release year
	Likes     int64     // Number of likes, derived from album_likes
	UpdatedAt time.Time // Last update timestamp
	CreatedAt time.Time // Creation timestamp
}

// AlbumRepository defines the contract for album data persistence
type AlbumRepository interface {
	// Fetch retrieves a paginated list of albums.
	// cursor: pass the previous page's next-cursor or empty string for the first page.
	Fetch(ctx context.Context, cursor string, num int64) ([]Album, error)

	// GetByID retrieves a single album by its ID.
	// Returns ErrNotFound if the album doesn't exist.
	GetByID(ctx context.Context, id int64) (Album, error)

	// Store creates a new album and backfills its ID and timestamps.
	Store(ctx context.Context, a *Album) error

	// Update modifies an existing album.
	// Returns ErrNotFound if the album doesn't exist.
	Update(ctx context.Context, a *Album) error

	// Delete removes an album by its ID.
	// Returns ErrNotFound if not exists.
	Delete(ctx context.Context, id int64) error
}

type AlbumUsecase interface {
	Fetch(ctx context.Context, cursor string, num int64) ([]Album, string, error)
	GetByID(ctx context.Context, id int64) (Album, error)
	Store(ctx context.Context, a *Album) error
	Update(ctx context.Context, a *Album) error
	Delete(ctx context.Context, id int64) error
}
