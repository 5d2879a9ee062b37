package domain

import (
	"context"
	"time"
)

// AlbumLike is representing a like record.
// A (UserID, AlbumID) pair exists at most once, enforced by the store's
// unique key, which is the single authority for duplicate detection.
type AlbumLike struct {
	ID        int64
	AlbumID   int64
	UserID    int64
	CreatedAt time.Time
}

// CountSource tags where a like count was served from.
type CountSource string

const (
	// CountFromCache means the count came straight from the cache.
	CountFromCache CountSource = "cache"
	// CountComputed means the count was recomputed from the store
	// and republished to the cache.
	CountComputed CountSource = "computed"
)

// AlbumLikeRepository defines the contract for like-record persistence.
type AlbumLikeRepository interface {
	// AddLikeRecord inserts a like record and backfills its ID.
	// Returns ErrConflict if the (user, album) pair already exists.
	AddLikeRecord(ctx context.Context, like *AlbumLike) error

	// RemoveLikeRecord deletes a like record.
	// Returns ErrNotFound if no such record exists.
	RemoveLikeRecord(ctx context.Context, albumID, userID int64) error

	// CountByAlbum counts the like records for an album.
	CountByAlbum(ctx context.Context, albumID int64) (int64, error)
}

// LikeCountCache is the key-value cache holding the derived like count per
// album. The cache is never authoritative: losing it only costs recomputation.
type LikeCountCache interface {
	// GetLikeCount returns the cached count for an album.
	// Returns ErrCacheMiss if the key is absent, and an error wrapping
	// ErrCacheUnavailable on a transport failure.
	GetLikeCount(ctx context.Context, albumID int64) (int64, error)

	// SetLikeCount publishes a count with the given expiry.
	SetLikeCount(ctx context.Context, albumID, count int64, ttl time.Duration) error

	// InvalidateLikeCount deletes the cached count for an album.
	InvalidateLikeCount(ctx context.Context, albumID int64) error
}

type AlbumLikeUsecase interface {
	// Like records that a user likes an album.
	// Returns ErrConflict if the user already likes it.
	Like(ctx context.Context, like *AlbumLike) error

	// Unlike removes a user's like of an album.
	// Returns ErrNotFound if the user never liked it.
	Unlike(ctx context.Context, albumID, userID int64) error

	// Count returns the album's like count and where it was served from.
	Count(ctx context.Context, albumID int64) (int64, CountSource, error)
}
