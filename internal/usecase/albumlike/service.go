package albumlike

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/soundnest/soundnest/domain"
	"github.com/soundnest/soundnest/internal/metrics"
)

const (
	// DefaultCountTTL bounds how long a stale count can outlive a failed
	// invalidation.
	DefaultCountTTL = 10 * time.Minute
)

// Service keeps the cached per-album like count coherent with the
// album_likes table. Cache-aside: reads populate, writes invalidate.
// There is no in-process lock around the like records; uniqueness under
// concurrent writers is the store's unique key, full stop.
type Service struct {
	likeRepo  domain.AlbumLikeRepository
	cache     domain.LikeCountCache
	countTTL  time.Duration
	recompute singleflight.Group
}

var _ domain.AlbumLikeUsecase = (*Service)(nil)

// NewService will create a new album like service object
func NewService(likeRepo domain.AlbumLikeRepository, cache domain.LikeCountCache, countTTL time.Duration) *Service {
	if countTTL <= 0 {
		countTTL = DefaultCountTTL
	}
	return &Service{
		likeRepo: likeRepo,
		cache:    cache,
		countTTL: countTTL,
	}
}

// Like inserts the like record and then invalidates the cached count,
// in that order, before acknowledging. A duplicate surfaces as
// domain.ErrConflict straight from the store's unique key.
func (s *Service) Like(ctx context.Context, like *domain.AlbumLike) error {
	if err := s.likeRepo.AddLikeRecord(ctx, like); err != nil {
		return err
	}

	s.invalidate(ctx, like.AlbumID)
	return nil
}

// Unlike removes the like record and invalidates the cached count.
// Returns domain.ErrNotFound if the user never liked the album.
func (s *Service) Unlike(ctx context.Context, albumID, userID int64) error {
	if err := s.likeRepo.RemoveLikeRecord(ctx, albumID, userID); err != nil {
		return err
	}

	s.invalidate(ctx, albumID)
	return nil
}

// Count serves the like count cache-aside. A hit returns the cached value
// tagged CountFromCache. A miss recomputes from the store, republishes with
// a bounded TTL and tags CountComputed. A transport failure is surfaced as
// ErrCacheUnavailable so the caller decides between failing and going
// store-only; it is never treated as a miss.
func (s *Service) Count(ctx context.Context, albumID int64) (int64, domain.CountSource, error) {
	count, err := s.cache.GetLikeCount(ctx, albumID)
	if err == nil {
		metrics.LikeCacheHits.Inc()
		return count, domain.CountFromCache, nil
	}

	if !errors.Is(err, domain.ErrCacheMiss) {
		metrics.LikeCacheErrors.Inc()
		return 0, "", err
	}

	metrics.LikeCacheMisses.Inc()

	// Concurrent cold reads collapse into one recomputation. Not required
	// for correctness, only to spare the store.
	v, err, _ := s.recompute.Do(strconv.FormatInt(albumID, 10), func() (any, error) {
		fresh, err := s.likeRepo.CountByAlbum(ctx, albumID)
		if err != nil {
			return nil, err
		}

		if err := s.cache.SetLikeCount(ctx, albumID, fresh, s.countTTL); err != nil {
			logrus.Warnf("failed to republish like count for album %d: %v", albumID, err)
		}

		return fresh, nil
	})
	if err != nil {
		return 0, "", err
	}

	return v.(int64), domain.CountComputed, nil
}

// invalidate runs synchronously so the deletion happens-before the caller
// sees success. The store write is already committed at this point, so a
// failed delete is logged and swallowed; the entry's TTL bounds the
// staleness window.
func (s *Service) invalidate(ctx context.Context, albumID int64) {
	if err := s.cache.InvalidateLikeCount(ctx, albumID); err != nil {
		metrics.LikeCacheErrors.Inc()
		logrus.Warnf("failed to invalidate like count for album %d: %v", albumID, err)
		return
	}
	metrics.LikeCacheInvalidations.Inc()
}
