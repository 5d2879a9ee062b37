package album

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/soundnest/soundnest/domain"
	"github.com/soundnest/soundnest/internal/repository"
)

type Service struct {
	albumRepo   domain.AlbumRepository
	likeCounter domain.AlbumLikeUsecase
	likeRepo    domain.AlbumLikeRepository
	cache       domain.LikeCountCache
}

var _ domain.AlbumUsecase = (*Service)(nil)

// NewService will create a new album service object
func NewService(a domain.AlbumRepository, counter domain.AlbumLikeUsecase, likeRepo domain.AlbumLikeRepository, cache domain.LikeCountCache) *Service {
	return &Service{
		albumRepo:   a,
		likeCounter: counter,
		likeRepo:    likeRepo,
		cache:       cache,
	}
}

func (a *Service) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Album, string, error) {
	res, err := a.albumRepo.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if len(res) > 0 {
		nextCursor = repository.EncodeCursor(res[len(res)-1].CreatedAt)
	}
	return res, nextCursor, nil
}

// GetByID merges the live like count into the album. When the cache layer
// is down it degrades to a store-only count instead of failing the read.
func (a *Service) GetByID(ctx context.Context, id int64) (domain.Album, error) {
	res, err := a.albumRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Album{}, err
	}

	count, _, err := a.likeCounter.Count(ctx, id)
	if err == nil {
		res.Likes = count
		return res, nil
	}

	if errors.Is(err, domain.ErrCacheUnavailable) {
		logrus.Warnf("like cache unavailable, serving store-only count for album %d: %v", id, err)
		count, err = a.likeRepo.CountByAlbum(ctx, id)
		if err != nil {
			return domain.Album{}, err
		}
		res.Likes = count
		return res, nil
	}

	return domain.Album{}, err
}

func (a *Service) Store(ctx context.Context, m *domain.Album) error {
	return a.albumRepo.Store(ctx, m)
}

func (a *Service) Update(ctx context.Context, m *domain.Album) error {
	m.UpdatedAt = time.Now()
	return a.albumRepo.Update(ctx, m)
}

// Delete drops the album and its cached count. Invalidation failure is not
// fatal: the entry expires on its own TTL.
func (a *Service) Delete(ctx context.Context, id int64) error {
	if err := a.albumRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := a.cache.InvalidateLikeCount(ctx, id); err != nil {
		logrus.Warnf("failed to drop like count cache for deleted album %d: %v", id, err)
	}
	return nil
}
