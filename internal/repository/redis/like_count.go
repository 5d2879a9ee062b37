package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/soundnest/soundnest/domain"
)

const (
	KeyAlbumLikes = "album:likes:%d"
)

type likeCountCache struct {
	client *redis.Client
}

var _ domain.LikeCountCache = (*likeCountCache)(nil)

func NewLikeCountCache(client *redis.Client) *likeCountCache {
	return &likeCountCache{
		client,
	}
}

// GetLikeCount keeps the two failure channels apart: redis.Nil is an
// expected cold read (ErrCacheMiss), anything else means the cache layer
// itself is in trouble (ErrCacheUnavailable).
func (c *likeCountCache) GetLikeCount(ctx context.Context, albumID int64) (int64, error) {
	key := fmt.Sprintf(KeyAlbumLikes, albumID)
	count, err := c.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrCacheMiss
	} else if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	return count, nil
}

func (c *likeCountCache) SetLikeCount(ctx context.Context, albumID, count int64, ttl time.Duration) error {
	key := fmt.Sprintf(KeyAlbumLikes, albumID)
	if err := c.client.Set(ctx, key, count, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	return nil
}

func (c *likeCountCache) InvalidateLikeCount(ctx context.Context, albumID int64) error {
	key := fmt.Sprintf(KeyAlbumLikes, albumID)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}
	return nil
}
