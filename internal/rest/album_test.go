package rest_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundnest/soundnest/domain"
	"github.com/soundnest/soundnest/internal/rest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAlbumService struct {
	album domain.Album
	err   error
}

func (s *stubAlbumService) Fetch(_ context.Context, _ string, _ int64) ([]domain.Album, string, error) {
	return []domain.Album{s.album}, "next", s.err
}

func (s *stubAlbumService) GetByID(_ context.Context, _ int64) (domain.Album, error) {
	return s.album, s.err
}

func (s *stubAlbumService) Store(_ context.Context, a *domain.Album) error {
	a.ID = 1
	return s.err
}

func (s *stubAlbumService) Update(_ context.Context, _ *domain.Album) error { return s.err }
func (s *stubAlbumService) Delete(_ context.Context, _ int64) error         { return s.err }

type stubLikeService struct {
	likeErr   error
	unlikeErr error
	count     int64
	source    domain.CountSource
	countErr  error
}

func (s *stubLikeService) Like(_ context.Context, like *domain.AlbumLike) error {
	if s.likeErr != nil {
		return s.likeErr
	}
	like.ID = 12
	return nil
}

func (s *stubLikeService) Unlike(_ context.Context, _, _ int64) error { return s.unlikeErr }

func (s *stubLikeService) Count(_ context.Context, _ int64) (int64, domain.CountSource, error) {
	return s.count, s.source, s.countErr
}

func newAlbumRouter(albumSvc domain.AlbumUsecase, likeSvc domain.AlbumLikeUsecase, userID any) *gin.Engine {
	r := gin.New()
	if userID != nil {
		r.Use(func(c *gin.Context) {
			c.Set("user_id", userID)
			c.Next()
		})
	}
	h := rest.NewAlbumHandler(albumSvc, likeSvc)
	r.GET("/albums/:id", h.GetByID)
	r.GET("/albums/:id/likes", h.LikeCount)
	r.POST("/albums/:id/like", h.Like)
	r.DELETE("/albums/:id/like", h.Unlike)
	return r
}

func TestLikeCountFromCache(t *testing.T) {
	likeSvc := &stubLikeService{count: 7, source: domain.CountFromCache}
	r := newAlbumRouter(&stubAlbumService{}, likeSvc, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/albums/42/likes", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		AlbumID int64  `json:"album_id"`
		Count   int64  `json:"count"`
		Source  string `json:"source"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.AlbumID)
	assert.Equal(t, int64(7), body.Count)
	assert.Equal(t, "cache", body.Source)
}

func TestLikeCountCacheDownIs503(t *testing.T) {
	likeSvc := &stubLikeService{
		countErr: fmt.Errorf("%w: connection refused", domain.ErrCacheUnavailable),
	}
	r := newAlbumRouter(&stubAlbumService{}, likeSvc, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/albums/42/likes", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLikeCreated(t *testing.T) {
	r := newAlbumRouter(&stubAlbumService{}, &stubLikeService{}, int64(10))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/albums/42/like", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(12), body.ID)
}

func TestLikeTwiceIs409(t *testing.T) {
	likeSvc := &stubLikeService{likeErr: domain.ErrConflict}
	r := newAlbumRouter(&stubAlbumService{}, likeSvc, int64(10))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/albums/42/like", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLikeWithoutAuthIs401(t *testing.T) {
	r := newAlbumRouter(&stubAlbumService{}, &stubLikeService{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/albums/42/like", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUnlikeWithoutLikeIs404(t *testing.T) {
	likeSvc := &stubLikeService{unlikeErr: domain.ErrNotFound}
	r := newAlbumRouter(&stubAlbumService{}, likeSvc, int64(10))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/albums/42/like", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnlikeNoContent(t *testing.T) {
	r := newAlbumRouter(&stubAlbumService{}, &stubLikeService{}, int64(10))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/albums/42/like", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetAlbumByID(t *testing.T) {
	now := time.Now()
	albumSvc := &stubAlbumService{album: domain.Album{
		ID:        42,
		Title:     "In Rainbows",
		Artist:    "Radiohead",
		Year:      2007,
		Likes:     3,
		CreatedAt: now,
		UpdatedAt: now,
	}}
	r := newAlbumRouter(albumSvc, &stubLikeService{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/albums/42", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
		Likes int64  `json:"likes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.ID)
	assert.Equal(t, "In Rainbows", body.Title)
	assert.Equal(t, int64(3), body.Likes)
}

func TestGetAlbumByIDNotFound(t *testing.T) {
	albumSvc := &stubAlbumService{err: domain.ErrNotFound}
	r := newAlbumRouter(albumSvc, &stubLikeService{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/albums/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
