package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/soundnest/soundnest/domain"
	"github.com/soundnest/soundnest/internal/rest/request"
	"github.com/soundnest/soundnest/internal/rest/response"
)

// AlbumHandler represent the httphandler for albums
type AlbumHandler struct {
	Service     domain.AlbumUsecase
	LikeService domain.AlbumLikeUsecase
}

func NewAlbumHandler(svc domain.AlbumUsecase, likeSvc domain.AlbumLikeUsecase) *AlbumHandler {
	return &AlbumHandler{
		Service:     svc,
		LikeService: likeSvc,
	}
}

// FetchAlbum will fetch the albums based on given params
func (h *AlbumHandler) FetchAlbum(c *gin.Context) {
	numS := c.Query("num")
	num, err := strconv.Atoi(numS)
	if err != nil || num < PageMinNum || num > PageMaxNum {
		num = DefaultPageNum
	}

	cursor := c.Query("cursor")
	ctx := c.Request.Context()

	listAl, nextCursor, err := h.Service.Fetch(ctx, cursor, int64(num))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	res := make([]response.Album, len(listAl))
	for i := range listAl {
		res[i] = response.NewAlbumFromDomain(&listAl[i])
	}
	c.Header(`X-cursor`, nextCursor)
	c.JSON(http.StatusOK, res)
}

// GetByID will get album by given id
func (h *AlbumHandler) GetByID(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	id := int64(idP)
	ctx := c.Request.Context()

	album, err := h.Service.GetByID(ctx, id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewAlbumFromDomain(&album))
}

// Store will store the album by given request body
func (h *AlbumHandler) Store(c *gin.Context) {
	var req request.Album
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	album := req.ToDomain()
	ctx := c.Request.Context()
	if err := h.Service.Store(ctx, &album); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewAlbumFromDomain(&album))
}

// Update will update the album by given request body
func (h *AlbumHandler) Update(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	id := int64(idP)

	var req request.Album
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	album := req.ToDomain()
	album.ID = id
	if err := h.Service.Update(c.Request.Context(), &album); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewAlbumFromDomain(&album))
}

// Delete will delete the album by given param
func (h *AlbumHandler) Delete(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	id := int64(idP)

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// Like records the authenticated user's like of an album.
// Liking twice yields 409, straight from the store's unique key.
func (h *AlbumHandler) Like(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	aid := int64(idP)

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	uid := userID.(int64)

	like := domain.AlbumLike{
		AlbumID: aid,
		UserID:  uid,
	}
	if err := h.LikeService.Like(c.Request.Context(), &like); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": like.ID})
}

// Unlike removes the authenticated user's like of an album.
func (h *AlbumHandler) Unlike(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	aid := int64(idP)

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	uid := userID.(int64)

	if err := h.LikeService.Unlike(c.Request.Context(), aid, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// LikeCount serves the album's like count with its source tag.
// A cache transport failure maps to 503; the client may retry or fall back
// to the album detail endpoint, which degrades to a store-only count.
func (h *AlbumHandler) LikeCount(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	aid := int64(idP)

	count, source, err := h.LikeService.Count(c.Request.Context(), aid)
	if err != nil {
		logrus.Errorf("failed to serve like count for album %d: %v", aid, err)
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.LikeCount{
		AlbumID: aid,
		Count:   count,
		Source:  string(source),
	})
}
