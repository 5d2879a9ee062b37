package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/soundnest/soundnest/domain"
	"github.com/soundnest/soundnest/internal/rest/request"
	"github.com/soundnest/soundnest/internal/rest/response"
)

type playlistHandler struct {
	Service domain.PlaylistUsecase
}

func NewPlaylistHandler(svc domain.PlaylistUsecase) *playlistHandler {
	return &playlistHandler{
		Service: svc,
	}
}

// List returns the authenticated user's playlists
func (h *playlistHandler) List(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	uid := userID.(int64)

	playlists, err := h.Service.FetchByUser(c.Request.Context(), uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Playlist, len(playlists))
	for i := range playlists {
		res[i] = response.NewPlaylistFromDomain(&playlists[i])
	}
	c.JSON(http.StatusOK, res)
}

// Get returns a playlist with its songs
func (h *playlistHandler) Get(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	id := int64(idP)

	playlist, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewPlaylistFromDomain(&playlist))
}

// Create stores a new playlist owned by the authenticated user
func (h *playlistHandler) Create(c *gin.Context) {
	var req request.Playlist
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	playlist := req.ToDomain()
	playlist.UserID = userID.(int64)

	if err := h.Service.Create(c.Request.Context(), &playlist); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewPlaylistFromDomain(&playlist))
}

// Update renames a playlist; only the owner may do this
func (h *playlistHandler) Update(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	id := int64(idP)

	var req request.Playlist
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	uid := userID.(int64)

	playlist := req.ToDomain()
	playlist.ID = id

	if err := h.Service.Update(c.Request.Context(), &playlist, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Playlist updated successfully"})
}

// Delete removes a playlist; only the owner may do this
func (h *playlistHandler) Delete(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	id := int64(idP)

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	uid := userID.(int64)

	if err := h.Service.Delete(c.Request.Context(), id, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// AddSong inserts a song into the playlist; duplicates yield 409
func (h *playlistHandler) AddSong(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	id := int64(idP)

	var req request.PlaylistSong
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	uid := userID.(int64)

	if err := h.Service.AddSong(c.Request.Context(), id, req.SongID, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Song added to playlist"})
}

// RemoveSong removes a song from the playlist
func (h *playlistHandler) RemoveSong(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	id := int64(idP)

	songIDP, err := strconv.Atoi(c.Param("songID"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	songID := int64(songIDP)

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	uid := userID.(int64)

	if err := h.Service.RemoveSong(c.Request.Context(), id, songID, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// Activity lists the playlist's mutation log, oldest first.
// A playlist without activity returns an empty array, not an error.
func (h *playlistHandler) Activity(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	id := int64(idP)

	records, err := h.Service.ListActivity(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Activity, len(records))
	for i := range records {
		res[i] = response.NewActivityFromDomain(&records[i])
	}
	c.JSON(http.StatusOK, res)
}
