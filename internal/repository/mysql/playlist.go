package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/soundnest/soundnest/domain"
	"github.com/soundnest/soundnest/internal/repository/mysql/model"
)

type playlistRepository struct {
	DB *gorm.DB
}

var _ domain.PlaylistRepository = (*playlistRepository)(nil)

// NewPlaylistRepository creates the playlist persistence layer
func NewPlaylistRepository(db *gorm.DB) *playlistRepository {
	return &playlistRepository{db}
}

func (m *playlistRepository) GetByID(ctx context.Context, id int64) (res domain.Playlist, err error) {
	var playlist model.Playlist
	err = m.DB.WithContext(ctx).First(&playlist, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, domain.ErrNotFound
		}
		return res, err
	}
	res = playlist.ToDomain()

	var songs []model.PlaylistSong
	err = m.DB.WithContext(ctx).
		Where("playlist_id = ?", id).
		Order("created_at").
		Find(&songs).
		Error
	if err != nil {
		return domain.Playlist{}, err
	}

	res.Songs = make([]domain.PlaylistSong, len(songs))
	for i := range songs {
		res.Songs[i] = songs[i].ToDomain()
	}
	return
}

func (m *playlistRepository) GetOwner(ctx context.Context, id int64) (int64, error) {
	var playlist model.Playlist
	err := m.DB.WithContext(ctx).Select("id, user_id").First(&playlist, "id = ?", id).Error
	if err != nil {
		// a store failure must not masquerade as a missing playlist;
		// the ownership gate rides on this distinction
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return playlist.UserID, nil
}

func (m *playlistRepository) FetchByUser(ctx context.Context, userID int64) ([]domain.Playlist, error) {
	var playlists []model.Playlist
	err := m.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&playlists).
		Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Playlist, len(playlists))
	for i := range playlists {
		res[i] = playlists[i].ToDomain()
	}
	return res, nil
}

func (m *playlistRepository) Store(ctx context.Context, p *domain.Playlist) error {
	playlistModel := model.NewPlaylistFromDomain(p)
	result := m.DB.WithContext(ctx).Create(&playlistModel)
	if result.Error != nil {
		return result.Error
	}
	p.ID = playlistModel.ID
	p.CreatedAt = playlistModel.CreatedAt
	p.UpdatedAt = playlistModel.UpdatedAt
	return nil
}

// Update carries the owner predicate in the statement itself, so the write
// re-authorizes in the same round-trip that mutates.
func (m *playlistRepository) Update(ctx context.Context, p *domain.Playlist) error {
	result := m.DB.WithContext(ctx).
		Model(&model.Playlist{}).
		Where("id = ? AND user_id = ?", p.ID, p.UserID).
		Update("title", p.Title)
	if result.Error != nil {
		return result.Error
	}

	// MySQL reports 0 affected rows both for a missing/foreign playlist and
	// for a title identical to the stored one (no CLIENT_FOUND_ROWS). Callers
	// run the ownership gate first, so here 0 rows means gone or a no-op
	// rename; both map to ErrNotFound.
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *playlistRepository) Delete(ctx context.Context, id, userID int64) error {
	result := m.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Playlist{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *playlistRepository) AddSong(ctx context.Context, playlistID, songID int64) error {
	edge := model.PlaylistSong{
		PlaylistID: playlistID,
		SongID:     songID,
	}
	if err := m.DB.WithContext(ctx).Create(&edge).Error; err != nil {
		if isDuplicateEntry(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (m *playlistRepository) RemoveSong(ctx context.Context, playlistID, songID int64) error {
	result := m.DB.WithContext(ctx).
		Where("playlist_id = ? AND song_id = ?", playlistID, songID).
		Delete(&model.PlaylistSong{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
