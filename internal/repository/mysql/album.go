package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/soundnest/soundnest/domain"
	"github.com/soundnest/soundnest/internal/repository"
	"github.com/soundnest/soundnest/internal/repository/mysql/model"
)

type albumRepository struct {
	DB *gorm.DB
}

var _ domain.AlbumRepository = (*albumRepository)(nil)

// NewAlbumRepository creates the album persistence layer
func NewAlbumRepository(db *gorm.DB) *albumRepository {
	return &albumRepository{db}
}

func (m *albumRepository) Fetch(ctx context.Context, cursor string, num int64) (res []domain.Album, err error) {
	var albums []model.Album
	decodedCursor, err := repository.DecodeCursor(cursor)
	if err != nil && cursor != "" {
		return nil, domain.ErrBadParamInput
	}

	repository.PageVerify(&num)
	err = m.DB.WithContext(ctx).
		Where("created_at > ?", decodedCursor).
		Order("created_at").
		Limit(int(num)).
		Find(&albums).
		Error

	if err != nil {
		return
	}

	for _, album := range albums {
		res = append(res, album.ToDomain())
	}

	return
}

func (m *albumRepository) GetByID(ctx context.Context, id int64) (res domain.Album, err error) {
	var album model.Album
	err = m.DB.WithContext(ctx).First(&album, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, domain.ErrNotFound
		}
		return res, err
	}
	res = album.ToDomain()
	return
}

func (m *albumRepository) Store(ctx context.Context, a *domain.Album) error {
	albumModel := model.NewAlbumFromDomain(a)
	result := m.DB.WithContext(ctx).Create(&albumModel)
	if result.Error != nil {
		return result.Error
	}
	a.ID = albumModel.ID
	a.CreatedAt = albumModel.CreatedAt
	a.UpdatedAt = albumModel.UpdatedAt
	return nil
}

func (m *albumRepository) Update(ctx context.Context, a *domain.Album) error {
	albumModel := model.NewAlbumFromDomain(a)
	result := m.DB.WithContext(ctx).Model(&albumModel).Updates(&albumModel)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (m *albumRepository) Delete(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Album{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
