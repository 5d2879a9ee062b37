package mysql

import (
	"context"
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/soundnest/soundnest/domain"
	"github.com/soundnest/soundnest/internal/repository/mysql/model"
)

// mysqlDuplicateEntry is the server error number for a unique-key violation.
const mysqlDuplicateEntry = 1062

type albumLikeRepository struct {
	DB *gorm.DB
}

var _ domain.AlbumLikeRepository = (*albumLikeRepository)(nil)

// NewAlbumLikeRepository creates the like-record persistence layer
func NewAlbumLikeRepository(db *gorm.DB) *albumLikeRepository {
	return &albumLikeRepository{db}
}

// AddLikeRecord inserts blind; the uk_album_user unique key is the authority
// on duplicates, so two concurrent inserts for the same pair resolve in the
// store, not here.
func (m *albumLikeRepository) AddLikeRecord(ctx context.Context, like *domain.AlbumLike) error {
	likeModel := model.NewAlbumLikeFromDomain(like)
	if err := m.DB.WithContext(ctx).Create(&likeModel).Error; err != nil {
		if isDuplicateEntry(err) {
			return domain.ErrConflict
		}
		return err
	}

	like.ID = likeModel.ID
	like.CreatedAt = likeModel.CreatedAt
	return nil
}

func (m *albumLikeRepository) RemoveLikeRecord(ctx context.Context, albumID, userID int64) error {
	result := m.DB.WithContext(ctx).
		Where("album_id = ? AND user_id = ?", albumID, userID).
		Delete(&model.AlbumLike{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *albumLikeRepository) CountByAlbum(ctx context.Context, albumID int64) (int64, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.AlbumLike{}).
		Where("album_id = ?", albumID).
		Count(&count).
		Error

	return count, err
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysqldriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
