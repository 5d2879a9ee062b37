package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/soundnest/soundnest/domain"
	"github.com/soundnest/soundnest/internal/repository/mysql/model"
)

type activityRepository struct {
	DB *gorm.DB
}

var _ domain.PlaylistActivityRepository = (*activityRepository)(nil)

// NewActivityRepository creates the append-only activity log layer
func NewActivityRepository(db *gorm.DB) *activityRepository {
	return &activityRepository{db}
}

// Append stamps the record server-side; callers never supply timestamps.
func (m *activityRepository) Append(ctx context.Context, a *domain.PlaylistActivity) error {
	a.CreatedAt = time.Now().UTC()
	activityModel := model.NewPlaylistActivityFromDomain(a)
	if err := m.DB.WithContext(ctx).Create(&activityModel).Error; err != nil {
		return err
	}
	a.ID = activityModel.ID
	return nil
}

// ListByPlaylist orders by created_at then id so records written within the
// same timestamp keep insertion order.
func (m *activityRepository) ListByPlaylist(ctx context.Context, playlistID int64) ([]domain.PlaylistActivity, error) {
	var records []model.PlaylistActivity
	err := m.DB.WithContext(ctx).
		Where("playlist_id = ?", playlistID).
		Order("created_at, id").
		Find(&records).
		Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.PlaylistActivity, len(records))
	for i := range records {
		res[i] = records[i].ToDomain()
	}
	return res, nil
}
