package playlist

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/soundnest/soundnest/domain"
)

type Service struct {
	playlistRepo domain.PlaylistRepository
	activityRepo domain.PlaylistActivityRepository
}

var _ domain.PlaylistUsecase = (*Service)(nil)

// NewService will create a new playlist service object
func NewService(p domain.PlaylistRepository, a domain.PlaylistActivityRepository) *Service {
	return &Service{
		playlistRepo: p,
		activityRepo: a,
	}
}

// VerifyOwner reads the owner fresh on every call. Ownership is
// security-sensitive, so unlike the like count it is never cached.
func (s *Service) VerifyOwner(ctx context.Context, playlistID, userID int64) error {
	ownerID, err := s.playlistRepo.GetOwner(ctx, playlistID)
	if err != nil {
		return err
	}

	if ownerID != userID {
		return domain.ErrForbidden
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Playlist, error) {
	return s.playlistRepo.GetByID(ctx, id)
}

func (s *Service) FetchByUser(ctx context.Context, userID int64) ([]domain.Playlist, error) {
	return s.playlistRepo.FetchByUser(ctx, userID)
}

func (s *Service) Create(ctx context.Context, p *domain.Playlist) error {
	return s.playlistRepo.Store(ctx, p)
}

func (s *Service) Update(ctx context.Context, p *domain.Playlist, userID int64) error {
	if err := s.VerifyOwner(ctx, p.ID, userID); err != nil {
		return err
	}

	p.UserID = userID
	return s.playlistRepo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	if err := s.VerifyOwner(ctx, id, userID); err != nil {
		return err
	}

	return s.playlistRepo.Delete(ctx, id, userID)
}

// AddSong gates on ownership, inserts the membership edge, then logs the
// action. A duplicate song surfaces as domain.ErrConflict from the store's
// unique key.
func (s *Service) AddSong(ctx context.Context, playlistID, songID, userID int64) error {
	if err := s.VerifyOwner(ctx, playlistID, userID); err != nil {
		return err
	}

	if err := s.playlistRepo.AddSong(ctx, playlistID, songID); err != nil {
		return err
	}

	s.logActivity(ctx, playlistID, songID, userID, domain.ActivityAddSong)
	return nil
}

func (s *Service) RemoveSong(ctx context.Context, playlistID, songID, userID int64) error {
	if err := s.VerifyOwner(ctx, playlistID, userID); err != nil {
		return err
	}

	if err := s.playlistRepo.RemoveSong(ctx, playlistID, songID); err != nil {
		return err
	}

	s.logActivity(ctx, playlistID, songID, userID, domain.ActivityRemoveSong)
	return nil
}

func (s *Service) ListActivity(ctx context.Context, playlistID int64) ([]domain.PlaylistActivity, error) {
	if _, err := s.playlistRepo.GetOwner(ctx, playlistID); err != nil {
		return nil, err
	}

	records, err := s.activityRepo.ListByPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.PlaylistActivity{}
	}
	return records, nil
}

// logActivity runs after the committed mutation. The membership change is
// already durable, so an append failure is logged rather than turned into a
// failed request.
func (s *Service) logActivity(ctx context.Context, playlistID, songID, userID int64, action string) {
	record := domain.PlaylistActivity{
		PlaylistID: playlistID,
		SongID:     songID,
		UserID:     userID,
		Action:     action,
	}
	if err := s.activityRepo.Append(ctx, &record); err != nil {
		logrus.Errorf("failed to append %s activity for playlist %d: %v", action, playlistID, err)
	}
}
