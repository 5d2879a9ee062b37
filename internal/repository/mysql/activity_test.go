package mysql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/soundnest/soundnest/domain"
	mysqlRepo "github.com/soundnest/soundnest/internal/repository/mysql"
)

func TestActivityAppendStampsServerSide(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysqlRepo.NewActivityRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `playlist_activity`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	// the caller-supplied timestamp must be discarded
	record := domain.PlaylistActivity{
		PlaylistID: 3,
		SongID:     500,
		UserID:     10,
		Action:     domain.ActivityAddSong,
		CreatedAt:  time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	before := time.Now().UTC()
	err := repo.Append(context.TODO(), &record)
	require.NoError(t, err)

	assert.Equal(t, int64(7), record.ID)
	assert.False(t, record.CreatedAt.Before(before), "timestamp must be assigned at append time")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityListByPlaylist(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysqlRepo.NewActivityRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "playlist_id", "song_id", "user_id", "action", "created_at"}).
		AddRow(1, 3, 500, 10, domain.ActivityAddSong, now.Add(-time.Hour)).
		AddRow(2, 3, 500, 10, domain.ActivityRemoveSong, now)
	mock.ExpectQuery("SELECT \\* FROM `playlist_activity`").
		WillReturnRows(rows)

	records, err := repo.ListByPlaylist(context.TODO(), 3)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.ActivityAddSong, records[0].Action)
	assert.Equal(t, domain.ActivityRemoveSong, records[1].Action)
	assert.True(t, records[0].CreatedAt.Before(records[1].CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityListByPlaylistEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysqlRepo.NewActivityRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `playlist_activity`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "playlist_id", "song_id", "user_id", "action", "created_at"}))

	records, err := repo.ListByPlaylist(context.TODO(), 3)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}
