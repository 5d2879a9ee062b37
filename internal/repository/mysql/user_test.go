package mysql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/soundnest/soundnest/domain"
	mysqlRepo "github.com/soundnest/soundnest/internal/repository/mysql"
)

func TestUserGetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysqlRepo.NewUserRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "username", "password", "updated_at", "created_at"}).
		AddRow(10, "Thom", "thom", "$2a$10$hash", now, now)
	mock.ExpectQuery("SELECT \\* FROM `user`").
		WillReturnRows(rows)

	u, err := repo.GetByUsername(context.TODO(), "thom")
	require.NoError(t, err)
	assert.Equal(t, int64(10), u.ID)
	assert.Equal(t, "thom", u.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByUsernameMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysqlRepo.NewUserRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `user`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "username", "password", "updated_at", "created_at"}))

	_, err := repo.GetByUsername(context.TODO(), "thom")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByUsernameStoreFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysqlRepo.NewUserRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `user`").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.GetByUsername(context.TODO(), "thom")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserInsertDuplicateUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysqlRepo.NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `user`").
		WillReturnError(&mysqldriver.MySQLError{
			Number:  1062,
			Message: "Duplicate entry 'thom' for key 'username'",
		})
	mock.ExpectRollback()

	err := repo.Insert(context.TODO(), &domain.User{Name: "Thom", Username: "thom", Password: "$2a$10$hash"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
