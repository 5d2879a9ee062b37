package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/soundnest/soundnest/domain"
	"github.com/soundnest/soundnest/internal/usecase/user"
)

type fakeUserRepo struct {
	byUsername map[string]domain.User
	nextID     int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: make(map[string]domain.User)}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (domain.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (domain.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Insert(_ context.Context, u *domain.User) error {
	if _, ok := f.byUsername[u.Username]; ok {
		return domain.ErrConflict
	}
	f.nextID++
	u.ID = f.nextID
	f.byUsername[u.Username] = *u
	return nil
}

const testSecret = "test-secret"

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := user.NewService(repo, []byte(testSecret), time.Hour)

	username := faker.Username()
	require.NoError(t, svc.Register(context.TODO(), faker.Name(), username, "s3cret"))

	stored := repo.byUsername[username]
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := user.NewService(repo, []byte(testSecret), time.Hour)

	username := faker.Username()
	require.NoError(t, svc.Register(context.TODO(), faker.Name(), username, "s3cret"))
	err := svc.Register(context.TODO(), faker.Name(), username, "other")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLoginIssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := user.NewService(repo, []byte(testSecret), time.Hour)

	username := faker.Username()
	require.NoError(t, svc.Register(context.TODO(), faker.Name(), username, "s3cret"))

	tokenString, err := svc.Login(context.TODO(), username, "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(repo.byUsername[username].ID), claims["user_id"])
	assert.NotEmpty(t, claims["jti"])
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := user.NewService(repo, []byte(testSecret), time.Hour)

	username := faker.Username()
	require.NoError(t, svc.Register(context.TODO(), faker.Name(), username, "s3cret"))

	_, err := svc.Login(context.TODO(), username, "wrong")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestLoginUnknownUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := user.NewService(repo, []byte(testSecret), time.Hour)

	_, err := svc.Login(context.TODO(), "nobody", "s3cret")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
