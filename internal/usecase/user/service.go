package user

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/soundnest/soundnest/domain"
)

type Service struct {
	userRepo  domain.UserRepository
	jwtSecret []byte
	jwtTTL    time.Duration
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService will create a new user service object
func NewService(u domain.UserRepository, jwtSecret []byte, jwtTTL time.Duration) *Service {
	return &Service{
		userRepo:  u,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

func (s *Service) Register(ctx context.Context, name, username, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u := domain.User{
		Name:     name,
		Username: username,
		Password: string(hashed),
	}
	// The username unique key is the conflict authority, not a pre-read.
	return s.userRepo.Insert(ctx, &u)
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", domain.ErrBadParamInput
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID,
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     now.Add(s.jwtTTL).Unix(),
	})

	return token.SignedString(s.jwtSecret)
}
