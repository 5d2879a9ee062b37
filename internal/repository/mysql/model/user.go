package model

import (
	"time"

	"github.com/soundnest/soundnest/domain"
)

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Username  string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Password  string    `gorm:"type:varchar(255);not null"`
	UpdatedAt time.Time `gorm:"type:datetime"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "user"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:        m.ID,
		Name:      m.Name,
		Username:  m.Username,
		Password:  m.Password,
		UpdatedAt: m.UpdatedAt,
		CreatedAt: m.CreatedAt,
	}
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Password:  u.Password,
		UpdatedAt: u.UpdatedAt,
		CreatedAt: u.CreatedAt,
	}
}
