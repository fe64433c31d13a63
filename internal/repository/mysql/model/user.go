package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/adiwarman/forum-api/domain"
)

type User struct {
	ID       string    `gorm:"primaryKey;type:varchar(50)"`
	Username string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Password string    `gorm:"type:varchar(255);not null"`
	Fullname string    `gorm:"type:varchar(255);not null"`
	Date     time.Time `gorm:"type:datetime;not null"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Date.IsZero() {
		u.Date = time.Now()
	}
	return nil
}

func (u *User) ToDomain() domain.User {
	return domain.User{
		ID:       u.ID,
		Username: u.Username,
		Password: u.Password,
		Fullname: u.Fullname,
		Date:     u.Date,
	}
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:       u.ID,
		Username: u.Username,
		Password: u.Password,
		Fullname: u.Fullname,
		Date:     u.Date,
	}
}
