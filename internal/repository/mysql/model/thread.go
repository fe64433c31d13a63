package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/adiwarman/forum-api/domain"
)

type Thread struct {
	ID    string    `gorm:"primaryKey;type:varchar(50)"`
	Title string    `gorm:"type:varchar(255);not null"`
	Body  string    `gorm:"type:text;not null"`
	Owner string    `gorm:"type:varchar(50);not null;index"`
	Date  time.Time `gorm:"type:datetime;not null"`

	Author User `gorm:"foreignKey:Owner;references:ID;constraint:OnDelete:CASCADE"`
}

func (Thread) TableName() string {
	return "threads"
}

// BeforeCreate assigns the creation timestamp at insert time.
func (t *Thread) BeforeCreate(tx *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	return nil
}

func (t *Thread) ToDomain() domain.Thread {
	return domain.Thread{
		ID:    t.ID,
		Title: t.Title,
		Body:  t.Body,
		Owner: t.Owner,
		Date:  t.Date,
	}
}
