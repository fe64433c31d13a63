package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/adiwarman/forum-api/domain"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Content   string    `gorm:"type:text;not null"`
	ThreadID  string    `gorm:"column:thread_id;type:varchar(50);not null;index"`
	Owner     string    `gorm:"type:varchar(50);not null;index"`
	Date      time.Time `gorm:"type:datetime;not null"`
	IsDeleted bool      `gorm:"column:is_deleted;not null;default:false"`

	Thread Thread `gorm:"foreignKey:ThreadID;references:ID;constraint:OnDelete:CASCADE"`
	Author User   `gorm:"foreignKey:Owner;references:ID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string {
	return "comments"
}

// BeforeCreate assigns the creation timestamp at insert time.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.Date.IsZero() {
		c.Date = time.Now()
	}
	return nil
}

func (c *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        c.ID,
		Content:   c.Content,
		ThreadID:  c.ThreadID,
		Owner:     c.Owner,
		Date:      c.Date,
		IsDeleted: c.IsDeleted,
	}
}
