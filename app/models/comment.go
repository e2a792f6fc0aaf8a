package models

import (
	"time"
)

type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:varchar(255)" json:"content" validate:"required,min=3,max=255"`
	NewsID    uint64    `gorm:"index;not null" json:"news_id"`
	News      News      `gorm:"foreignKey:NewsID" json:"news,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Comment model
func (Comment) TableName() string {
	return "comments"
}
