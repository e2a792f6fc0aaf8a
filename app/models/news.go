package models

import (
	"time"
)

// News represents a news article in the system
type News struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(60);uniqueIndex" json:"title" validate:"required,min=5,max=30"`
	Content   string    `gorm:"type:varchar(255)" json:"content" validate:"required,min=5,max=255"`
	AuthorID  uint64    `gorm:"index;not null" json:"author_id"`
	Author    Author    `gorm:"foreignKey:AuthorID" json:"author"`
	Tags      []Tag     `gorm:"many2many:news_tags;" json:"tags,omitempty"`
	Comments  []Comment `gorm:"foreignKey:NewsID" json:"comments,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the News model
func (News) TableName() string {
	return "news"
}
