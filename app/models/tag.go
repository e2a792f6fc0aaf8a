package models

import (
	"time"
)

type Tag struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(30);uniqueIndex" json:"name" validate:"required,min=3,max=15"`
	News      []News    `gorm:"many2many:news_tags;" json:"news,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Tag model
func (Tag) TableName() string {
	return "tags"
}
