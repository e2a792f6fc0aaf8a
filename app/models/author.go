package models

import (
	"time"
)

// Author represents a news author in the system
type Author struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(30);uniqueIndex" json:"name" validate:"required,min=3,max=15"`
	News      []News    `gorm:"foreignKey:AuthorID" json:"news,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Author model
func (Author) TableName() string {
	return "authors"
}
