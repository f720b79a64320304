package models

import (
	"time"
)

// Blog mirrors the remote `blogs` table: one generated post per row.
type Blog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"column:title;not null;type:text" json:"title"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Blog) TableName() string {
	return "blogs"
}
