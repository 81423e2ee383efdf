package models

import (
	"time"
)

type Idea struct {
	ID          int64     `gorm:"column:id;primary_key" json:"id"`
	UserID      int64     `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	CategoryID  int64     `gorm:"column:category_id;not null;index:idx_category_id" json:"category_id"`
	StatusID    int64     `gorm:"column:status_id;not null;index:idx_status_id" json:"status_id"`
	Title       string    `gorm:"column:title;type:varchar(100);not null;default:''" json:"title"`
	Slug        string    `gorm:"column:slug;type:varchar(120);not null;uniqueIndex:uk_slug" json:"slug"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	SpamReports int       `gorm:"column:spam_reports;not null;default:0" json:"spam_reports"`
	CreatedAt   time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (i Idea) TableName() string {
	return "ideas"
}
