package models

import "time"

type Comment struct {
	ID          int64     `gorm:"column:id;primary_key" json:"id"`
	IdeaID      int64     `gorm:"column:idea_id;not null;index:idx_idea_id" json:"idea_id"`
	UserID      int64     `gorm:"column:user_id;not null;index:idx_comment_user_id" json:"user_id"`
	Body        string    `gorm:"column:body;type:text" json:"body"`
	SpamReports int       `gorm:"column:spam_reports;not null;default:0" json:"spam_reports"`
	CreatedAt   time.Time `gorm:"column:created_at;index:idx_comment_created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (c Comment) TableName() string {
	return "comments"
}
