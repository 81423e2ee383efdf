package models

import "time"

// Vote 投票记录
// 对应表 votes
// 唯一键: idea_id + user_id, 一人一票由数据库约束保证
type Vote struct {
	ID        int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	IdeaID    int64     `gorm:"column:idea_id;not null;uniqueIndex:uk_idea_user,priority:1" json:"idea_id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_idea_user,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (v Vote) TableName() string { return "votes" }
