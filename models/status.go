package models

import "time"

// Status 想法的生命周期标签, Classes 为前端展示用的样式分类
type Status struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uk_status_name" json:"name"`
	Classes   string    `gorm:"column:classes;type:varchar(100);not null;default:''" json:"classes"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (s Status) TableName() string {
	return "statuses"
}
