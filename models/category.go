package models

import "time"

type Category struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uk_name" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (c Category) TableName() string {
	return "categories"
}
