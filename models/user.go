package models

import "time"

type User struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100);not null;default:''" json:"name"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uk_email" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(255);not null;default:''" json:"-"`
	IsAdmin   bool      `gorm:"column:is_admin;not null;default:0" json:"is_admin"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (u User) TableName() string {
	return "users"
}
