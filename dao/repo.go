package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用 DAO 基类
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// IsExist 按条件判断记录是否存在
func (r Repo[T]) IsExist(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var count int64
	var model T
	err := r.Db.WithContext(ctx).Model(&model).Where(query, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count 按条件统计
func (r Repo[T]) Count(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var count int64
	var model T
	err := r.Db.WithContext(ctx).Model(&model).Where(query, args...).Count(&count).Error
	return count, err
}
