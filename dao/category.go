package dao

import (
	"context"

	"voteboard/models"

	"gorm.io/gorm"
)

type CategoryDAO struct {
	Repo[models.Category]
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{Repo: NewRepo[models.Category](db)}
}

// FindAll 全部分类
func (d *CategoryDAO) FindAll(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := d.Db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	return categories, err
}

func (d *CategoryDAO) GetByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := d.Db.WithContext(ctx).Where("name = ?", name).Limit(1).Find(&category).Error
	if err != nil {
		return nil, err
	}
	if category.ID == 0 {
		return nil, nil
	}
	return &category, nil
}
