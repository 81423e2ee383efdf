package dao

import (
	"context"

	"voteboard/models"

	"gorm.io/gorm"
)

type StatusDAO struct {
	Repo[models.Status]
}

func NewStatusDAO(db *gorm.DB) *StatusDAO {
	return &StatusDAO{Repo: NewRepo[models.Status](db)}
}

// FindAll 全部状态, 按ID稳定排序
func (d *StatusDAO) FindAll(ctx context.Context) ([]*models.Status, error) {
	var statuses []*models.Status
	err := d.Db.WithContext(ctx).Order("id ASC").Find(&statuses).Error
	return statuses, err
}

func (d *StatusDAO) GetByName(ctx context.Context, name string) (*models.Status, error) {
	var status models.Status
	err := d.Db.WithContext(ctx).Where("name = ?", name).Limit(1).Find(&status).Error
	if err != nil {
		return nil, err
	}
	if status.ID == 0 {
		return nil, nil
	}
	return &status, nil
}
