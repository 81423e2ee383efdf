package dao

import (
	"context"
	"errors"

	"voteboard/models"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db)}
}

func (d *UserDAO) Create(ctx context.Context, user *models.User) error {
	return d.Db.WithContext(ctx).Create(user).Error
}

func (d *UserDAO) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := d.Db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, nil
	}
	return &user, nil
}

func (d *UserDAO) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := d.Db.WithContext(ctx).Where("email = ?", email).Limit(1).Find(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, nil
	}
	return &user, nil
}
