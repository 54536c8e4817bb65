package mysql

import (
	"crowdfunding/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func (r *CategoryRepository) db() *gorm.DB {
	if r.DB != nil {
		return r.DB
	}
	return DB
}

func (r *CategoryRepository) Create(c *model.Category) error {
	return r.db().Create(c).Error
}

func (r *CategoryRepository) FindByID(id uint64) (*model.Category, error) {
	var c model.Category
	err := r.db().First(&c, id).Error
	return &c, err
}

func (r *CategoryRepository) List() ([]model.Category, error) {
	var list []model.Category
	err := r.db().Find(&list).Error
	return list, err
}
