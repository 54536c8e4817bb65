package mysql

import (
	"crowdfunding/internal/model"

	"gorm.io/gorm"
)

type ProjectImageRepository struct {
	DB *gorm.DB
}

func (r *ProjectImageRepository) db() *gorm.DB {
	if r.DB != nil {
		return r.DB
	}
	return DB
}

func (r *ProjectImageRepository) Create(img *model.ProjectImage) error {
	return r.db().Create(img).Error
}

func (r *ProjectImageRepository) FindByID(id uint64) (*model.ProjectImage, error) {
	var img model.ProjectImage
	err := r.db().First(&img, id).Error
	return &img, err
}

func (r *ProjectImageRepository) Delete(id uint64) error {
	return r.db().Delete(&model.ProjectImage{}, id).Error
}
