package mysql

import (
	"crowdfunding/internal/model"

	"gorm.io/gorm"
)

type RatingRepository struct {
	DB *gorm.DB
}

func (r *RatingRepository) db() *gorm.DB {
	if r.DB != nil {
		return r.DB
	}
	return DB
}

func (r *RatingRepository) Create(rating *model.Rating) error {
	return r.db().Create(rating).Error
}

func (r *RatingRepository) FindByID(id uint64) (*model.Rating, error) {
	var rating model.Rating
	err := r.db().First(&rating, id).Error
	return &rating, err
}

func (r *RatingRepository) ListByProject(projectID uint64) ([]model.Rating, error) {
	var list []model.Rating
	err := r.db().Where("project_id = ?", projectID).Find(&list).Error
	return list, err
}

func (r *RatingRepository) Delete(id uint64) error {
	return r.db().Delete(&model.Rating{}, id).Error
}
