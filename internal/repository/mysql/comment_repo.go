package mysql

import (
	"crowdfunding/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) db() *gorm.DB {
	if r.DB != nil {
		return r.DB
	}
	return DB
}

func (r *CommentRepository) Create(c *model.Comment) error {
	return r.db().Create(c).Error
}

func (r *CommentRepository) FindByID(id uint64) (*model.Comment, error) {
	var c model.Comment
	err := r.db().First(&c, id).Error
	return &c, err
}

// ListByProject 评论按时间倒序
func (r *CommentRepository) ListByProject(projectID uint64) ([]model.Comment, error) {
	var list []model.Comment
	err := r.db().Where("project_id = ?", projectID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *CommentRepository) Delete(id uint64) error {
	return r.db().Delete(&model.Comment{}, id).Error
}
