package mysql

import (
	"crowdfunding/internal/model"

	"gorm.io/gorm"
)

type ActivationTokenRepository struct {
	DB *gorm.DB
}

func (r *ActivationTokenRepository) db() *gorm.DB {
	if r.DB != nil {
		return r.DB
	}
	return DB
}

func (r *ActivationTokenRepository) Create(t *model.ActivationToken) error {
	return r.db().Create(t).Error
}

func (r *ActivationTokenRepository) FindByToken(token string) (*model.ActivationToken, error) {
	var t model.ActivationToken
	err := r.db().Where("token = ?", token).First(&t).Error
	return &t, err
}

func (r *ActivationTokenRepository) Delete(t *model.ActivationToken) error {
	return r.db().Delete(t).Error
}

// DeleteByUser 重发前清掉该用户的旧令牌，保证同时只有一条有效
func (r *ActivationTokenRepository) DeleteByUser(userID uint64) error {
	return r.db().Where("user_id = ?", userID).Delete(&model.ActivationToken{}).Error
}
