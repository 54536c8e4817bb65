package mysql

import (
	"crowdfunding/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) db() *gorm.DB {
	if r.DB != nil {
		return r.DB
	}
	return DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db().Create(user).Error
}

func (r *UserRepository) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := r.db().First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db().Where("email = ?", email).First(&user).Error
	return &user, err
}

// Activate 激活成功后将用户置为可登录
func (r *UserRepository) Activate(user *model.User) error {
	return r.db().Model(user).Update("is_active", true).Error
}

func (r *UserRepository) UpdatePassword(user *model.User, newPassword string) error {
	return r.db().Model(user).Update("password", newPassword).Error
}

// Delete 注销账号，捐款/评分/评论等记录按外键策略置空
func (r *UserRepository) Delete(id uint64) error {
	return r.db().Delete(&model.User{}, id).Error
}
