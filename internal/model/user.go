package model

import "time"

type User struct {
	ID             uint64 `gorm:"primaryKey"`
	Username       string `gorm:"uniqueIndex;size:32;not null"`
	FirstName      string `gorm:"size:32;not null"`
	LastName       string `gorm:"size:32;not null"`
	Email          string `gorm:"uniqueIndex;size:64;not null"`
	Password       string `gorm:"size:255;not null"`
	MobilePhone    string `gorm:"size:15;not null"`
	ProfilePicture string `gorm:"size:255"`
	IsActive       bool   `gorm:"not null;default:false"` // 激活前不可登录
	IsStaff        bool   `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ActivationToken 邮箱激活令牌，一人一条，24小时内有效
type ActivationToken struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;uniqueIndex"`
	Token     string `gorm:"size:36;uniqueIndex;not null"`
	CreatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}

const ActivationTokenTTL = 24 * time.Hour

func (t *ActivationToken) IsValid() bool {
	return time.Since(t.CreatedAt) < ActivationTokenTTL
}
