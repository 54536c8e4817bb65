package model

import "time"

type Project struct {
	ID          uint64  `gorm:"primaryKey"`
	Title       string  `gorm:"size:250;not null"`
	Details     string  `gorm:"type:text;not null"`
	TotalTarget float64 `gorm:"not null"`
	Tags        string  `gorm:"size:255"` // 逗号分隔
	StartTime   time.Time
	EndTime     time.Time
	UserID      uint64 `gorm:"not null;index"`
	CategoryID  uint64 `gorm:"not null;index"`
	IsActive    bool   `gorm:"not null;default:true"`
	IsAccepted  bool   `gorm:"not null;default:false"`
	IsFeatured  bool   `gorm:"not null;default:false"`
	Thumbnail   string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User     User           `gorm:"constraint:OnDelete:CASCADE"`
	Category Category       `gorm:"constraint:OnDelete:RESTRICT"`
	Images   []ProjectImage `gorm:"constraint:OnDelete:CASCADE"`
}

type ProjectImage struct {
	ID         uint64    `gorm:"primaryKey"`
	ProjectID  uint64    `gorm:"not null;index"`
	Image      string    `gorm:"size:255;not null"`
	Title      string    `gorm:"size:250"`
	UploadedAt time.Time `gorm:"autoCreateTime"`
}
