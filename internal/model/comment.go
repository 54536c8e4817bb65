package model

import "time"

type Comment struct {
	ID        uint64  `gorm:"primaryKey"`
	ProjectID uint64  `gorm:"not null;index"`
	UserID    *uint64 `gorm:"index"`
	Body      string  `gorm:"type:text;not null"`
	CreatedAt time.Time

	User    *User   `gorm:"constraint:OnDelete:SET NULL"`
	Project Project `gorm:"constraint:OnDelete:CASCADE"`
}
