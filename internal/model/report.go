package model

import "time"

type ProjectReport struct {
	ID        uint64  `gorm:"primaryKey"`
	UserID    *uint64 `gorm:"index"`
	ProjectID uint64  `gorm:"not null;index"`
	Details   string  `gorm:"size:500;not null"`
	CreatedAt time.Time

	User    *User   `gorm:"constraint:OnDelete:SET NULL"`
	Project Project `gorm:"constraint:OnDelete:CASCADE"`
}

type CommentReport struct {
	ID        uint64  `gorm:"primaryKey"`
	UserID    *uint64 `gorm:"index"`
	CommentID uint64  `gorm:"not null;index"`
	Details   string  `gorm:"size:500;not null"`
	CreatedAt time.Time

	User    *User   `gorm:"constraint:OnDelete:SET NULL"`
	Comment Comment `gorm:"constraint:OnDelete:CASCADE"`
}
