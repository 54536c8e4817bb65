package model

import "time"

type Category struct {
	ID          uint64 `gorm:"primaryKey"`
	Title       string `gorm:"size:250;not null"`
	Description string `gorm:"size:2500;not null"`
	CreatedAt   time.Time
}
