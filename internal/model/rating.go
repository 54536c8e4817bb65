package model

import "time"

// Rating 每次评分一条记录，不限制同一用户重复评分
type Rating struct {
	ID        uint64  `gorm:"primaryKey"`
	ProjectID uint64  `gorm:"not null;index"`
	UserID    *uint64 `gorm:"index"`
	Rate      float64 `gorm:"not null"` // 0.0 - 5.0
	Detail    string  `gorm:"size:500"`
	CreatedAt time.Time

	User    *User   `gorm:"constraint:OnDelete:SET NULL"`
	Project Project `gorm:"constraint:OnDelete:CASCADE"`
}
