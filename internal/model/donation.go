package model

import "time"

// Donation 捐款记录，创建后不可修改；捐款人注销后 user_id 置空
type Donation struct {
	ID        uint64  `gorm:"primaryKey"`
	UserID    *uint64 `gorm:"index"`
	ProjectID uint64  `gorm:"not null;index"`
	Amount    float64 `gorm:"not null"`
	CreatedAt time.Time

	User    *User   `gorm:"constraint:OnDelete:SET NULL"`
	Project Project `gorm:"constraint:OnDelete:CASCADE"`
}

// DonationOutbox 捐款事件投递表
type DonationOutbox struct {
	ID         uint64 `gorm:"primaryKey"`
	EventType  string `gorm:"size:16;not null"` // donate
	ProjectID  uint64 `gorm:"not null"`
	DonationID uint64 `gorm:"not null"`
	Payload    string `gorm:"type:json;not null"`
	Status     int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry      int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (DonationOutbox) TableName() string { return "donation_outbox" }
