package mysql

import (
	"context"

	"crowdfunding/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

func (r *OutboxRepository) db() *gorm.DB {
	if r.DB != nil {
		return r.DB
	}
	return DB
}

// List 取待投递的捐款事件
func (r *OutboxRepository) List(ctx context.Context, batch int) ([]model.DonationOutbox, error) {
	var rows []model.DonationOutbox
	err := r.db().WithContext(ctx).
		Where("status = ?", 0).
		Order("id").
		Limit(batch).
		Find(&rows).Error
	return rows, err
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return r.db().WithContext(ctx).
		Model(&model.DonationOutbox{}).
		Where("id = ?", id).
		Update("status", 1).Error
}

// MarkRetry 投递失败时累加重试计数，超限置为 failed
func (r *OutboxRepository) MarkRetry(ctx context.Context, id uint64, maxRetry int) error {
	return r.db().WithContext(ctx).
		Model(&model.DonationOutbox{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"retry":  gorm.Expr("retry + 1"),
			"status": gorm.Expr("CASE WHEN retry + 1 >= ? THEN 2 ELSE 0 END", maxRetry),
		}).Error
}
