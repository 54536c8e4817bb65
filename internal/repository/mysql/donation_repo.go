package mysql

import (
	"crowdfunding/internal/model"

	"gorm.io/gorm"
)

type DonationRepository struct {
	DB *gorm.DB
}

func (r *DonationRepository) db() *gorm.DB {
	if r.DB != nil {
		return r.DB
	}
	return DB
}

// CreateWithOutbox 捐款与事件记录同事务写入
func (r *DonationRepository) CreateWithOutbox(d *model.Donation, payload string) error {
	return r.db().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(d).Error; err != nil {
			return err
		}
		ob := &model.DonationOutbox{
			EventType:  "donate",
			ProjectID:  d.ProjectID,
			DonationID: d.ID,
			Payload:    payload,
		}
		return tx.Create(ob).Error
	})
}

func (r *DonationRepository) FindByID(id uint64) (*model.Donation, error) {
	var d model.Donation
	err := r.db().First(&d, id).Error
	return &d, err
}

func (r *DonationRepository) ListByProject(projectID uint64) ([]model.Donation, error) {
	var list []model.Donation
	err := r.db().Where("project_id = ?", projectID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *DonationRepository) ListAll() ([]model.Donation, error) {
	var list []model.Donation
	err := r.db().Order("created_at DESC").Find(&list).Error
	return list, err
}
