package mysql

import (
	"crowdfunding/internal/model"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func (r *ReportRepository) db() *gorm.DB {
	if r.DB != nil {
		return r.DB
	}
	return DB
}

func (r *ReportRepository) CreateProjectReport(rep *model.ProjectReport) error {
	return r.db().Create(rep).Error
}

func (r *ReportRepository) FindProjectReport(id uint64) (*model.ProjectReport, error) {
	var rep model.ProjectReport
	err := r.db().First(&rep, id).Error
	return &rep, err
}

func (r *ReportRepository) ListProjectReports(projectID uint64) ([]model.ProjectReport, error) {
	var list []model.ProjectReport
	err := r.db().Where("project_id = ?", projectID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *ReportRepository) DeleteProjectReport(id uint64) error {
	return r.db().Delete(&model.ProjectReport{}, id).Error
}

func (r *ReportRepository) CreateCommentReport(rep *model.CommentReport) error {
	return r.db().Create(rep).Error
}

func (r *ReportRepository) FindCommentReport(id uint64) (*model.CommentReport, error) {
	var rep model.CommentReport
	err := r.db().First(&rep, id).Error
	return &rep, err
}

func (r *ReportRepository) ListCommentReports() ([]model.CommentReport, error) {
	var list []model.CommentReport
	err := r.db().Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *ReportRepository) DeleteCommentReport(id uint64) error {
	return r.db().Delete(&model.CommentReport{}, id).Error
}
