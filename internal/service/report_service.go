package service

import (
	"crowdfunding/internal/model"
	"crowdfunding/internal/pkg"
	"crowdfunding/internal/repository/mysql"
)

type ReportService struct {
	repo     *mysql.ReportRepository
	projects *mysql.ProjectRepository
	comments *mysql.CommentRepository
}

func NewReportService() *ReportService {
	return &ReportService{
		repo:     &mysql.ReportRepository{},
		projects: &mysql.ProjectRepository{},
		comments: &mysql.CommentRepository{},
	}
}

func (s *ReportService) ReportProject(actor pkg.Actor, projectID uint64, details string) (*model.ProjectReport, error) {
	if err := actor.Require(pkg.Authenticated, 0); err != nil {
		return nil, err
	}
	errs := pkg.RunChecks(
		pkg.FieldCheck{Field: "details", Check: func() string { return pkg.CheckRequired(details) }},
	)
	if errs.Has() {
		return nil, errs
	}
	if _, err := s.projects.FindByID(projectID); err != nil {
		return nil, err
	}

	userID := actor.UserID
	rep := &model.ProjectReport{UserID: &userID, ProjectID: projectID, Details: details}
	if err := s.repo.CreateProjectReport(rep); err != nil {
		return nil, err
	}
	return rep, nil
}

// ListProjectReports 举报列表仅管理员可见
func (s *ReportService) ListProjectReports(actor pkg.Actor, projectID uint64) ([]model.ProjectReport, error) {
	if err := actor.Require(pkg.AdminOnly, 0); err != nil {
		return nil, err
	}
	if _, err := s.projects.FindByID(projectID); err != nil {
		return nil, err
	}
	return s.repo.ListProjectReports(projectID)
}

func (s *ReportService) DeleteProjectReport(actor pkg.Actor, id uint64) error {
	if err := actor.Require(pkg.AdminOnly, 0); err != nil {
		return err
	}
	if _, err := s.repo.FindProjectReport(id); err != nil {
		return err
	}
	return s.repo.DeleteProjectReport(id)
}

func (s *ReportService) ReportComment(actor pkg.Actor, commentID uint64, details string) (*model.CommentReport, error) {
	if err := actor.Require(pkg.Authenticated, 0); err != nil {
		return nil, err
	}
	errs := pkg.RunChecks(
		pkg.FieldCheck{Field: "details", Check: func() string { return pkg.CheckRequired(details) }},
	)
	if errs.Has() {
		return nil, errs
	}
	if _, err := s.comments.FindByID(commentID); err != nil {
		return nil, err
	}

	userID := actor.UserID
	rep := &model.CommentReport{UserID: &userID, CommentID: commentID, Details: details}
	if err := s.repo.CreateCommentReport(rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *ReportService) ListCommentReports(actor pkg.Actor) ([]model.CommentReport, error) {
	if err := actor.Require(pkg.AdminOnly, 0); err != nil {
		return nil, err
	}
	return s.repo.ListCommentReports()
}

func (s *ReportService) DeleteCommentReport(actor pkg.Actor, id uint64) error {
	if err := actor.Require(pkg.AdminOnly, 0); err != nil {
		return err
	}
	if _, err := s.repo.FindCommentReport(id); err != nil {
		return err
	}
	return s.repo.DeleteCommentReport(id)
}
