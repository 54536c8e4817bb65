package service

import (
	"crowdfunding/internal/model"
	"crowdfunding/internal/pkg"
	"crowdfunding/internal/repository/mysql"
)

type CommentService struct {
	repo     *mysql.CommentRepository
	projects *mysql.ProjectRepository
}

func NewCommentService() *CommentService {
	return &CommentService{
		repo:     &mysql.CommentRepository{},
		projects: &mysql.ProjectRepository{},
	}
}

func (s *CommentService) Create(actor pkg.Actor, projectID uint64, body string) (*model.Comment, error) {
	if err := actor.Require(pkg.Authenticated, 0); err != nil {
		return nil, err
	}

	errs := pkg.RunChecks(
		pkg.FieldCheck{Field: "body", Check: func() string { return pkg.CheckCommentBody(body) }},
	)
	if errs.Has() {
		return nil, errs
	}

	if _, err := s.projects.FindByID(projectID); err != nil {
		return nil, err
	}

	userID := actor.UserID
	c := &model.Comment{
		ProjectID: projectID,
		UserID:    &userID,
		Body:      body,
	}
	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) List(projectID uint64) ([]model.Comment, error) {
	if _, err := s.projects.FindByID(projectID); err != nil {
		return nil, err
	}
	return s.repo.ListByProject(projectID)
}

func (s *CommentService) Get(id uint64) (*model.Comment, error) {
	return s.repo.FindByID(id)
}

func (s *CommentService) Delete(actor pkg.Actor, id uint64) (*model.Comment, error) {
	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	var owner uint64
	if c.UserID != nil {
		owner = *c.UserID
	}
	if err = actor.Require(pkg.OwnerOrAdmin, owner); err != nil {
		return nil, err
	}
	if err = s.repo.Delete(id); err != nil {
		return nil, err
	}
	return c, nil
}
