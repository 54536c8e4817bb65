package service

import (
	"crowdfunding/internal/model"
	"crowdfunding/internal/pkg"
	"crowdfunding/internal/repository/mysql"
)

type RatingService struct {
	repo     *mysql.RatingRepository
	projects *mysql.ProjectRepository
}

func NewRatingService() *RatingService {
	return &RatingService{
		repo:     &mysql.RatingRepository{},
		projects: &mysql.ProjectRepository{},
	}
}

func (s *RatingService) Rate(actor pkg.Actor, projectID uint64, rate float64, detail string) (*model.Rating, error) {
	if err := actor.Require(pkg.Authenticated, 0); err != nil {
		return nil, err
	}

	errs := pkg.RunChecks(
		pkg.FieldCheck{Field: "rate", Check: func() string { return pkg.CheckRate(rate) }},
	)
	if errs.Has() {
		return nil, errs
	}

	if _, err := s.projects.FindByID(projectID); err != nil {
		return nil, err
	}

	userID := actor.UserID
	r := &model.Rating{
		ProjectID: projectID,
		UserID:    &userID,
		Rate:      rate,
		Detail:    detail,
	}
	if err := s.repo.Create(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RatingService) List(projectID uint64) ([]model.Rating, error) {
	if _, err := s.projects.FindByID(projectID); err != nil {
		return nil, err
	}
	return s.repo.ListByProject(projectID)
}

func (s *RatingService) Get(id uint64) (*model.Rating, error) {
	return s.repo.FindByID(id)
}

func (s *RatingService) Delete(actor pkg.Actor, id uint64) (*model.Rating, error) {
	r, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	var owner uint64
	if r.UserID != nil {
		owner = *r.UserID
	}
	if err = actor.Require(pkg.OwnerOrAdmin, owner); err != nil {
		return nil, err
	}
	if err = s.repo.Delete(id); err != nil {
		return nil, err
	}
	return r, nil
}
