package service

import (
	"crowdfunding/internal/model"
	"crowdfunding/internal/pkg"
	"crowdfunding/internal/repository/mysql"
)

type CategoryService struct {
	repo *mysql.CategoryRepository
}

func NewCategoryService() *CategoryService {
	return &CategoryService{repo: &mysql.CategoryRepository{}}
}

// Create 分类仅管理员可建
func (s *CategoryService) Create(actor pkg.Actor, title, description string) (*model.Category, error) {
	if err := actor.Require(pkg.AdminOnly, 0); err != nil {
		return nil, err
	}

	errs := pkg.RunChecks(
		pkg.FieldCheck{Field: "title", Check: func() string { return pkg.CheckTitle(title) }},
		pkg.FieldCheck{Field: "description", Check: func() string { return pkg.CheckDetails(description) }},
	)
	if errs.Has() {
		return nil, errs
	}

	c := &model.Category{Title: title, Description: description}
	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) List() ([]model.Category, error) {
	return s.repo.List()
}
