package service

import (
	"errors"
	"strings"
	"time"

	"crowdfunding/internal/model"
	"crowdfunding/internal/pkg"
	"crowdfunding/internal/repository/mysql"
)

var ErrCancelThreshold = errors.New("cannot cancel project that has reached 25% or more of its funding goal")

type ProjectService struct {
	repo   *mysql.ProjectRepository
	images *mysql.ProjectImageRepository
	cats   *mysql.CategoryRepository
}

func NewProjectService() *ProjectService {
	return &ProjectService{
		repo:   &mysql.ProjectRepository{},
		images: &mysql.ProjectImageRepository{},
		cats:   &mysql.CategoryRepository{},
	}
}

type ProjectInput struct {
	Title       string
	Details     string
	TotalTarget float64
	StartTime   time.Time
	EndTime     time.Time
	CategoryID  uint64
	Tags        []string
	Thumbnail   string
}

// ProjectUpdate 部分更新，nil 字段不动
type ProjectUpdate struct {
	Title       *string
	Details     *string
	TotalTarget *float64
	StartTime   *time.Time
	EndTime     *time.Time
	CategoryID  *uint64
	Tags        *[]string
	Thumbnail   *string
}

func validateProjectFields(title, details string, target float64, start, end time.Time, creating bool) pkg.FieldErrors {
	return pkg.RunChecks(
		pkg.FieldCheck{Field: "title", Check: func() string { return pkg.CheckTitle(title) }},
		pkg.FieldCheck{Field: "details", Check: func() string { return pkg.CheckDetails(details) }},
		pkg.FieldCheck{Field: "total_target", Check: func() string { return pkg.CheckTarget(target) }},
		pkg.FieldCheck{Field: "start_time", Check: func() string { return pkg.CheckProjectTimes(start, end, creating) }},
	)
}

func (s *ProjectService) Create(actor pkg.Actor, in ProjectInput) (*model.Project, error) {
	if err := actor.Require(pkg.Authenticated, 0); err != nil {
		return nil, err
	}

	if errs := validateProjectFields(in.Title, in.Details, in.TotalTarget, in.StartTime, in.EndTime, true); errs.Has() {
		return nil, errs
	}

	if _, err := s.cats.FindByID(in.CategoryID); err != nil {
		return nil, err
	}

	p := &model.Project{
		Title:       in.Title,
		Details:     in.Details,
		TotalTarget: in.TotalTarget,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		UserID:      actor.UserID,
		CategoryID:  in.CategoryID,
		Tags:        strings.Join(in.Tags, ","),
		Thumbnail:   in.Thumbnail,
		IsActive:    true,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// List 过滤+分页列表，平台统计随响应每次现算
func (s *ProjectService) List(f mysql.ProjectFilter) ([]model.Project, *mysql.Statistics, error) {
	list, err := s.repo.Filter(f)
	if err != nil {
		return nil, nil, err
	}
	stats, err := s.repo.Statistics()
	if err != nil {
		return nil, nil, err
	}
	return list, stats, nil
}

// Get 详情页只返回活跃项目
func (s *ProjectService) Get(id uint64) (*model.Project, *mysql.Aggregates, error) {
	p, err := s.repo.FindActiveByID(id)
	if err != nil {
		return nil, nil, err
	}
	agg, err := s.repo.ProjectAggregates(id)
	if err != nil {
		return nil, nil, err
	}
	return p, agg, nil
}

func (s *ProjectService) Update(actor pkg.Actor, id uint64, upd ProjectUpdate) (*model.Project, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err = actor.Require(pkg.OwnerOrAdmin, p.UserID); err != nil {
		return nil, err
	}

	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Details != nil {
		p.Details = *upd.Details
	}
	if upd.TotalTarget != nil {
		p.TotalTarget = *upd.TotalTarget
	}
	if upd.StartTime != nil {
		p.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		p.EndTime = *upd.EndTime
	}
	if upd.CategoryID != nil {
		if _, err = s.cats.FindByID(*upd.CategoryID); err != nil {
			return nil, err
		}
		p.CategoryID = *upd.CategoryID
	}
	if upd.Tags != nil {
		p.Tags = strings.Join(*upd.Tags, ",")
	}
	if upd.Thumbnail != nil {
		p.Thumbnail = *upd.Thumbnail
	}

	if errs := validateProjectFields(p.Title, p.Details, p.TotalTarget, p.StartTime, p.EndTime, false); errs.Has() {
		return nil, errs
	}

	if err = s.repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete 硬删除，仅管理员
func (s *ProjectService) Delete(actor pkg.Actor, id uint64) (*model.Project, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err = actor.Require(pkg.AdminOnly, 0); err != nil {
		return nil, err
	}
	if err = s.repo.Delete(id); err != nil {
		return nil, err
	}
	return p, nil
}

// CanBeCanceled 募集额低于目标 25% 才允许取消；没有捐款时恒为 true。
// 这里不加行锁，与并发捐款之间存在竞态，属当前既定行为。
func CanBeCanceled(raised *float64, target float64) bool {
	if raised == nil {
		return true
	}
	return *raised < target*0.25
}

// Cancel 软下架项目
func (s *ProjectService) Cancel(actor pkg.Actor, id uint64) (*model.Project, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err = actor.Require(pkg.OwnerOrAdmin, p.UserID); err != nil {
		return nil, err
	}

	raised, err := s.repo.TotalDonations(id)
	if err != nil {
		return nil, err
	}
	if !CanBeCanceled(raised, p.TotalTarget) {
		return nil, ErrCancelThreshold
	}

	if err = s.repo.Updates(p, map[string]any{"is_active": false}); err != nil {
		return nil, err
	}
	return p, nil
}

// SetFeatured 管理员推荐位开关
func (s *ProjectService) SetFeatured(actor pkg.Actor, id uint64, featured bool) (*model.Project, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err = actor.Require(pkg.AdminOnly, 0); err != nil {
		return nil, err
	}
	if err = s.repo.Updates(p, map[string]any{"is_featured": featured}); err != nil {
		return nil, err
	}
	return p, nil
}

// SetAccepted 管理员审核项目上架
func (s *ProjectService) SetAccepted(actor pkg.Actor, id uint64, accepted bool) (*model.Project, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err = actor.Require(pkg.AdminOnly, 0); err != nil {
		return nil, err
	}
	if err = s.repo.Updates(p, map[string]any{"is_accepted": accepted}); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) AddImage(actor pkg.Actor, projectID uint64, image, title string) (*model.ProjectImage, error) {
	p, err := s.repo.FindByID(projectID)
	if err != nil {
		return nil, err
	}
	if err = actor.Require(pkg.OwnerOrAdmin, p.UserID); err != nil {
		return nil, err
	}

	img := &model.ProjectImage{ProjectID: projectID, Image: image, Title: title}
	if err = s.images.Create(img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *ProjectService) GetImage(id uint64) (*model.ProjectImage, error) {
	return s.images.FindByID(id)
}

func (s *ProjectService) DeleteImage(actor pkg.Actor, id uint64) error {
	img, err := s.images.FindByID(id)
	if err != nil {
		return err
	}
	p, err := s.repo.FindByID(img.ProjectID)
	if err != nil {
		return err
	}
	if err = actor.Require(pkg.OwnerOrAdmin, p.UserID); err != nil {
		return err
	}
	return s.images.Delete(id)
}

// Aggregates 列表序列化时逐项目取统计值
func (s *ProjectService) Aggregates(projectID uint64) (*mysql.Aggregates, error) {
	return s.repo.ProjectAggregates(projectID)
}
