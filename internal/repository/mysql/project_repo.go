package mysql

import (
	"math"
	"strconv"
	"strings"

	"crowdfunding/internal/model"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	DB *gorm.DB
}

func (r *ProjectRepository) db() *gorm.DB {
	if r.DB != nil {
		return r.DB
	}
	return DB
}

// ProjectFilter 列表查询参数，全部来自 query string，保持原始字符串按需解析
type ProjectFilter struct {
	Featured string
	Category string
	Tags     string
	UserID   string
	Limit    string
	IsTop    string
	Latest   string
	Search   string
	Staff    bool // 请求者是否管理员
}

const topRatedLimit = 5

// Filter 过滤管线，步骤顺序不可调整：
// 基础集 -> featured -> category -> tags -> search -> latest/limit -> is_top 兜底覆盖
func (r *ProjectRepository) Filter(f ProjectFilter) ([]model.Project, error) {
	// is_top 最终会丢弃前面所有过滤结果，直接短路
	if f.IsTop == "true" {
		return r.TopRated(topRatedLimit)
	}

	q := r.db().Model(&model.Project{})

	// 基础集：管理员看全部；指定 user_id 时看该用户全部；否则只看已接受且活跃的
	switch {
	case f.Staff:
	case f.UserID != "":
		q = q.Where("user_id = ?", f.UserID)
	default:
		q = q.Where("is_accepted = ? AND is_active = ?", true, true)
	}

	if f.Featured == "true" {
		q = q.Where("is_featured = ?", true)
	}

	if f.Category != "" {
		id, err := strconv.Atoi(f.Category)
		if err != nil {
			// 解析失败不报错，直接空结果
			return []model.Project{}, nil
		}
		q = q.Where("category_id = ?", id)
	}

	if f.Tags != "" {
		var conds []string
		var args []any
		for _, tag := range strings.Split(f.Tags, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			conds = append(conds, "tags LIKE ?")
			args = append(args, "%"+tag+"%")
		}
		if len(conds) > 0 {
			q = q.Where(strings.Join(conds, " OR "), args...)
		}
	}

	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(details) LIKE ?", like, like)
	}

	if f.Latest == "true" {
		limit := 5
		if n, err := strconv.Atoi(f.Limit); err == nil {
			limit = n
		}
		q = q.Order("created_at DESC").Limit(limit)
	} else if f.Limit != "" {
		// 解析失败静默忽略
		if n, err := strconv.Atoi(f.Limit); err == nil {
			q = q.Limit(n)
		}
	}

	var list []model.Project
	err := q.Find(&list).Error
	return list, err
}

// TopRated 平均分最高的前 n 个项目，无视其它过滤条件
func (r *ProjectRepository) TopRated(n int) ([]model.Project, error) {
	var list []model.Project
	err := r.db().Model(&model.Project{}).
		Select("projects.*").
		Joins("LEFT JOIN ratings ON ratings.project_id = projects.id").
		Group("projects.id").
		Order("COALESCE(AVG(ratings.rate), 0) DESC").
		Limit(n).
		Find(&list).Error
	return list, err
}

func (r *ProjectRepository) Create(p *model.Project) error {
	return r.db().Create(p).Error
}

func (r *ProjectRepository) FindByID(id uint64) (*model.Project, error) {
	var p model.Project
	err := r.db().Preload("Images").First(&p, id).Error
	return &p, err
}

// FindActiveByID 详情页只允许访问活跃项目
func (r *ProjectRepository) FindActiveByID(id uint64) (*model.Project, error) {
	var p model.Project
	err := r.db().Preload("Images").First(&p, "id = ? AND is_active = ?", id, true).Error
	return &p, err
}

func (r *ProjectRepository) Save(p *model.Project) error {
	return r.db().Save(p).Error
}

func (r *ProjectRepository) Updates(p *model.Project, fields map[string]any) error {
	return r.db().Model(p).Updates(fields).Error
}

func (r *ProjectRepository) Delete(id uint64) error {
	return r.db().Delete(&model.Project{}, id).Error
}

// Aggregates 项目的按需统计值，均不落库
type Aggregates struct {
	AverageRating  float64  `json:"rating"`
	TotalDonations *float64 `json:"total_donations"` // 无捐款时为 null
	DonorCount     int64    `json:"donor_count"`
	RaterCount     int64    `json:"rater_count"`
}

func (r *ProjectRepository) ProjectAggregates(projectID uint64) (*Aggregates, error) {
	var agg Aggregates

	var avg *float64
	err := r.db().Model(&model.Rating{}).
		Select("AVG(rate)").
		Where("project_id = ?", projectID).
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if avg != nil {
		agg.AverageRating = RoundRating(*avg)
	}

	err = r.db().Model(&model.Donation{}).
		Select("SUM(amount)").
		Where("project_id = ?", projectID).
		Scan(&agg.TotalDonations).Error
	if err != nil {
		return nil, err
	}

	err = r.db().Model(&model.Donation{}).
		Where("project_id = ?", projectID).
		Distinct("user_id").
		Count(&agg.DonorCount).Error
	if err != nil {
		return nil, err
	}

	err = r.db().Model(&model.Rating{}).
		Where("project_id = ?", projectID).
		Count(&agg.RaterCount).Error
	if err != nil {
		return nil, err
	}

	return &agg, nil
}

// TotalDonations 取消校验等单独用到捐款总额的地方
func (r *ProjectRepository) TotalDonations(projectID uint64) (*float64, error) {
	var sum *float64
	err := r.db().Model(&model.Donation{}).
		Select("SUM(amount)").
		Where("project_id = ?", projectID).
		Scan(&sum).Error
	return sum, err
}

// Statistics 平台汇总，每次请求现算
type Statistics struct {
	TotalMoneyRaised    float64 `json:"total_money_raised"`
	TotalActiveProjects int64   `json:"total_active_projects"`
	TotalFeatured       int64   `json:"total_featured"`
}

func (r *ProjectRepository) Statistics() (*Statistics, error) {
	var s Statistics

	err := r.db().Model(&model.Donation{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&s.TotalMoneyRaised).Error
	if err != nil {
		return nil, err
	}

	err = r.db().Model(&model.Project{}).
		Where("is_active = ?", true).
		Count(&s.TotalActiveProjects).Error
	if err != nil {
		return nil, err
	}

	err = r.db().Model(&model.Project{}).
		Where("is_featured = ?", true).
		Count(&s.TotalFeatured).Error
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// RoundRating 平均分保留一位小数，无评分时为 0.0
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
