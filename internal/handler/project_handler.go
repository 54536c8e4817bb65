package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"crowdfunding/internal/middleware"
	"crowdfunding/internal/model"
	"crowdfunding/internal/pkg"
	"crowdfunding/internal/repository/mysql"
	"crowdfunding/internal/service"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	svc *service.ProjectService
}

type ProjectCreateReq struct {
	Title       string    `json:"title"`
	Details     string    `json:"details"`
	TotalTarget float64   `json:"total_target"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	CategoryID  uint64    `json:"category"`
	Tags        []string  `json:"tags"`
	Thumbnail   string    `json:"thumbnail"`
}

// ProjectReplaceReq PUT 全量替换，字段必填
type ProjectReplaceReq struct {
	Title       string    `json:"title" binding:"required"`
	Details     string    `json:"details" binding:"required"`
	TotalTarget float64   `json:"total_target" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	CategoryID  uint64    `json:"category" binding:"required"`
	Tags        []string  `json:"tags"`
	Thumbnail   string    `json:"thumbnail"`
}

// ProjectUpdateReq PATCH 部分更新，缺省字段保持不变
type ProjectUpdateReq struct {
	Title       *string    `json:"title"`
	Details     *string    `json:"details"`
	TotalTarget *float64   `json:"total_target"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	CategoryID  *uint64    `json:"category"`
	Tags        *[]string  `json:"tags"`
	Thumbnail   *string    `json:"thumbnail"`
}

type ImageCreateReq struct {
	Image string `json:"image" binding:"required"`
	Title string `json:"title"`
}

func NewProjectHandler() *ProjectHandler {
	return &ProjectHandler{
		svc: service.NewProjectService(),
	}
}

// view 列表/详情的序列化形式，统计值按需现算
func (h *ProjectHandler) view(p *model.Project, agg *mysql.Aggregates) gin.H {
	var tags []string
	if p.Tags != "" {
		tags = strings.Split(p.Tags, ",")
	}
	v := gin.H{
		"id":           p.ID,
		"title":        p.Title,
		"details":      p.Details,
		"total_target": p.TotalTarget,
		"start_time":   p.StartTime,
		"end_time":     p.EndTime,
		"user":         p.UserID,
		"category":     p.CategoryID,
		"tags":         tags,
		"is_active":    p.IsActive,
		"is_accepted":  p.IsAccepted,
		"is_featured":  p.IsFeatured,
		"thumbnail":    p.Thumbnail,
		"created_at":   p.CreatedAt,
	}
	if agg != nil {
		v["rating"] = agg.AverageRating
		v["total_donations"] = agg.TotalDonations
		v["donor_count"] = agg.DonorCount
		v["rater_count"] = agg.RaterCount
	}
	if len(p.Images) > 0 {
		v["images"] = p.Images
	}
	return v
}

// List 项目列表：过滤参数见仓储层，分页固定每页3条，附带平台统计
func (h *ProjectHandler) List(c *gin.Context) {
	actor := middleware.Actor(c)

	filter := mysql.ProjectFilter{
		Featured: c.Query("is_featured"),
		Category: c.Query("category"),
		Tags:     c.Query("tags"),
		UserID:   c.Query("user_id"),
		Limit:    c.Query("limit"),
		IsTop:    c.Query("is_top"),
		Latest:   c.Query("latest"),
		Search:   c.Query("search"),
		Staff:    actor.IsStaff,
	}

	list, stats, err := h.svc.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	envelope := pkg.Paginate(c.Request.URL, page, len(list), func(offset, limit int) any {
		results := make([]gin.H, 0, limit)
		for i := offset; i < offset+limit; i++ {
			agg, err := h.svc.Aggregates(list[i].ID)
			if err != nil {
				agg = nil
			}
			results = append(results, h.view(&list[i], agg))
		}
		return results
	})

	c.JSON(http.StatusOK, gin.H{
		"count":      envelope.Count,
		"next":       envelope.Next,
		"previous":   envelope.Previous,
		"results":    envelope.Results,
		"statistics": stats,
	})
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	p, err := h.svc.Create(middleware.Actor(c), service.ProjectInput{
		Title:       req.Title,
		Details:     req.Details,
		TotalTarget: req.TotalTarget,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		CategoryID:  req.CategoryID,
		Tags:        req.Tags,
		Thumbnail:   req.Thumbnail,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.view(p, nil))
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, agg, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(p, agg))
}

func (h *ProjectHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ProjectUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	p, err := h.svc.Update(middleware.Actor(c), id, service.ProjectUpdate{
		Title:       req.Title,
		Details:     req.Details,
		TotalTarget: req.TotalTarget,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		CategoryID:  req.CategoryID,
		Tags:        req.Tags,
		Thumbnail:   req.Thumbnail,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(p, nil))
}

// Put 全量更新，缺字段直接拒绝；部分更新走 Patch
func (h *ProjectHandler) Put(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ProjectReplaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	p, err := h.svc.Update(middleware.Actor(c), id, service.ProjectUpdate{
		Title:       &req.Title,
		Details:     &req.Details,
		TotalTarget: &req.TotalTarget,
		StartTime:   &req.StartTime,
		EndTime:     &req.EndTime,
		CategoryID:  &req.CategoryID,
		Tags:        &req.Tags,
		Thumbnail:   &req.Thumbnail,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(p, nil))
}

func (h *ProjectHandler) Patch(c *gin.Context) { h.update(c) }

// Delete 管理员硬删除，返回被删项目快照
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.Delete(middleware.Actor(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(p, nil))
}

// Cancel 募集未达25%时项目方可下架
func (h *ProjectHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.Cancel(middleware.Actor(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(p, nil))
}

type featureReq struct {
	IsFeatured bool `json:"is_featured"`
}

func (h *ProjectHandler) Feature(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req featureReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	p, err := h.svc.SetFeatured(middleware.Actor(c), id, req.IsFeatured)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(p, nil))
}

type acceptReq struct {
	IsAccepted bool `json:"is_accepted"`
}

func (h *ProjectHandler) Accept(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req acceptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	p, err := h.svc.SetAccepted(middleware.Actor(c), id, req.IsAccepted)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(p, nil))
}

func (h *ProjectHandler) AddImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ImageCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	img, err := h.svc.AddImage(middleware.Actor(c), id, req.Image, req.Title)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, img)
}

func (h *ProjectHandler) GetImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	img, err := h.svc.GetImage(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, img)
}

func (h *ProjectHandler) DeleteImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteImage(middleware.Actor(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}
