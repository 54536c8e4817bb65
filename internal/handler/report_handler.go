package handler

import (
	"net/http"
	"strconv"

	"crowdfunding/internal/middleware"
	"crowdfunding/internal/pkg"
	"crowdfunding/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	svc *service.ReportService
}

type ReportReq struct {
	Details string `json:"details"`
}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{svc: service.NewReportService()}
}

func (h *ReportHandler) ReportProject(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	rep, err := h.svc.ReportProject(middleware.Actor(c), projectID, req.Details)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, rep)
}

// ListProjectReports 举报列表仅管理员
func (h *ReportHandler) ListProjectReports(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.ListProjectReports(middleware.Actor(c), projectID)
	if err != nil {
		fail(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	envelope := pkg.Paginate(c.Request.URL, page, len(list), func(offset, limit int) any {
		return list[offset : offset+limit]
	})
	c.JSON(http.StatusOK, envelope)
}

func (h *ReportHandler) DeleteProjectReport(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteProjectReport(middleware.Actor(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}

func (h *ReportHandler) ReportComment(c *gin.Context) {
	commentID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	rep, err := h.svc.ReportComment(middleware.Actor(c), commentID, req.Details)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, rep)
}

func (h *ReportHandler) ListCommentReports(c *gin.Context) {
	list, err := h.svc.ListCommentReports(middleware.Actor(c))
	if err != nil {
		fail(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	envelope := pkg.Paginate(c.Request.URL, page, len(list), func(offset, limit int) any {
		return list[offset : offset+limit]
	})
	c.JSON(http.StatusOK, envelope)
}

func (h *ReportHandler) DeleteCommentReport(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteCommentReport(middleware.Actor(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}
