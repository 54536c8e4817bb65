package handler

import (
	"net/http"
	"strconv"

	"crowdfunding/internal/middleware"
	"crowdfunding/internal/pkg"
	"crowdfunding/internal/service"

	"github.com/gin-gonic/gin"
)

type DonationHandler struct {
	svc *service.DonationService
}

type DonateReq struct {
	Amount float64 `json:"amount"`
}

func NewDonationHandler() *DonationHandler {
	return &DonationHandler{svc: service.NewDonationService()}
}

func (h *DonationHandler) Donate(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req DonateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	d, err := h.svc.Donate(middleware.Actor(c), projectID, req.Amount)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// List id 为 0 时返回全部捐款记录
func (h *DonationHandler) List(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}

	list, err := h.svc.List(projectID)
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

func (h *DonationHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	d, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
