package handler

import (
	"net/http"
	"strconv"

	"crowdfunding/internal/middleware"
	"crowdfunding/internal/pkg"
	"crowdfunding/internal/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	svc *service.RatingService
}

type RateReq struct {
	Rate   float64 `json:"rate"`
	Detail string  `json:"detail"`
}

func NewRatingHandler() *RatingHandler {
	return &RatingHandler{svc: service.NewRatingService()}
}

func (h *RatingHandler) Create(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req RateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	r, err := h.svc.Rate(middleware.Actor(c), projectID, req.Rate, req.Detail)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *RatingHandler) List(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
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

func (h *RatingHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	r, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *RatingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	r, err := h.svc.Delete(middleware.Actor(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}
