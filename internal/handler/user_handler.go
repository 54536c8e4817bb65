package handler

import (
	"net/http"

	"crowdfunding/internal/middleware"
	"crowdfunding/internal/pkg"
	"crowdfunding/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
}

// RegisterReq 注册请求体
type RegisterReq struct {
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password"`
	MobilePhone     string `json:"mobile_phone"`
	ProfilePicture  string `json:"profile_picture"`
}

type ResendReq struct {
	Email string `json:"email" binding:"required,email"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type DeleteAccountReq struct {
	CurrentPassword string `json:"current_password" binding:"required"`
}

func NewUserHandler(smtp pkg.SMTPConfig, frontendURL string) *UserHandler {
	return &UserHandler{
		svc: service.NewUserService(smtp, frontendURL),
	}
}

// Register 注册接口，成功后发送激活邮件
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	err := h.svc.Register(service.RegisterInput{
		Username:        req.Username,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		MobilePhone:     req.MobilePhone,
		ProfilePicture:  req.ProfilePicture,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "User registered successfully. Please check your email to activate your account."})
}

// Activate 点击邮件里的激活链接
func (h *UserHandler) Activate(c *gin.Context) {
	token := c.Param("token")
	if err := h.svc.Activate(token); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Account activated successfully. You can now login."})
}

// ResendActivation 邮箱不存在时同样返回 200，不暴露账号是否存在
func (h *UserHandler) ResendActivation(c *gin.Context) {
	var req ResendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	msg, err := h.svc.ResendActivation(req.Email)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": msg})
}

// Login 签发令牌对
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	pair, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": pair.AccessToken, "refresh_token": pair.RefreshToken})
}

// TokenRefresh 利用refresh来更新access
func (h *UserHandler) TokenRefresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	pair, err := h.svc.Refresh(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": pair.AccessToken, "refresh_token": pair.RefreshToken})
}

func (h *UserHandler) Logout(c *gin.Context) {
	actor := middleware.Actor(c)
	if err := h.svc.Logout(actor.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// DeleteAccount 注销账号，要求提供当前密码
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	var req DeleteAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	actor := middleware.Actor(c)
	if err := h.svc.DeleteAccount(actor.UserID, req.CurrentPassword); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "account deleted"})
}
