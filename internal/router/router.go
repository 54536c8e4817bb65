package router

import (
	"crowdfunding/internal/handler"
	"crowdfunding/internal/middleware"
	"crowdfunding/internal/pkg"

	"github.com/gin-gonic/gin"
)

type Config struct {
	SMTP        pkg.SMTPConfig
	FrontendURL string
}

func InitRouter(cfg Config) *gin.Engine {
	r := gin.Default()

	user := handler.NewUserHandler(cfg.SMTP, cfg.FrontendURL)
	project := handler.NewProjectHandler()
	category := handler.NewCategoryHandler()
	donation := handler.NewDonationHandler()
	rating := handler.NewRatingHandler()
	comment := handler.NewCommentHandler()
	report := handler.NewReportHandler()

	// 账号相关接口
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register/", user.Register)
		authGroup.GET("/activate/:token/", user.Activate)
		authGroup.POST("/resend-activation/", user.ResendActivation)
		authGroup.POST("/token/", user.Login)
		authGroup.POST("/token/refresh/", user.TokenRefresh)
	}

	// 登录态账号接口
	authedGroup := r.Group("/api/auth")
	authedGroup.Use(middleware.AuthMiddleware())
	{
		authedGroup.POST("/logout", user.Logout)
		authedGroup.DELETE("/users/delete", user.DeleteAccount)
	}

	// 项目公开接口，带可选登录态（管理员看全集）
	publicProjects := r.Group("/api")
	publicProjects.Use(middleware.OptionalAuth())
	{
		publicProjects.GET("/projects/", project.List)
		publicProjects.GET("/projects/:id/", project.Get)
		publicProjects.GET("/projects/:id/comments", comment.List)
		publicProjects.GET("/projects/:id/ratings", rating.List)
		publicProjects.GET("/projects/:id/donations", donation.List)
		publicProjects.GET("/projects/images/:id", project.GetImage)
		publicProjects.GET("/projects/ratings/:id", rating.Get)
		publicProjects.GET("/projects/donations/:id", donation.Get)
		publicProjects.GET("/comments/:id", comment.Get)
		publicProjects.GET("/category", category.List)
	}

	// 项目写接口
	projectGroup := r.Group("/api")
	projectGroup.Use(middleware.AuthMiddleware())
	{
		projectGroup.POST("/projects/", project.Create)
		projectGroup.PUT("/projects/:id/", project.Put)
		projectGroup.PATCH("/projects/:id/", project.Patch)
		projectGroup.PATCH("/projects/:id/cancel", project.Cancel)
		projectGroup.POST("/projects/:id/images/", project.AddImage)
		projectGroup.DELETE("/projects/images/:id", project.DeleteImage)
		projectGroup.POST("/projects/:id/comments", comment.Create)
		projectGroup.POST("/projects/:id/ratings", rating.Create)
		projectGroup.POST("/projects/:id/donations", donation.Donate)
		projectGroup.POST("/projects/:id/reports", report.ReportProject)
		projectGroup.POST("/comments/:id/reports", report.ReportComment)
		projectGroup.DELETE("/projects/ratings/:id", rating.Delete)
		projectGroup.DELETE("/comments/:id", comment.Delete)
	}

	// 管理员接口
	adminGroup := r.Group("/api")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		adminGroup.DELETE("/projects/:id/", project.Delete)
		adminGroup.PATCH("/projects/:id/featured", project.Feature)
		adminGroup.PATCH("/projects/:id/accept", project.Accept)
		adminGroup.GET("/projects/:id/reports", report.ListProjectReports)
		adminGroup.GET("/comments/reports", report.ListCommentReports)
		adminGroup.DELETE("/projects/reports/:id", report.DeleteProjectReport)
		adminGroup.DELETE("/comments/reports/:id", report.DeleteCommentReport)
		adminGroup.POST("/category", category.Create)
	}

	return r
}
