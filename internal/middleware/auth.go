package middleware

import (
	"net/http"
	"strings"

	"crowdfunding/internal/pkg"
	"crowdfunding/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey  = "user_id"
	ContextIsStaffKey = "is_staff"
)

// Actor 从请求上下文还原身份，匿名请求返回零值
func Actor(c *gin.Context) pkg.Actor {
	var a pkg.Actor
	if v, ok := c.Get(ContextUserIDKey); ok {
		a.UserID = v.(uint64)
	}
	if v, ok := c.Get(ContextIsStaffKey); ok {
		a.IsStaff = v.(bool)
	}
	return a
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "missing or invalid authorization header"})
			c.Abort()
			return
		}

		claims, err := pkg.ParseAccess(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired token"})
			c.Abort()
			return
		}

		// redis校验是否是正确的token
		sessions := &redis.SessionRepository{}
		origin, err := sessions.Get(claims.UserID)
		if err != nil || origin != tokenStr {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Account has been logging elsewhere"})
			c.Abort()
			return
		}

		// 校验通过后更新过期时间
		if err = sessions.Extend(claims.UserID); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextIsStaffKey, claims.IsStaff)
		c.Next()
	}
}

// OptionalAuth 公开接口也能识别登录用户（管理员看项目全集）
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			c.Next()
			return
		}
		claims, err := pkg.ParseAccess(tokenStr)
		if err != nil {
			c.Next()
			return
		}
		sessions := &redis.SessionRepository{}
		if origin, err := sessions.Get(claims.UserID); err == nil && origin == tokenStr {
			c.Set(ContextUserIDKey, claims.UserID)
			c.Set(ContextIsStaffKey, claims.IsStaff)
		}
		c.Next()
	}
}

// RequireAdmin 管理员专用接口
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Actor(c).IsStaff {
			c.JSON(http.StatusForbidden, gin.H{"msg": "admin privilege required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
