package handler

import (
	"errors"
	"net/http"
	"strconv"

	"crowdfunding/internal/pkg"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

// fail 按错误类别映射状态码：字段错误 400、无权限 403、缺记录 404
func fail(c *gin.Context, err error) {
	var fieldErrs pkg.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
	case errors.Is(err, pkg.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	}
}

func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := parseUint(c.Param(name))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid " + name})
		return 0, false
	}
	return id, true
}
