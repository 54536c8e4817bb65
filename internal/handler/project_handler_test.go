package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crowdfunding/internal/middleware"
	"crowdfunding/internal/repository/mysql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupProjectRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	old := mysql.DB
	mysql.DB = gdb
	t.Cleanup(func() { mysql.DB = old })

	h := NewProjectHandler()
	asOwner := func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, uint64(9))
		c.Set(middleware.ContextIsStaffKey, false)
	}

	r := gin.New()
	r.PUT("/api/projects/:id/", asOwner, h.Put)
	r.PATCH("/api/projects/:id/", asOwner, h.Patch)
	return r, mock
}

func TestPutRejectsPartialBody(t *testing.T) {
	r, mock := setupProjectRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/projects/1/", strings.NewReader(`{"title":"only a title"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// 绑定阶段就拒绝，数据库不应被触达
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchKeepsMissingFields(t *testing.T) {
	r, mock := setupProjectRouter(t)

	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(24 * time.Hour)
	mock.ExpectQuery("SELECT \\* FROM `projects`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "details", "total_target", "start_time", "end_time", "user_id", "category_id"}).
			AddRow(1, "old title", strings.Repeat("d", 30), 1000.0, start, end, 9, 2))
	mock.ExpectQuery("SELECT \\* FROM `project_images`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id"}))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `projects` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/projects/1/", strings.NewReader(`{"title":"fresh title"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fresh title")
	assert.NoError(t, mock.ExpectationsWereMet())
}
