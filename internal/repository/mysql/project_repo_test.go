package mysql

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func TestFilterUnparsableCategoryReturnsEmpty(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := &ProjectRepository{DB: gdb}

	list, err := repo.Filter(ProjectFilter{Category: "not-a-number"})
	require.NoError(t, err)
	assert.Empty(t, list)
	// 不应触达数据库
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterIsTopOverridesEverything(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := &ProjectRepository{DB: gdb}

	rows := sqlmock.NewRows([]string{"id", "title"})
	for i := 1; i <= 5; i++ {
		rows.AddRow(i, "p")
	}
	mock.ExpectQuery("SELECT projects\\.\\* FROM `projects` LEFT JOIN ratings").WillReturnRows(rows)

	// 其它过滤参数一概失效，包括解析不了的 category
	list, err := repo.Filter(ProjectFilter{
		IsTop:    "true",
		Category: "garbage",
		Featured: "true",
		Search:   "whatever",
	})
	require.NoError(t, err)
	assert.Len(t, list, 5)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterLatestDefaultsLimitToFive(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := &ProjectRepository{DB: gdb}

	mock.ExpectQuery("SELECT \\* FROM `projects` WHERE is_accepted = \\? AND is_active = \\? ORDER BY created_at DESC LIMIT \\?").
		WithArgs(true, true, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	// limit 解析失败回退为 5
	list, err := repo.Filter(ProjectFilter{Latest: "true", Limit: "oops"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterStaffSeesUnacceptedProjects(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := &ProjectRepository{DB: gdb}

	mock.ExpectQuery("SELECT \\* FROM `projects`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_accepted"}).AddRow(1, false).AddRow(2, true))

	list, err := repo.Filter(ProjectFilter{Staff: true})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterUserIDIgnoresAcceptance(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := &ProjectRepository{DB: gdb}

	mock.ExpectQuery("SELECT \\* FROM `projects` WHERE user_id = \\?").
		WithArgs("9").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	list, err := repo.Filter(ProjectFilter{UserID: "9"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectAggregatesDefaults(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := &ProjectRepository{DB: gdb}

	// 无评分、无捐款
	mock.ExpectQuery("SELECT AVG\\(rate\\) FROM `ratings`").
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))
	mock.ExpectQuery("SELECT SUM\\(amount\\) FROM `donations`").
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(nil))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	agg, err := repo.ProjectAggregates(1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, agg.AverageRating)
	assert.Nil(t, agg.TotalDonations)
	assert.Zero(t, agg.DonorCount)
	assert.Zero(t, agg.RaterCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoundRating(t *testing.T) {
	assert.Equal(t, 0.0, RoundRating(0))
	assert.Equal(t, 3.5, RoundRating(3.5))  // (3.0+4.0)/2
	assert.Equal(t, 3.3, RoundRating(3.333))
	assert.Equal(t, 4.3, RoundRating(4.25))
}
