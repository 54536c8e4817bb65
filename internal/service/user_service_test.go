package service

import (
	"testing"
	"time"

	"crowdfunding/internal/pkg"
	"crowdfunding/internal/repository/mysql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type stubMailer struct {
	to      []string
	subject string
	body    string
	err     error
}

func (m *stubMailer) Send(to, subject, htmlBody string) error {
	m.to = append(m.to, to)
	m.subject = subject
	m.body = htmlBody
	return m.err
}

func newTestUserService(t *testing.T) (*UserService, sqlmock.Sqlmock, *stubMailer) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	mailer := &stubMailer{}
	svc := &UserService{
		repo:        &mysql.UserRepository{DB: gdb},
		tokens:      &mysql.ActivationTokenRepository{DB: gdb},
		mail:        mailer,
		frontendURL: "http://localhost:3000",
	}
	return svc, mock, mailer
}

func TestRegisterValidationCollectsAllErrors(t *testing.T) {
	svc, mock, mailer := newTestUserService(t)

	err := svc.Register(RegisterInput{
		Username:        "donor",
		FirstName:       "A",
		LastName:        "B",
		Email:           "donor@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret124",
		MobilePhone:     "12345",
	})
	require.Error(t, err)

	var fieldErrs pkg.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2) // 手机号 + 密码确认

	// 校验失败前不允许有任何写入和邮件
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, mailer.to)
}

func TestRegisterCreatesInactiveUserAndSendsActivation(t *testing.T) {
	svc, mock, mailer := newTestUserService(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `activation_tokens`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := svc.Register(RegisterInput{
		Username:        "donor",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "donor@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		MobilePhone:     "01012345678",
	})
	require.NoError(t, err)

	require.Equal(t, []string{"donor@example.com"}, mailer.to)
	assert.Equal(t, "Activate Your Account", mailer.subject)
	assert.Contains(t, mailer.body, "http://localhost:3000/activate/")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivateUnknownTokenIsInvalid(t *testing.T) {
	svc, mock, _ := newTestUserService(t)

	mock.ExpectQuery("SELECT \\* FROM `activation_tokens`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "created_at"}))

	err := svc.Activate("no-such-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivateExpiredTokenLeavesUserInactive(t *testing.T) {
	svc, mock, _ := newTestUserService(t)

	mock.ExpectQuery("SELECT \\* FROM `activation_tokens`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "created_at"}).
			AddRow(1, 7, "tok", time.Now().Add(-25*time.Hour)))

	err := svc.Activate("tok")
	assert.ErrorIs(t, err, ErrExpiredToken)
	// 没有后续的用户更新或令牌删除
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivateValidTokenOnce(t *testing.T) {
	svc, mock, _ := newTestUserService(t)

	mock.ExpectQuery("SELECT \\* FROM `activation_tokens`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "created_at"}).
			AddRow(1, 7, "tok", time.Now().Add(-time.Hour)))
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "is_active"}).
			AddRow(7, "donor@example.com", false))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `activation_tokens`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Activate("tok"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResendUnknownEmailIsMasked(t *testing.T) {
	svc, mock, mailer := newTestUserService(t)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "is_active"}))

	msg, err := svc.ResendActivation("ghost@example.com")
	require.NoError(t, err)
	assert.Equal(t, ResendMaskedMessage, msg)
	assert.Empty(t, mailer.to)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResendAlreadyActive(t *testing.T) {
	svc, mock, _ := newTestUserService(t)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "is_active"}).
			AddRow(7, "donor@example.com", true))

	_, err := svc.ResendActivation("donor@example.com")
	assert.ErrorIs(t, err, ErrAlreadyActive)
}

func TestResendReplacesTokenForInactiveUser(t *testing.T) {
	svc, mock, mailer := newTestUserService(t)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "first_name", "is_active"}).
			AddRow(7, "donor@example.com", "Ada", false))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `activation_tokens`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `activation_tokens`").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	msg, err := svc.ResendActivation("donor@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, ResendMaskedMessage, msg)
	assert.Equal(t, []string{"donor@example.com"}, mailer.to)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginBeforeActivationFails(t *testing.T) {
	svc, mock, _ := newTestUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "is_active"}).
			AddRow(7, "donor@example.com", string(hash), false))

	_, err = svc.Login("donor@example.com", "secret123")
	assert.ErrorIs(t, err, ErrNotActivated)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock, _ := newTestUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "is_active"}).
			AddRow(7, "donor@example.com", string(hash), true))

	_, err = svc.Login("donor@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}
