package service

import (
	"context"
	"errors"
	"testing"

	"crowdfunding/internal/model"
	"crowdfunding/internal/repository/mysql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestRelayer(t *testing.T, sender Sender) (*OutboxRelayer, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: gdb},
		batchSize: 10,
		maxRetry:  3,
		sender:    sender,
	}, mock
}

func TestRelayerMarksSentOnDelivery(t *testing.T) {
	var delivered []uint64
	relayer, mock := newTestRelayer(t, func(ctx context.Context, ob *model.DonationOutbox) error {
		delivered = append(delivered, ob.ID)
		return nil
	})

	mock.ExpectQuery("SELECT \\* FROM `donation_outbox` WHERE status = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_type", "project_id", "donation_id", "payload", "status"}).
			AddRow(1, "donate", 3, 11, `{"amount":50}`, 0))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `donation_outbox` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	relayer.drainOnce(context.Background())

	assert.Equal(t, []uint64{1}, delivered)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelayerMarksRetryOnFailure(t *testing.T) {
	relayer, mock := newTestRelayer(t, func(ctx context.Context, ob *model.DonationOutbox) error {
		return errors.New("broker down")
	})

	mock.ExpectQuery("SELECT \\* FROM `donation_outbox` WHERE status = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_type", "project_id", "donation_id", "payload", "status"}).
			AddRow(1, "donate", 3, 11, `{"amount":50}`, 0))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `donation_outbox` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	relayer.drainOnce(context.Background())
	assert.NoError(t, mock.ExpectationsWereMet())
}
