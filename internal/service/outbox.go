package service

import (
	"context"
	"log"
	"time"

	"crowdfunding/internal/model"
	"crowdfunding/internal/pkg"
	"crowdfunding/internal/repository/mysql"
)

// Sender 事件投递出口
type Sender func(ctx context.Context, ob *model.DonationOutbox) error

// OutboxRelayer 周期性扫描捐款事件表并投递到 kafka
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	maxRetry  int
	sender    Sender
}

func NewOutboxRelayer(sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{},
		batchSize: 200,
		interval:  time.Second,
		maxRetry:  5,
		sender:    sender,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		log.Printf("outbox query err: %v", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.MarkRetry(ctx, ob.ID, r.maxRetry)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// KafkaSender 以项目ID为分区键投递捐款事件
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.DonationOutbox) error {
		return producer.Send(ctx, pkg.EventKey(ob.ProjectID), []byte(ob.Payload))
	}
}

// LogSender 本地开发用的占位投递
func LogSender(ctx context.Context, ob *model.DonationOutbox) error {
	log.Printf("OUTBOX SEND type=%s project=%d donation=%d payload=%s", ob.EventType, ob.ProjectID, ob.DonationID, ob.Payload)
	return nil
}
