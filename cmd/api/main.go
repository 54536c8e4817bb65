package main

import (
	"context"
	"log"
	"os"
	"strings"

	"crowdfunding/internal/model"
	"crowdfunding/internal/pkg"
	"crowdfunding/internal/repository/mysql"
	"crowdfunding/internal/repository/redis"
	"crowdfunding/internal/router"
	"crowdfunding/internal/service"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	dsn := env("MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/crowdfunding?charset=utf8mb4&parseTime=True")
	if err := mysql.InitDB(dsn); err != nil {
		panic(err)
	}

	// 连接redis
	if err := redis.Init(env("REDIS_ADDR", "127.0.0.1:6379"), env("REDIS_PASSWORD", ""), 0); err != nil {
		panic(err)
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	mysql.DB.AutoMigrate(
		&model.User{},
		&model.ActivationToken{},
		&model.Category{},
		&model.Project{},
		&model.ProjectImage{},
		&model.Donation{},
		&model.Rating{},
		&model.Comment{},
		&model.ProjectReport{},
		&model.CommentReport{},
		&model.DonationOutbox{},
	)

	// 捐款事件投递：配置了 broker 走 kafka，否则本地打印
	sender := service.LogSender
	if brokers := env("KAFKA_BROKERS", ""); brokers != "" {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: strings.Split(brokers, ","),
			Topic:   env("KAFKA_TOPIC", "donation-events"),
		})
		if err != nil {
			log.Fatalf("kafka producer: %v", err)
		}
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.NewOutboxRelayer(sender).Run(ctx)

	cfg := router.Config{
		SMTP: pkg.SMTPConfig{
			Host:     env("SMTP_HOST", "smtp.example.com"),
			Port:     587,
			Username: env("SMTP_USERNAME", "no-reply@example.com"),
			Password: env("SMTP_PASSWORD", ""),
			From:     env("SMTP_FROM", "NoReply <no-reply@example.com>"),
		},
		FrontendURL: env("FRONTEND_URL", "http://localhost:3000"),
	}

	r := router.InitRouter(cfg)
	if err := r.Run(":" + env("PORT", "8080")); err != nil {
		log.Fatalf("server: %v", err)
	}
}
