package consumer

import (
	"context"

	"skyscore-srv/config"
	"skyscore-srv/pkg/discord"
	pkgEmail "skyscore-srv/pkg/email"
	"skyscore-srv/pkg/log"
	"skyscore-srv/pkg/minio"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l           log.Logger
	kafkaConfig config.KafkaConfig
	scoreConfig config.ScoreConfig
	bucket      string

	// Infrastructure clients
	minioClient minio.MinIO
	emailSender pkgEmail.ISender

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	ScoreConfig config.ScoreConfig
	Bucket      string

	// Infrastructure clients
	MinIOClient minio.MinIO
	EmailSender pkgEmail.ISender

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
