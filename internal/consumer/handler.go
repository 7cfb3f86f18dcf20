package consumer

import (
	"context"
	"fmt"
	"time"

	emailConsumer "skyscore-srv/internal/email/delivery/kafka/consumer"
	emailUsecase "skyscore-srv/internal/email/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	emailConsumer *emailConsumer.Consumer
}

// setupDomains initializes all domain layers (usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	emailUC := emailUsecase.New(srv.emailSender, srv.minioClient, srv.l, emailUsecase.Config{
		Bucket:        srv.bucket,
		CardURLExpiry: time.Duration(srv.scoreConfig.CardURLExpiry) * time.Second,
	})

	emailCons, err := emailConsumer.New(emailConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     emailUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create email consumer: %w", err)
	}

	srv.l.Infof(ctx, "Email domain initialized")

	return &domainConsumers{
		emailConsumer: emailCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.emailConsumer.ConsumeScoreComputed(ctx); err != nil {
		return fmt.Errorf("failed to start email consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.emailConsumer != nil {
		if err := consumers.emailConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing email consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
