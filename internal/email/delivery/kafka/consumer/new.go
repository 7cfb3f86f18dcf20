package consumer

import (
	"fmt"

	"skyscore-srv/config"
	"skyscore-srv/internal/email"
	pkgKafka "skyscore-srv/pkg/kafka"
	"skyscore-srv/pkg/log"
)

// Config holds the configuration for the email consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     email.UseCase
}

// Consumer manages the Kafka consumer group for the email domain
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          email.UseCase

	scoreComputedGroup pkgKafka.IConsumer
}

// New creates a new email consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes the consumer group
func (c *Consumer) Close() error {
	if c.scoreComputedGroup != nil {
		if err := c.scoreComputedGroup.Close(); err != nil {
			return fmt.Errorf("failed to close score computed group: %w", err)
		}
	}
	return nil
}
