package consumer

import (
	"fmt"
)

// New creates a new consumer server with dependency validation
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		scoreConfig: cfg.ScoreConfig,
		bucket:      cfg.Bucket,
		minioClient: cfg.MinIOClient,
		emailSender: cfg.EmailSender,
		discord:     cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided
func (srv *ConsumerServer) validate() error {
	// Core Configuration
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if len(srv.kafkaConfig.Brokers) == 0 {
		return fmt.Errorf("kafka brokers are required")
	}
	if srv.kafkaConfig.GroupID == "" {
		return fmt.Errorf("kafka group id is required")
	}
	if srv.bucket == "" {
		return fmt.Errorf("card bucket is required")
	}

	// Infrastructure clients
	if srv.minioClient == nil {
		return fmt.Errorf("minio client is required")
	}
	if srv.emailSender == nil {
		return fmt.Errorf("email sender is required")
	}

	return nil
}
