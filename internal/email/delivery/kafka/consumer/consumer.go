package consumer

import (
	"context"
	"fmt"

	pkgKafka "skyscore-srv/pkg/kafka"
)

// ConsumeScoreComputed starts consuming score.computed events.
func (c *Consumer) ConsumeScoreComputed(ctx context.Context) error {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: c.kafkaConfig.GroupID,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer group %s: %w", c.kafkaConfig.GroupID, err)
	}
	c.scoreComputedGroup = group

	handler := &scoreComputedHandler{
		consumer: c,
	}

	// Start consuming in goroutine with context
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{c.kafkaConfig.Topic}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	// Start error handler
	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", c.kafkaConfig.Topic)

	return nil
}
