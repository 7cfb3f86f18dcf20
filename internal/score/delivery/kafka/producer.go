package kafka

import (
	"context"
	"encoding/json"

	"skyscore-srv/internal/model"
	"skyscore-srv/internal/score"
	pkgKafka "skyscore-srv/pkg/kafka"
	"skyscore-srv/pkg/log"
)

type implPublisher struct {
	producer pkgKafka.IProducer
	l        log.Logger
}

// NewPublisher creates the Kafka-backed score event publisher.
func NewPublisher(producer pkgKafka.IProducer, l log.Logger) score.Publisher {
	return &implPublisher{producer: producer, l: l}
}

// PublishScoreComputed emits one score.computed event keyed by handle, so
// events for the same user land on the same partition in order.
func (p *implPublisher) PublishScoreComputed(ctx context.Context, event model.ScoreComputedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		p.l.Errorf(ctx, "score.delivery.kafka.PublishScoreComputed: marshal event %s: %v", event.ID, err)
		return err
	}

	if err := p.producer.Publish([]byte(event.Handle), payload); err != nil {
		p.l.Errorf(ctx, "score.delivery.kafka.PublishScoreComputed: publish event %s: %v", event.ID, err)
		return err
	}

	p.l.Debugf(ctx, "score.delivery.kafka.PublishScoreComputed: published %s for %s", event.ID, event.Handle)
	return nil
}
