package consumer

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"

	"skyscore-srv/internal/model"
)

type scoreComputedHandler struct {
	consumer *Consumer
}

func (h *scoreComputedHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *scoreComputedHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim handles score.computed messages. A message that cannot be
// decoded or sent is logged and marked anyway; redelivering it would just
// fail the same way and block the partition.
func (h *scoreComputedHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		h.handleMessage(session.Context(), msg)
		session.MarkMessage(msg, "")
	}
	return nil
}

func (h *scoreComputedHandler) handleMessage(ctx context.Context, msg *sarama.ConsumerMessage) {
	var event model.ScoreComputedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.consumer.l.Errorf(ctx, "email.delivery.kafka.consumer.ConsumeScoreComputed: Failed to decode message at offset %d: %v", msg.Offset, err)
		return
	}

	if err := h.consumer.uc.SendScoreReport(ctx, event); err != nil {
		h.consumer.l.Errorf(ctx, "email.delivery.kafka.consumer.ConsumeScoreComputed: Failed to send report for %s: %v", event.Handle, err)
	}
}
