package email

import (
	"context"

	"skyscore-srv/internal/model"
)

// UseCase turns score.computed events into delivered result emails.
//
//go:generate mockery --name UseCase
type UseCase interface {
	SendScoreReport(ctx context.Context, event model.ScoreComputedEvent) error
}
