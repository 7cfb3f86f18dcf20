package score

import (
	"context"

	"skyscore-srv/internal/model"
)

// UseCase computes, persists and announces SkyScores.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
	GetUser(ctx context.Context, email, handle string) (model.ScoreRecord, error)
}

// Publisher announces a computed score to downstream consumers.
type Publisher interface {
	PublishScoreComputed(ctx context.Context, event model.ScoreComputedEvent) error
}
