package repository

import (
	"context"

	"skyscore-srv/internal/model"
)

// CreateOptions holds the fields for one new score record.
type CreateOptions struct {
	Email         string
	Handle        string
	Score         int
	Archetype     string
	CardObjectKey string
}

// Repository persists computed scores.
//
//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.ScoreRecord, error)
	GetByEmailAndHandle(ctx context.Context, email, handle string) (model.ScoreRecord, error)
}
