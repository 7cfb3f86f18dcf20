package repository

import (
	"context"

	"skyscore-srv/internal/model"
)

// CacheRepository caches collected user data per handle.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetUserData(ctx context.Context, handle string) (model.RawUserData, error)
	SetUserData(ctx context.Context, handle string, data model.RawUserData) error
}
