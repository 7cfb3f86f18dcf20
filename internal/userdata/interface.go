package userdata

import (
	"context"

	"skyscore-srv/internal/model"
)

// UseCase collects user data with caching and request coalescing.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Collect(ctx context.Context, handle string) (model.RawUserData, error)
}

// Provider fetches raw user data from an upstream source (Bluesky API or a
// deterministic mock).
type Provider interface {
	Collect(ctx context.Context, handle string) (model.RawUserData, error)
}
