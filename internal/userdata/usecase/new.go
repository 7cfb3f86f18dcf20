package usecase

import (
	"golang.org/x/sync/singleflight"

	"skyscore-srv/internal/userdata"
	"skyscore-srv/internal/userdata/repository"
	"skyscore-srv/pkg/log"
)

type implUseCase struct {
	provider  userdata.Provider
	cacheRepo repository.CacheRepository
	l         log.Logger
	group     singleflight.Group
}

// New creates a new userdata UseCase implementation.
func New(provider userdata.Provider, cacheRepo repository.CacheRepository, l log.Logger) userdata.UseCase {
	return &implUseCase{
		provider:  provider,
		cacheRepo: cacheRepo,
		l:         l,
	}
}
