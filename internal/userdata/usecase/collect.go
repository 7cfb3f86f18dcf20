package usecase

import (
	"context"
	"errors"

	"skyscore-srv/internal/model"
	"skyscore-srv/internal/userdata"
	"skyscore-srv/internal/userdata/repository"
)

// Collect returns the user's data, serving from cache when fresh. Concurrent
// requests for the same handle coalesce into a single fetch.
func (uc *implUseCase) Collect(ctx context.Context, handle string) (model.RawUserData, error) {
	if handle == "" {
		return model.RawUserData{}, userdata.ErrInvalidHandle
	}

	v, err, _ := uc.group.Do(handle, func() (interface{}, error) {
		return uc.collectOne(ctx, handle)
	})
	if err != nil {
		return model.RawUserData{}, err
	}
	return v.(model.RawUserData), nil
}

func (uc *implUseCase) collectOne(ctx context.Context, handle string) (model.RawUserData, error) {
	cached, err := uc.cacheRepo.GetUserData(ctx, handle)
	if err == nil {
		uc.l.Debugf(ctx, "userdata.usecase.Collect: cache hit for %s", handle)
		return cached, nil
	}
	if !errors.Is(err, repository.ErrCacheMiss) {
		uc.l.Warnf(ctx, "userdata.usecase.Collect: cache read failed for %s: %v", handle, err)
	}

	data, err := uc.provider.Collect(ctx, handle)
	if err != nil {
		uc.l.Errorf(ctx, "userdata.usecase.Collect: provider fetch failed for %s: %v", handle, err)
		return model.RawUserData{}, err
	}

	if err := uc.cacheRepo.SetUserData(ctx, handle, data); err != nil {
		// Serving fresh data matters more than caching it.
		uc.l.Warnf(ctx, "userdata.usecase.Collect: cache write failed for %s: %v", handle, err)
	}

	return data, nil
}
