package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"skyscore-srv/internal/model"
	"skyscore-srv/internal/userdata/repository"
	pkgRedis "skyscore-srv/pkg/redis"
)

func cacheKey(handle string) string {
	return fmt.Sprintf("userdata:%s", handle)
}

func (r *implCacheRepository) GetUserData(ctx context.Context, handle string) (model.RawUserData, error) {
	data, err := r.redis.Get(ctx, cacheKey(handle))
	if err != nil {
		if pkgRedis.IsNil(err) {
			return model.RawUserData{}, repository.ErrCacheMiss
		}
		return model.RawUserData{}, err
	}

	var userData model.RawUserData
	if err := json.Unmarshal([]byte(data), &userData); err != nil {
		r.l.Errorf(ctx, "userdata.repository.redis.GetUserData: Failed to unmarshal cached data: %v", err)
		return model.RawUserData{}, repository.ErrCacheMiss
	}
	return userData, nil
}

func (r *implCacheRepository) SetUserData(ctx context.Context, handle string, userData model.RawUserData) error {
	data, err := json.Marshal(userData)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, cacheKey(handle), data, r.ttl); err != nil {
		r.l.Errorf(ctx, "userdata.repository.redis.SetUserData: Failed to save to cache: %v", err)
		return err
	}
	return nil
}
