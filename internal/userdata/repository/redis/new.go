package redis

import (
	"time"

	"skyscore-srv/internal/userdata/repository"
	"skyscore-srv/pkg/log"
	pkgRedis "skyscore-srv/pkg/redis"
)

const defaultTTL = 24 * time.Hour

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New - Factory. ttl <= 0 falls back to 24 hours.
func New(redis pkgRedis.IRedis, l log.Logger, ttl time.Duration) repository.CacheRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &implCacheRepository{
		redis: redis,
		l:     l,
		ttl:   ttl,
	}
}
