package usecase

import (
	"time"

	"skyscore-srv/internal/analytics"
	"skyscore-srv/pkg/log"
)

const (
	// defaultViralLikes is the like count above which a post counts as viral.
	defaultViralLikes = 50
	// activePostsPerDay marks a user active: at least one post every 2 days.
	activePostsPerDay = 0.5
)

// Config holds calculation settings. Now is injected so tests are deterministic.
type Config struct {
	Now                 func() time.Time
	ViralLikesThreshold int
}

type implUseCase struct {
	l   log.Logger
	cfg Config
}

// New creates a new analytics UseCase implementation.
func New(l log.Logger, cfg Config) analytics.UseCase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.ViralLikesThreshold <= 0 {
		cfg.ViralLikesThreshold = defaultViralLikes
	}
	return &implUseCase{
		l:   l,
		cfg: cfg,
	}
}
