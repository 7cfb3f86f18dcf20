package usecase

import (
	"time"

	"skyscore-srv/internal/analytics"
	"skyscore-srv/internal/badge"
	"skyscore-srv/internal/badge/catalog"
	"skyscore-srv/internal/userdata"
	"skyscore-srv/pkg/log"
)

const (
	defaultMaxSelected    = 5
	defaultComputeTimeout = 10 * time.Second

	// Rarity tracking across users is not implemented yet; every badge
	// reports the neutral value.
	neutralRarity = 0.5
)

// Config holds badge selection settings.
type Config struct {
	MaxSelectedBadges int
	ComputeTimeout    time.Duration
}

type implUseCase struct {
	catalog     *catalog.Catalog
	userDataUC  userdata.UseCase
	analyticsUC analytics.UseCase
	l           log.Logger
	cfg         Config
}

// New creates a new badge UseCase implementation.
func New(c *catalog.Catalog, userDataUC userdata.UseCase, analyticsUC analytics.UseCase, l log.Logger, cfg Config) badge.UseCase {
	if cfg.MaxSelectedBadges <= 0 {
		cfg.MaxSelectedBadges = defaultMaxSelected
	}
	if cfg.ComputeTimeout <= 0 {
		cfg.ComputeTimeout = defaultComputeTimeout
	}
	return &implUseCase{
		catalog:     c,
		userDataUC:  userDataUC,
		analyticsUC: analyticsUC,
		l:           l,
		cfg:         cfg,
	}
}
