package usecase

import (
	"time"

	"skyscore-srv/internal/badge"
	"skyscore-srv/internal/score"
	"skyscore-srv/internal/score/repository"
	"skyscore-srv/internal/scorecard"
	"skyscore-srv/pkg/log"
	"skyscore-srv/pkg/minio"
)

const (
	baseScore          = 50
	scoreVariationSpan = 41 // variation in [-20, 20]

	defaultCardURLExpiry = 7 * 24 * time.Hour
)

// cardStorage is the slice of object storage the score flow needs.
type cardStorage interface {
	minio.FileUploader
	minio.FileDownloader
}

// Config holds score computation settings.
type Config struct {
	Bucket        string
	CardURLExpiry time.Duration
	Now           func() time.Time
}

type implUseCase struct {
	repo      repository.Repository
	badgeUC   badge.UseCase
	renderer  scorecard.Renderer
	storage   cardStorage
	publisher score.Publisher
	l         log.Logger
	cfg       Config
}

// New creates a new score UseCase implementation.
func New(repo repository.Repository, badgeUC badge.UseCase, renderer scorecard.Renderer,
	storage cardStorage, publisher score.Publisher, l log.Logger, cfg Config) score.UseCase {
	if cfg.CardURLExpiry <= 0 {
		cfg.CardURLExpiry = defaultCardURLExpiry
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &implUseCase{
		repo:      repo,
		badgeUC:   badgeUC,
		renderer:  renderer,
		storage:   storage,
		publisher: publisher,
		l:         l,
		cfg:       cfg,
	}
}
