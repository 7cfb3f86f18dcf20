package usecase

import (
	"time"

	emailDomain "skyscore-srv/internal/email"
	pkgEmail "skyscore-srv/pkg/email"
	"skyscore-srv/pkg/log"
	"skyscore-srv/pkg/minio"
)

const defaultCardURLExpiry = 7 * 24 * time.Hour

// Config holds email delivery settings.
type Config struct {
	Bucket        string
	CardURLExpiry time.Duration
}

type implUseCase struct {
	sender  pkgEmail.ISender
	storage minio.FileDownloader
	l       log.Logger
	cfg     Config
}

// New creates a new email UseCase implementation.
func New(sender pkgEmail.ISender, storage minio.FileDownloader, l log.Logger, cfg Config) emailDomain.UseCase {
	if cfg.CardURLExpiry <= 0 {
		cfg.CardURLExpiry = defaultCardURLExpiry
	}
	return &implUseCase{
		sender:  sender,
		storage: storage,
		l:       l,
		cfg:     cfg,
	}
}
