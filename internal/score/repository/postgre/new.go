package postgre

import (
	"database/sql"

	"skyscore-srv/internal/score/repository"
	"skyscore-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new postgres-backed score repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	return &implRepository{db: db, l: l}
}
