package http

import (
	"github.com/gin-gonic/gin"

	"skyscore-srv/internal/badge/catalog"
	"skyscore-srv/internal/middleware"
	"skyscore-srv/internal/score"
	"skyscore-srv/pkg/discord"
	"skyscore-srv/pkg/log"
)

// Handler - Interface for the score HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      score.UseCase
	catalog *catalog.Catalog
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc score.UseCase, c *catalog.Catalog, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, catalog: c, discord: discord}
}
