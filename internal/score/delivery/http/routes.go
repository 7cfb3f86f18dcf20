package http

import (
	"github.com/gin-gonic/gin"

	"skyscore-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	{
		api.POST("/skyscore", h.ProcessScore)
		api.GET("/skyscore/users/:email/:handle", h.GetUser)
		api.GET("/skyscore/badges", h.ListBadges)
	}
}
