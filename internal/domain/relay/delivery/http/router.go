package http

import (
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
)

// Router registers relay HTTP routes
type Router struct {
	handler *Handler
	logger  zerolog.Logger
}

// NewRouter creates a new relay router
func NewRouter(handler *Handler, logger zerolog.Logger) *Router {
	return &Router{
		handler: handler,
		logger:  logger,
	}
}

// RegisterRoutes registers relay routes on the router
func (r *Router) RegisterRoutes(rt *router.Router) {
	rt.POST("/api/ytdl", r.handler.Handle)
	rt.GET("/", r.handler.Health)
	rt.GET("/health", r.handler.Health)

	r.logger.Info().Msg("Relay routes registered")
}
