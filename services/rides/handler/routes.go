package handler

import (
	"github.com/labstack/echo/v4"

	"costera/internal/pkg/middleware"
	"costera/internal/pkg/models"
	"costera/services/rides"
	httpHandler "costera/services/rides/handler/http"
)

// Handler combines the HTTP handlers for the rides service
type Handler struct {
	rides      *httpHandler.RidesHandler
	passengers *httpHandler.PassengersHandler
	cfg        *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(rideUC rides.RideUC, cfg *models.Config) *Handler {
	return &Handler{
		rides:      httpHandler.NewRidesHandler(rideUC),
		passengers: httpHandler.NewPassengersHandler(rideUC),
		cfg:        cfg,
	}
}

// RegisterRoutes registers all HTTP routes for the rides service
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authed := middleware.JWTAuthMiddleware(h.cfg.JWT)

	g := e.Group("/api/rides")
	g.GET("", h.rides.List)
	g.POST("", h.rides.Create, authed)
	g.GET("/:id", h.rides.Get)
	g.PATCH("/:id", h.rides.Update, authed)
	g.DELETE("/:id", h.rides.Delete, authed)
	g.POST("/:id/assign", h.rides.Assign, authed)
	g.POST("/:id/complete", h.rides.Complete, authed)

	g.POST("/:id/join", h.passengers.Join, authed)
	g.GET("/:id/passengers", h.passengers.List, middleware.OptionalJWTMiddleware(h.cfg.JWT))
	g.DELETE("/:id/passengers/:pid", h.passengers.Remove, authed)
	g.PATCH("/:id/passengers/:pid/sequence", h.passengers.Reorder, authed)
	g.POST("/:id/lockSequence", h.passengers.Lock, authed)
}
