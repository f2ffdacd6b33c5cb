package handler

import (
	"github.com/labstack/echo/v4"

	"costera/internal/pkg/middleware"
	"costera/internal/pkg/models"
	"costera/services/users"
	httpHandler "costera/services/users/handler/http"
)

// Handler combines the HTTP handlers for the users service
type Handler struct {
	auth  *httpHandler.AuthHandler
	users *httpHandler.UsersHandler
	cfg   *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(userUC users.UserUC, cfg *models.Config) *Handler {
	return &Handler{
		auth:  httpHandler.NewAuthHandler(userUC),
		users: httpHandler.NewUsersHandler(userUC),
		cfg:   cfg,
	}
}

// RegisterRoutes registers all HTTP routes for the users service
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := e.Group("/api/auth")
	auth.POST("/register", h.auth.Register)
	auth.POST("/login", h.auth.Login)
	auth.POST("/password-reset/request", h.auth.RequestReset)
	auth.POST("/password-reset/confirm", h.auth.ConfirmReset)

	me := e.Group("/api/users", middleware.JWTAuthMiddleware(h.cfg.JWT))
	me.GET("/me", h.users.GetMe)
	me.PUT("/me", h.users.UpdateMe)
}
