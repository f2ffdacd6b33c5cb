package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"costera/internal/pkg/middleware"
	"costera/internal/pkg/models"
	"costera/internal/utils"
	"costera/services/users"
)

// UsersHandler handles HTTP requests for the user profile
type UsersHandler struct {
	userUC users.UserUC
}

// NewUsersHandler creates a new users HTTP handler
func NewUsersHandler(userUC users.UserUC) *UsersHandler {
	return &UsersHandler{userUC: userUC}
}

// GetMe handles GET /api/users/me
func (h *UsersHandler) GetMe(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "", user)
}

// UpdateMe handles PUT /api/users/me
func (h *UsersHandler) UpdateMe(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Profile updated", user)
}
