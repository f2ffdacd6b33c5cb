package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"costera/internal/pkg/models"
	"costera/internal/utils"
	"costera/services/users"
)

// AuthHandler handles HTTP requests for registration and authentication
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth HTTP handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{userUC: userUC}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.userUC.Register(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Registered successfully", resp)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.userUC.Login(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Logged in successfully", resp)
}

// RequestReset handles POST /api/auth/password-reset/request
func (h *AuthHandler) RequestReset(c echo.Context) error {
	var req models.ResetRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	token, err := h.userUC.RequestPasswordReset(c.Request().Context(), req.Handle)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	// No delivery channel exists; the token goes back to the caller the way
	// the dummy OTP did before SMS integration.
	return utils.SuccessResponse(c, nethttp.StatusOK, "Reset token issued", map[string]string{
		"token": token,
	})
}

// ConfirmReset handles POST /api/auth/password-reset/confirm
func (h *AuthHandler) ConfirmReset(c echo.Context) error {
	var req models.ResetConfirm
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.userUC.ConfirmPasswordReset(c.Request().Context(), req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Password updated", nil)
}
