package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"costera/internal/pkg/logger"
	"costera/internal/pkg/middleware"
	"costera/internal/pkg/models"
	"costera/internal/utils"
	"costera/services/rides"
)

// RidesHandler handles HTTP requests for ride operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{rideUC: rideUC}
}

func pathID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// Create handles POST /api/rides
func (h *RidesHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	detail, err := h.rideUC.CreateRide(c.Request().Context(), userID, req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	logger.Info("ride created",
		logger.Int64("ride_id", detail.ID),
		logger.Int64("creator_id", userID),
		logger.String("direction", string(detail.Direction)))

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Ride created", detail)
}

// List handles GET /api/rides
func (h *RidesHandler) List(c echo.Context) error {
	details, err := h.rideUC.ListRides(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", details)
}

// Get handles GET /api/rides/:id
func (h *RidesHandler) Get(c echo.Context) error {
	rideID, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride id")
	}

	detail, err := h.rideUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", detail)
}

// Update handles PATCH /api/rides/:id
func (h *RidesHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride id")
	}

	var req models.UpdateRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	detail, err := h.rideUC.UpdateRide(c.Request().Context(), userID, rideID, req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Ride updated", detail)
}

// Delete handles DELETE /api/rides/:id
func (h *RidesHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride id")
	}

	if err := h.rideUC.DeleteRide(c.Request().Context(), userID, rideID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	logger.Info("ride deleted",
		logger.Int64("ride_id", rideID),
		logger.Int64("actor_id", userID))

	return utils.SuccessResponse(c, nethttp.StatusOK, "Ride deleted", nil)
}

// Assign handles POST /api/rides/:id/assign
func (h *RidesHandler) Assign(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride id")
	}

	detail, err := h.rideUC.AssignVendor(c.Request().Context(), userID, middleware.IsVendorFromContext(c), rideID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Ride assigned", detail)
}

// Complete handles POST /api/rides/:id/complete
func (h *RidesHandler) Complete(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride id")
	}

	detail, err := h.rideUC.CompleteRide(c.Request().Context(), userID, rideID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Ride completed", detail)
}
