package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"costera/internal/pkg/logger"
	"costera/internal/pkg/middleware"
	"costera/internal/pkg/models"
	"costera/internal/utils"
	"costera/services/rides"
)

// PassengersHandler handles HTTP requests for ride membership and sequencing
type PassengersHandler struct {
	rideUC rides.RideUC
}

// NewPassengersHandler creates a new passenger HTTP handler
func NewPassengersHandler(rideUC rides.RideUC) *PassengersHandler {
	return &PassengersHandler{rideUC: rideUC}
}

// Join handles POST /api/rides/:id/join
func (h *PassengersHandler) Join(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride id")
	}

	var req models.JoinRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	passenger, err := h.rideUC.JoinRide(c.Request().Context(), userID, rideID, req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	logger.Info("passenger joined",
		logger.Int64("ride_id", rideID),
		logger.Int64("user_id", userID),
		logger.Int("party_size", passenger.PassengerCount))

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Joined ride", passenger)
}

// List handles GET /api/rides/:id/passengers. Authenticated callers get the
// full roster with contact details, anonymous callers a redacted view.
func (h *PassengersHandler) List(c echo.Context) error {
	rideID, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride id")
	}

	ctx := c.Request().Context()
	if _, ok := middleware.UserIDFromContext(c); ok {
		details, err := h.rideUC.ListPassengerDetails(ctx, rideID)
		if err != nil {
			return utils.AppErrorResponse(c, err)
		}
		return utils.SuccessResponse(c, nethttp.StatusOK, "", details)
	}

	public, err := h.rideUC.ListPassengersPublic(ctx, rideID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", public)
}

// Remove handles DELETE /api/rides/:id/passengers/:pid
func (h *PassengersHandler) Remove(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride id")
	}
	passengerID, err := pathID(c, "pid")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid passenger id")
	}

	if err := h.rideUC.RemovePassenger(c.Request().Context(), userID, rideID, passengerID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	logger.Info("passenger removed",
		logger.Int64("ride_id", rideID),
		logger.Int64("passenger_id", passengerID),
		logger.Int64("actor_id", userID))

	return utils.SuccessResponse(c, nethttp.StatusOK, "Passenger removed", nil)
}

// Reorder handles PATCH /api/rides/:id/passengers/:pid/sequence
func (h *PassengersHandler) Reorder(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride id")
	}
	passengerID, err := pathID(c, "pid")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid passenger id")
	}

	var req models.SequenceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	passengers, err := h.rideUC.ReorderPassenger(c.Request().Context(), userID, rideID, passengerID, req.Sequence)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Sequence updated", passengers)
}

// Lock handles POST /api/rides/:id/lockSequence
func (h *PassengersHandler) Lock(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride id")
	}

	passengers, err := h.rideUC.LockSequence(c.Request().Context(), userID, rideID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	logger.Info("sequence locked",
		logger.Int64("ride_id", rideID),
		logger.Int64("actor_id", userID))

	return utils.SuccessResponse(c, nethttp.StatusOK, "Sequence locked", passengers)
}
