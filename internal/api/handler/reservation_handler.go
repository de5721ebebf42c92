package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roadready/rental-api/internal/core/ports"
)

type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// List handles GET /api/reservation.
//
// @Summary      List reservations
// @Tags         reservation
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Reservation
// @Failure      403  {object}  statusResponse
// @Router       /api/reservation [get]
func (h *ReservationHandler) List(c echo.Context) error {
	out, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// ListByCar handles GET /api/reservation/car/:carId. A car without
// reservations yields an empty list.
//
// @Summary      List reservations of a car
// @Tags         reservation
// @Produce      json
// @Security     BearerAuth
// @Param        carId  path      int  true  "Car id"
// @Success      200    {array}   domain.Reservation
// @Failure      404    {object}  statusResponse
// @Router       /api/reservation/car/{carId} [get]
func (h *ReservationHandler) ListByCar(c echo.Context) error {
	carID, err := pathID(c, "carId")
	if err != nil {
		return err
	}
	out, err := h.service.ListByCar(c.Request().Context(), carID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/reservation/:id.
//
// @Summary      Get a reservation
// @Tags         reservation
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Reservation id"
// @Success      200  {object}  domain.Reservation
// @Failure      403  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Router       /api/reservation/{id} [get]
func (h *ReservationHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	r, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

// Create handles POST /api/reservation.
//
// @Summary      Book a car
// @Tags         reservation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reservationRequest  true  "Reservation"
// @Success      201   {object}  domain.Reservation
// @Failure      400   {object}  statusResponse
// @Failure      404   {object}  statusResponse
// @Router       /api/reservation [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	var req reservationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	r := req.toDomain()
	r.ID = 0
	id, err := h.service.Create(c.Request().Context(), r)
	if err != nil {
		return err
	}
	r.ID = id
	return c.JSON(http.StatusCreated, r)
}

// Update handles PUT /api/reservation and PUT /api/reservation/:id.
//
// @Summary      Update a reservation
// @Tags         reservation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Reservation id"
// @Param        body  body      reservationRequest  true  "Reservation"
// @Success      200   {object}  domain.Reservation
// @Failure      400   {object}  statusResponse
// @Failure      403   {object}  statusResponse
// @Failure      404   {object}  statusResponse
// @Router       /api/reservation/{id} [put]
func (h *ReservationHandler) Update(c echo.Context) error {
	var req reservationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	id, err := updateID(c, req.ID)
	if err != nil {
		return err
	}
	r := req.toDomain()
	r.ID = id
	ctx := c.Request().Context()
	if err := h.service.Update(ctx, r); err != nil {
		return err
	}
	stored, err := h.service.Get(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stored)
}

// Delete handles DELETE /api/reservation/:id.
//
// @Summary      Delete a reservation
// @Tags         reservation
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Reservation id"
// @Success      200  {object}  statusResponse
// @Failure      403  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Router       /api/reservation/{id} [delete]
func (h *ReservationHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Reservation deleted successfully"))
}
