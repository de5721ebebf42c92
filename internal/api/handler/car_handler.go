package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roadready/rental-api/internal/core/ports"
)

type CarHandler struct {
	service ports.CarService
}

func NewCarHandler(service ports.CarService) *CarHandler {
	return &CarHandler{service: service}
}

// List handles GET /api/car.
//
// @Summary      List cars
// @Tags         car
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Car
// @Failure      401  {object}  statusResponse
// @Router       /api/car [get]
func (h *CarHandler) List(c echo.Context) error {
	cars, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cars)
}

// Get handles GET /api/car/:id.
//
// @Summary      Get a car
// @Tags         car
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Car id"
// @Success      200  {object}  domain.Car
// @Failure      404  {object}  statusResponse
// @Router       /api/car/{id} [get]
func (h *CarHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	car, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, car)
}

// Create handles POST /api/car.
//
// @Summary      Add a car
// @Tags         car
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      carRequest  true  "Car"
// @Success      201   {object}  domain.Car
// @Failure      400   {object}  statusResponse
// @Failure      403   {object}  statusResponse
// @Router       /api/car [post]
func (h *CarHandler) Create(c echo.Context) error {
	var req carRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	car := req.toDomain()
	car.ID = 0
	id, err := h.service.Create(c.Request().Context(), car)
	if err != nil {
		return err
	}
	car.ID = id
	return c.JSON(http.StatusCreated, car)
}

// Update handles PUT /api/car and PUT /api/car/:id.
//
// @Summary      Update a car
// @Tags         car
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int         true  "Car id"
// @Param        body  body      carRequest  true  "Car"
// @Success      200   {object}  domain.Car
// @Failure      400   {object}  statusResponse
// @Failure      403   {object}  statusResponse
// @Failure      404   {object}  statusResponse
// @Router       /api/car/{id} [put]
func (h *CarHandler) Update(c echo.Context) error {
	var req carRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	id, err := updateID(c, req.ID)
	if err != nil {
		return err
	}
	car := req.toDomain()
	car.ID = id
	ctx := c.Request().Context()
	if err := h.service.Update(ctx, car); err != nil {
		return err
	}
	stored, err := h.service.Get(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stored)
}

// Delete handles DELETE /api/car/:id.
//
// @Summary      Delete a car
// @Tags         car
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Car id"
// @Success      200  {object}  statusResponse
// @Failure      403  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Router       /api/car/{id} [delete]
func (h *CarHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Car deleted successfully"))
}
