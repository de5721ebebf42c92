package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roadready/rental-api/internal/core/ports"
)

type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// List handles GET /api/review.
//
// @Summary      List reviews
// @Tags         review
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Review
// @Failure      403  {object}  statusResponse
// @Router       /api/review [get]
func (h *ReviewHandler) List(c echo.Context) error {
	out, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// ListByCar handles GET /api/review/car/:carId. A car without
// reviews yields an empty list.
//
// @Summary      List reviews of a car
// @Tags         review
// @Produce      json
// @Security     BearerAuth
// @Param        carId  path      int  true  "Car id"
// @Success      200    {array}   domain.Review
// @Failure      404    {object}  statusResponse
// @Router       /api/review/car/{carId} [get]
func (h *ReviewHandler) ListByCar(c echo.Context) error {
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

// Get handles GET /api/review/:id.
//
// @Summary      Get a review
// @Tags         review
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Review id"
// @Success      200  {object}  domain.Review
// @Failure      403  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Router       /api/review/{id} [get]
func (h *ReviewHandler) Get(c echo.Context) error {
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

// Create handles POST /api/review.
//
// @Summary      Review a car
// @Tags         review
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reviewRequest  true  "Review"
// @Success      201   {object}  domain.Review
// @Failure      400   {object}  statusResponse
// @Failure      404   {object}  statusResponse
// @Router       /api/review [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req reviewRequest
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

// Update handles PUT /api/review and PUT /api/review/:id.
//
// @Summary      Update a review
// @Tags         review
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Review id"
// @Param        body  body      reviewRequest  true  "Review"
// @Success      200   {object}  domain.Review
// @Failure      400   {object}  statusResponse
// @Failure      403   {object}  statusResponse
// @Failure      404   {object}  statusResponse
// @Router       /api/review/{id} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	var req reviewRequest
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

// Delete handles DELETE /api/review/:id.
//
// @Summary      Delete a review
// @Tags         review
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Review id"
// @Success      200  {object}  statusResponse
// @Failure      403  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Router       /api/review/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Review deleted successfully"))
}
