package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roadready/rental-api/internal/core/ports"
)

type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// List handles GET /api/payment.
//
// @Summary      List payments
// @Tags         payment
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Payment
// @Failure      403  {object}  statusResponse
// @Router       /api/payment [get]
func (h *PaymentHandler) List(c echo.Context) error {
	out, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// ListByUser handles GET /api/payment/user/:userId. A user without
// payments yields an empty list.
//
// @Summary      List payments of a user
// @Tags         payment
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      int  true  "User id"
// @Success      200    {array}   domain.Payment
// @Failure      404    {object}  statusResponse
// @Router       /api/payment/user/{userId} [get]
func (h *PaymentHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	out, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/payment/:id.
//
// @Summary      Get a payment
// @Tags         payment
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Payment id"
// @Success      200  {object}  domain.Payment
// @Failure      403  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Router       /api/payment/{id} [get]
func (h *PaymentHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Create handles POST /api/payment.
//
// @Summary      Record a payment
// @Tags         payment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      paymentRequest  true  "Payment"
// @Success      201   {object}  domain.Payment
// @Failure      400   {object}  statusResponse
// @Failure      404   {object}  statusResponse
// @Router       /api/payment [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	var req paymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p := req.toDomain()
	p.ID = 0
	id, err := h.service.Create(c.Request().Context(), p)
	if err != nil {
		return err
	}
	p.ID = id
	return c.JSON(http.StatusCreated, p)
}

// Update handles PUT /api/payment and PUT /api/payment/:id.
//
// @Summary      Update a payment
// @Tags         payment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Payment id"
// @Param        body  body      paymentRequest  true  "Payment"
// @Success      200   {object}  domain.Payment
// @Failure      400   {object}  statusResponse
// @Failure      403   {object}  statusResponse
// @Failure      404   {object}  statusResponse
// @Router       /api/payment/{id} [put]
func (h *PaymentHandler) Update(c echo.Context) error {
	var req paymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	id, err := updateID(c, req.ID)
	if err != nil {
		return err
	}
	p := req.toDomain()
	p.ID = id
	ctx := c.Request().Context()
	if err := h.service.Update(ctx, p); err != nil {
		return err
	}
	stored, err := h.service.Get(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stored)
}

// Delete handles DELETE /api/payment/:id.
//
// @Summary      Delete a payment
// @Tags         payment
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Payment id"
// @Success      200  {object}  statusResponse
// @Failure      403  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Router       /api/payment/{id} [delete]
func (h *PaymentHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Payment deleted successfully"))
}
