package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/roadready/rental-api/internal/api/middleware"
	"github.com/roadready/rental-api/internal/core/ports"
)

// ctxClaims returns the claims injected by the Auth middleware. Their absence
// means the route was mounted without Auth; reject with 401.
func ctxClaims(c echo.Context) (*ports.TokenClaims, error) {
	claims := middleware.Claims(c)
	if claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

// pathID parses the named path parameter as a positive id.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// updateID picks the id of a PUT from the path when present, otherwise from
// the body. Both present and different is a bad request.
func updateID(c echo.Context, bodyID int64) (int64, error) {
	if c.Param("id") == "" {
		return bodyID, nil
	}
	id, err := pathID(c, "id")
	if err != nil {
		return 0, err
	}
	if bodyID != 0 && bodyID != id {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id in path and body do not match")
	}
	return id, nil
}

// bindAndValidate binds the request body into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
