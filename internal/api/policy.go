package api

import (
	"net/http"

	"github.com/roadready/rental-api/internal/api/middleware"
	"github.com/roadready/rental-api/internal/core/domain"
)

// RoutePolicy is the static role table for the /api routes. Routes absent
// from it only need a valid token.
func RoutePolicy() middleware.Policy {
	admin := domain.RoleAdmin
	user := domain.RoleUser

	return middleware.Policy{}.
		Require(http.MethodGet, "/api/users", admin).
		Require(http.MethodPost, "/api/users", admin).
		Require(http.MethodPut, "/api/users", admin).
		Require(http.MethodPut, "/api/users/:id", admin).
		Require(http.MethodDelete, "/api/users/:id", admin).
		Require(http.MethodPost, "/api/car", admin).
		Require(http.MethodPut, "/api/car", admin).
		Require(http.MethodPut, "/api/car/:id", admin).
		Require(http.MethodDelete, "/api/car/:id", admin).
		Require(http.MethodGet, "/api/reservation", admin).
		Require(http.MethodGet, "/api/reservation/:id", admin, user).
		Require(http.MethodPut, "/api/reservation", admin).
		Require(http.MethodPut, "/api/reservation/:id", admin).
		Require(http.MethodDelete, "/api/reservation/:id", admin).
		Require(http.MethodPost, "/api/review", user).
		Require(http.MethodPut, "/api/review", user).
		Require(http.MethodPut, "/api/review/:id", user).
		Require(http.MethodDelete, "/api/review/:id", admin).
		Require(http.MethodGet, "/api/payment", admin).
		Require(http.MethodPut, "/api/payment", admin).
		Require(http.MethodPut, "/api/payment/:id", admin).
		Require(http.MethodDelete, "/api/payment/:id", admin)
}
