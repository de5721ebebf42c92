package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrValidation         = errors.New("validation failed")

	ErrUserNotFound        = errors.New("user not found")
	ErrCarNotFound         = errors.New("car not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReviewNotFound      = errors.New("review not found")
	ErrPaymentNotFound     = errors.New("payment not found")
)
