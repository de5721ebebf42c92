package handler

import (
	"time"

	"github.com/roadready/rental-api/internal/core/domain"
)

// statusResponse is the envelope for messages and errors: {"status","message"}.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func success(msg string) statusResponse {
	return statusResponse{Status: "Success", Message: msg}
}

// --- Authentication ---

type loginRequest struct {
	Username string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
}

type registerRequest struct {
	Username    string `json:"userName"    validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"password"    validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Role        string `json:"role"`
}

// --- Entities ---
// Every request carries an optional id so PUT works with the id in the body.

type carRequest struct {
	ID          int64   `json:"id"`
	Make        string  `json:"make"        validate:"required"`
	Model       string  `json:"model"       validate:"required"`
	Year        int     `json:"year"        validate:"required,gt=1885"`
	Plate       string  `json:"plate"`
	Location    string  `json:"location"`
	PricePerDay float64 `json:"pricePerDay" validate:"gte=0"`
	Available   bool    `json:"available"`
}

func (r carRequest) toDomain() *domain.Car {
	return &domain.Car{
		ID:          r.ID,
		Make:        r.Make,
		Model:       r.Model,
		Year:        r.Year,
		Plate:       r.Plate,
		Location:    r.Location,
		PricePerDay: r.PricePerDay,
		Available:   r.Available,
	}
}

type userRequest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"        validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

func (r userRequest) toDomain() *domain.User {
	return &domain.User{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Role:        r.Role,
	}
}

type reservationRequest struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"      validate:"required,gt=0"`
	CarID       int64     `json:"carId"       validate:"required,gt=0"`
	PickupDate  time.Time `json:"pickupDate"  validate:"required"`
	DropoffDate time.Time `json:"dropoffDate" validate:"required"`
	TotalPrice  float64   `json:"totalPrice"  validate:"gte=0"`
	Status      string    `json:"status"      validate:"omitempty,oneof=pending confirmed completed cancelled"`
}

func (r reservationRequest) toDomain() *domain.Reservation {
	return &domain.Reservation{
		ID:          r.ID,
		UserID:      r.UserID,
		CarID:       r.CarID,
		PickupDate:  r.PickupDate,
		DropoffDate: r.DropoffDate,
		TotalPrice:  r.TotalPrice,
		Status:      domain.ReservationStatus(r.Status),
	}
}

type reviewRequest struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"userId"  validate:"required,gt=0"`
	CarID   int64  `json:"carId"   validate:"required,gt=0"`
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (r reviewRequest) toDomain() *domain.Review {
	return &domain.Review{
		ID:      r.ID,
		UserID:  r.UserID,
		CarID:   r.CarID,
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

type paymentRequest struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"        validate:"required,gt=0"`
	ReservationID int64     `json:"reservationId" validate:"required,gt=0"`
	Amount        float64   `json:"amount"        validate:"required,gt=0"`
	Method        string    `json:"method"        validate:"required"`
	Status        string    `json:"status"        validate:"omitempty,oneof=pending completed failed refunded"`
	PaidAt        time.Time `json:"paidAt"`
}

func (r paymentRequest) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:            r.ID,
		UserID:        r.UserID,
		ReservationID: r.ReservationID,
		Amount:        r.Amount,
		Method:        r.Method,
		Status:        domain.PaymentStatus(r.Status),
		PaidAt:        r.PaidAt,
	}
}
