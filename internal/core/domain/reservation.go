package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation books a car for a user over a date range.
type Reservation struct {
	ID          int64             `json:"id" bson:"_id"`
	UserID      int64             `json:"userId" bson:"user_id"`
	CarID       int64             `json:"carId" bson:"car_id"`
	PickupDate  time.Time         `json:"pickupDate" bson:"pickup_date"`
	DropoffDate time.Time         `json:"dropoffDate" bson:"dropoff_date"`
	TotalPrice  float64           `json:"totalPrice" bson:"total_price"`
	Status      ReservationStatus `json:"status" bson:"status"`
	CreatedAt   time.Time         `json:"createdAt" bson:"created_at"`
}
