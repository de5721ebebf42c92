package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment records money received for a reservation.
type Payment struct {
	ID            int64         `json:"id" bson:"_id"`
	UserID        int64         `json:"userId" bson:"user_id"`
	ReservationID int64         `json:"reservationId" bson:"reservation_id"`
	Amount        float64       `json:"amount" bson:"amount"`
	Method        string        `json:"method" bson:"method"`
	Status        PaymentStatus `json:"status" bson:"status"`
	PaidAt        time.Time     `json:"paidAt" bson:"paid_at"`
}
