package domain

import "time"

// Review is a user's rating of a car.
type Review struct {
	ID        int64     `json:"id" bson:"_id"`
	UserID    int64     `json:"userId" bson:"user_id"`
	CarID     int64     `json:"carId" bson:"car_id"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment" bson:"comment"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
