package domain

// Car is a vehicle available for rent.
type Car struct {
	ID          int64   `json:"id" bson:"_id"`
	Make        string  `json:"make" bson:"make"`
	Model       string  `json:"model" bson:"model"`
	Year        int     `json:"year" bson:"year"`
	Plate       string  `json:"plate" bson:"plate"`
	Location    string  `json:"location" bson:"location"`
	PricePerDay float64 `json:"pricePerDay" bson:"price_per_day"`
	Available   bool    `json:"available" bson:"available"`
}
