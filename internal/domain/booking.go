package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusExpired   BookingStatus = "EXPIRED"
)

type FareClass string

const (
	FareBasic    FareClass = "basic"
	FareStandard FareClass = "standard"
	FareFlex     FareClass = "flex"
)

// fareMultipliers are percentages applied to the catalog price.
var fareMultipliers = map[FareClass]int64{
	FareBasic:    100,
	FareStandard: 125,
	FareFlex:     160,
}

func (f FareClass) Valid() bool {
	_, ok := fareMultipliers[f]
	return ok
}

// Price returns the fare price for a catalog base price, rounded down.
func (f FareClass) Price(base int64) int64 {
	return base * fareMultipliers[f] / 100
}

type Passenger struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Document  string `json:"document,omitempty"`
}

type Booking struct {
	ID           int64
	FlightID     int64
	Fare         FareClass
	SeatNumber   int
	PriceTotal   int64
	Token        string
	Status       BookingStatus
	Passenger    *Passenger
	PaymentLast4 string
	ExpiresAt    time.Time
	Email        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
