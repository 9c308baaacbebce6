package domain

type FlightStatus string

const (
	FlightStatusActive    FlightStatus = "active"
	FlightStatusCompleted FlightStatus = "completed"
	FlightStatusCancelled FlightStatus = "cancelled"
)

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// MaxLegBoundaryIDs is the longest transit list the catalog accepts.
const MaxLegBoundaryIDs = 2

type Flight struct {
	ID           int64  `json:"id"`
	Code         string `json:"code"`
	FlightNumber string `json:"flight_number"`

	DepartureCity string `json:"departure_city"`
	DepartureCode string `json:"departure_code"`
	ArrivalCity   string `json:"arrival_city"`
	ArrivalCode   string `json:"arrival_code"`

	DepartureTime string    `json:"departure_time"` // HH:MM
	ArrivalTime   string    `json:"arrival_time"`   // HH:MM
	StartDate     string    `json:"start_date"`     // YYYY-MM-DD or empty
	Frequency     Frequency `json:"frequency"`

	Duration          string       `json:"duration"`
	Aircraft          string       `json:"aircraft"`
	SeatConfiguration string       `json:"seat_configuration"`
	Meal              string       `json:"meal"`
	Price             int64        `json:"price"`
	Status            FlightStatus `json:"status"`

	// LegBoundaryIDs references the physical legs this flight is made of.
	// The last id marks the final leg, so a list of n ids describes n-1 stops.
	LegBoundaryIDs []int64 `json:"transits"`
}

// IsTransit reports whether the flight is composed of other catalog records.
func (f Flight) IsTransit() bool {
	return len(f.LegBoundaryIDs) > 0
}

// Stops is the number of intermediate airports a traveler passes through.
func (f Flight) Stops() int {
	if len(f.LegBoundaryIDs) <= 1 {
		return 0
	}
	return len(f.LegBoundaryIDs) - 1
}

// Clone returns a copy that does not share the transit slice.
func (f Flight) Clone() Flight {
	c := f
	if f.LegBoundaryIDs != nil {
		c.LegBoundaryIDs = append([]int64(nil), f.LegBoundaryIDs...)
	}
	return c
}

func (s FlightStatus) Valid() bool {
	switch s {
	case FlightStatusActive, FlightStatusCompleted, FlightStatusCancelled:
		return true
	}
	return false
}

func (f Frequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly
}
