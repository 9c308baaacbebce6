package domain

// Layover is the wait at a connecting airport between two segments.
type Layover struct {
	City          string `json:"city"`
	Code          string `json:"code"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureTime string `json:"departure_time"`
	Duration      string `json:"duration"`
}

// Itinerary is the traveler-facing view of a flight: the physical segments
// flown and the layovers between them.
type Itinerary struct {
	Flight   Flight    `json:"flight"`
	Segments []Flight  `json:"segments"`
	Layovers []Layover `json:"layovers"`
	Stops    int       `json:"stops"`
}
