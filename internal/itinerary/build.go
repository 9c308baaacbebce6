package itinerary

import (
	"fmt"

	"github.com/Domenick1991/skybooking/internal/domain"
)

// Build assembles the itinerary view of flight. Layovers are only computed
// when the flight resolves into more than one segment.
func Build(flight domain.Flight, table []domain.Flight) (domain.Itinerary, error) {
	segments := Segments(flight, table)
	it := domain.Itinerary{
		Flight:   flight,
		Segments: segments,
		Layovers: []domain.Layover{},
		Stops:    flight.Stops(),
	}
	if len(segments) < 2 {
		return it, nil
	}

	for i := 0; i < len(segments)-1; i++ {
		in, out := segments[i], segments[i+1]
		d, err := Layover(in.ArrivalTime, out.DepartureTime)
		if err != nil {
			return domain.Itinerary{}, fmt.Errorf("layover at %s: %w", in.ArrivalCode, err)
		}
		it.Layovers = append(it.Layovers, domain.Layover{
			City:          in.ArrivalCity,
			Code:          in.ArrivalCode,
			ArrivalTime:   in.ArrivalTime,
			DepartureTime: out.DepartureTime,
			Duration:      d,
		})
	}
	return it, nil
}

// ElapsedMinutes is the door-to-door time across consecutive legs: every
// leg's flying time plus the layover before the next one.
func ElapsedMinutes(legs []domain.Flight) (int, error) {
	total := 0
	for i, leg := range legs {
		flying, err := Span(leg.DepartureTime, leg.ArrivalTime)
		if err != nil {
			return 0, fmt.Errorf("leg %d: %w", leg.ID, err)
		}
		total += flying
		if i+1 < len(legs) {
			wait, err := Span(leg.ArrivalTime, legs[i+1].DepartureTime)
			if err != nil {
				return 0, fmt.Errorf("leg %d: %w", legs[i+1].ID, err)
			}
			total += wait
		}
	}
	return total, nil
}
