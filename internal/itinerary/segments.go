// Package itinerary reconstructs the physical legs of catalog flights and
// the layovers between them.
package itinerary

import "github.com/Domenick1991/skybooking/internal/domain"

// Segments returns the ordered legs a traveler flies for flight.
//
// A flight without transits is its own single segment. Otherwise every
// transit id is resolved against table and the resolved records are
// chained: the first leg departs where and when the whole itinerary departs,
// every later leg departs from the previous leg's arrival airport at its own
// time, and the last leg arrives where and when the whole itinerary arrives.
// If any id cannot be resolved the flight is returned as a single segment.
//
// With a single transit id the result is one segment built from the
// referenced record whose departure and arrival both come from flight.
func Segments(flight domain.Flight, table []domain.Flight) []domain.Flight {
	if !flight.IsTransit() {
		return []domain.Flight{flight}
	}

	legs, ok := resolve(flight.LegBoundaryIDs, table)
	if !ok {
		return []domain.Flight{flight}
	}

	segments := make([]domain.Flight, 0, len(legs))
	for i, leg := range legs {
		seg := leg.Clone()
		seg.StartDate = flight.StartDate
		if i == 0 {
			seg.DepartureCity = flight.DepartureCity
			seg.DepartureCode = flight.DepartureCode
			seg.DepartureTime = flight.DepartureTime
		} else {
			prev := legs[i-1]
			seg.DepartureCity = prev.ArrivalCity
			seg.DepartureCode = prev.ArrivalCode
		}
		segments = append(segments, seg)
	}

	last := &segments[len(segments)-1]
	last.ArrivalCity = flight.ArrivalCity
	last.ArrivalCode = flight.ArrivalCode
	last.ArrivalTime = flight.ArrivalTime

	return segments
}

func resolve(ids []int64, table []domain.Flight) ([]domain.Flight, bool) {
	legs := make([]domain.Flight, 0, len(ids))
	for _, id := range ids {
		leg, ok := find(table, id)
		if !ok {
			return nil, false
		}
		legs = append(legs, leg)
	}
	return legs, true
}

func find(table []domain.Flight, id int64) (domain.Flight, bool) {
	for _, f := range table {
		if f.ID == id {
			return f, true
		}
	}
	return domain.Flight{}, false
}
