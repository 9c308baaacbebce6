package itinerary

import (
	"testing"

	"github.com/Domenick1991/skybooking/internal/catalog"
	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flightByID(t *testing.T, table []domain.Flight, id int64) domain.Flight {
	t.Helper()
	for _, f := range table {
		if f.ID == id {
			return f
		}
	}
	t.Fatalf("flight %d not in table", id)
	return domain.Flight{}
}

func TestSegments_DirectFlight(t *testing.T) {
	table := catalog.Flights()
	direct := flightByID(t, table, 1)

	segments := Segments(direct, table)

	require.Len(t, segments, 1)
	assert.Equal(t, direct, segments[0])
}

func TestSegments_TwoTransits(t *testing.T) {
	table := catalog.Flights()
	parent := flightByID(t, table, 10)
	first := flightByID(t, table, 8)
	second := flightByID(t, table, 9)

	segments := Segments(parent, table)
	require.Len(t, segments, 2)

	leg1, leg2 := segments[0], segments[1]

	assert.Equal(t, "Bucharest", leg1.DepartureCity)
	assert.Equal(t, "OTP", leg1.DepartureCode)
	assert.Equal(t, "08:00", leg1.DepartureTime)
	assert.Equal(t, "London", leg1.ArrivalCity)
	assert.Equal(t, "LHR", leg1.ArrivalCode)
	assert.Equal(t, "11:00", leg1.ArrivalTime)
	assert.Equal(t, first.ID, leg1.ID)
	assert.Equal(t, first.Aircraft, leg1.Aircraft)

	assert.Equal(t, "London", leg2.DepartureCity)
	assert.Equal(t, "LHR", leg2.DepartureCode)
	assert.Equal(t, "01:00", leg2.DepartureTime)
	assert.Equal(t, "New York", leg2.ArrivalCity)
	assert.Equal(t, "JFK", leg2.ArrivalCode)
	assert.Equal(t, "20:00", leg2.ArrivalTime)
	assert.Equal(t, second.ID, leg2.ID)

	// обе части наследуют дату вылета всего маршрута
	assert.Equal(t, parent.StartDate, leg1.StartDate)
	assert.Equal(t, parent.StartDate, leg2.StartDate)
}

func TestSegments_BoundariesFollowParent(t *testing.T) {
	table := catalog.Flights()
	parent := flightByID(t, table, 13)
	first := flightByID(t, table, 12)

	segments := Segments(parent, table)
	require.Len(t, segments, 2)

	assert.Equal(t, parent.DepartureCity, segments[0].DepartureCity)
	assert.Equal(t, parent.DepartureCode, segments[0].DepartureCode)
	assert.Equal(t, parent.DepartureTime, segments[0].DepartureTime)
	assert.Equal(t, first.ArrivalCity, segments[0].ArrivalCity)
	assert.Equal(t, first.ArrivalCode, segments[0].ArrivalCode)

	assert.Equal(t, parent.ArrivalCity, segments[1].ArrivalCity)
	assert.Equal(t, parent.ArrivalCode, segments[1].ArrivalCode)
	assert.Equal(t, parent.ArrivalTime, segments[1].ArrivalTime)
}

func TestSegments_SingleTransitKeepsParentEndpoints(t *testing.T) {
	table := catalog.Flights()
	parent := flightByID(t, table, 14)
	leg := flightByID(t, table, 8)

	segments := Segments(parent, table)
	require.Len(t, segments, 1)

	seg := segments[0]
	assert.Equal(t, leg.ID, seg.ID)
	assert.Equal(t, leg.FlightNumber, seg.FlightNumber)
	assert.Equal(t, "OTP", seg.DepartureCode)
	assert.Equal(t, "09:30", seg.DepartureTime)
	// the leg's own LHR arrival is replaced by the parent's destination
	assert.Equal(t, "New York", seg.ArrivalCity)
	assert.Equal(t, "JFK", seg.ArrivalCode)
	assert.Equal(t, "21:10", seg.ArrivalTime)
	assert.Equal(t, parent.StartDate, seg.StartDate)
}

func TestSegments_UnresolvedTransitFallsBack(t *testing.T) {
	table := catalog.Flights()

	testCases := []struct {
		name     string
		transits []int64
	}{
		{name: "single missing", transits: []int64{404}},
		{name: "first missing", transits: []int64{404, 9}},
		{name: "second missing", transits: []int64{8, 404}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parent := flightByID(t, table, 10)
			parent.LegBoundaryIDs = tc.transits

			segments := Segments(parent, table)

			require.Len(t, segments, 1)
			assert.Equal(t, parent, segments[0])
		})
	}
}

func TestSegments_DoesNotMutateTable(t *testing.T) {
	table := catalog.Flights()
	before := catalog.Flights()

	_ = Segments(flightByID(t, table, 10), table)

	assert.Equal(t, before, table)
}

func TestSegments_ChainsLaterLegs(t *testing.T) {
	table := []domain.Flight{
		{ID: 1, DepartureCode: "AAA", ArrivalCode: "BBB", ArrivalCity: "Bee", DepartureTime: "06:00", ArrivalTime: "07:00"},
		{ID: 2, DepartureCode: "BBB", ArrivalCode: "CCC", ArrivalCity: "Sea", DepartureTime: "08:00", ArrivalTime: "09:00"},
		{ID: 3, DepartureCode: "CCC", ArrivalCode: "DDD", DepartureTime: "10:00", ArrivalTime: "11:00"},
	}
	parent := domain.Flight{ID: 9, DepartureCode: "AAA", ArrivalCode: "DDD", DepartureTime: "05:55", ArrivalTime: "11:05", LegBoundaryIDs: []int64{1, 2, 3}}

	segments := Segments(parent, table)
	require.Len(t, segments, 3)

	assert.Equal(t, "05:55", segments[0].DepartureTime)
	assert.Equal(t, "BBB", segments[1].DepartureCode)
	assert.Equal(t, "08:00", segments[1].DepartureTime)
	assert.Equal(t, "CCC", segments[2].DepartureCode)
	assert.Equal(t, "Sea", segments[2].DepartureCity)
	assert.Equal(t, "11:05", segments[2].ArrivalTime)
}
