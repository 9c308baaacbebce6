package itinerary

import (
	"testing"

	"github.com/Domenick1991/skybooking/internal/catalog"
	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DirectFlightHasNoLayovers(t *testing.T) {
	table := catalog.Flights()
	direct := flightByID(t, table, 6)

	it, err := Build(direct, table)

	require.NoError(t, err)
	assert.Equal(t, []domain.Flight{direct}, it.Segments)
	assert.Empty(t, it.Layovers)
	assert.Equal(t, 0, it.Stops)
}

func TestBuild_ConnectingFlight(t *testing.T) {
	table := catalog.Flights()

	it, err := Build(flightByID(t, table, 10), table)

	require.NoError(t, err)
	require.Len(t, it.Segments, 2)
	require.Len(t, it.Layovers, 1)
	assert.Equal(t, 1, it.Stops)
	assert.Equal(t, domain.Layover{
		City:          "London",
		Code:          "LHR",
		ArrivalTime:   "11:00",
		DepartureTime: "01:00",
		Duration:      "14h 0m",
	}, it.Layovers[0])
}

func TestBuild_SingleTransitHasNoLayover(t *testing.T) {
	table := catalog.Flights()

	it, err := Build(flightByID(t, table, 14), table)

	require.NoError(t, err)
	assert.Len(t, it.Segments, 1)
	assert.Empty(t, it.Layovers)
	assert.Equal(t, 0, it.Stops)
}

func TestBuild_MalformedLegTime(t *testing.T) {
	table := catalog.Flights()
	for i := range table {
		if table[i].ID == 9 {
			table[i].DepartureTime = "late"
		}
	}

	_, err := Build(flightByID(t, table, 10), table)

	assert.ErrorIs(t, err, ErrInvalidClock)
}

func TestElapsedMinutes(t *testing.T) {
	table := catalog.Flights()

	minutes, err := ElapsedMinutes([]domain.Flight{flightByID(t, table, 8), flightByID(t, table, 9)})
	require.NoError(t, err)
	// 3h flying, 14h layover, 7h flying
	assert.Equal(t, 24*60, minutes)

	minutes, err = ElapsedMinutes([]domain.Flight{flightByID(t, table, 12), flightByID(t, table, 11)})
	require.NoError(t, err)
	assert.Equal(t, 100+400+505, minutes)

	minutes, err = ElapsedMinutes(nil)
	require.NoError(t, err)
	assert.Zero(t, minutes)
}
