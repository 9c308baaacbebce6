package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBookingEvent(t *testing.T) {
	event := BookingEvent{
		Type:       "booking_created",
		Token:      "tok",
		FlightID:   10,
		FlightCode: "SH-OTP-JFK-03",
		Fare:       "flex",
		SeatNumber: 12,
		PriceTotal: 864,
		Email:      "ana@example.com",
		Status:     "PENDING",
		ExpiresAt:  time.Date(2026, 11, 1, 10, 30, 0, 0, time.UTC),
	}
	data, err := json.Marshal(event)
	require.NoError(t, err)

	decoded, err := DecodeBookingEvent(kafka.Message{Key: []byte("tok"), Value: data})

	require.NoError(t, err)
	assert.Equal(t, event, decoded)

	_, err = DecodeBookingEvent(kafka.Message{Value: []byte("not json")})
	assert.Error(t, err)
}
