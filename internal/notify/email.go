package notify

import (
	"context"
	"fmt"

	"github.com/Domenick1991/skybooking/internal/kafka"
	"github.com/Domenick1991/skybooking/internal/logger"
)

// Sender turns booking events into customer notifications. The demo has no
// mail provider, so messages are written to the log.
type Sender struct {
	log logger.Logger
}

func NewSender(log logger.Logger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if event.Email == "" {
		return nil
	}
	s.log.Info("send email",
		"to", event.Email,
		"subject", Subject(event),
		"token", event.Token,
		"flight_id", event.FlightID,
		"seat", event.SeatNumber,
	)
	return nil
}

func Subject(event kafka.BookingEvent) string {
	switch event.Type {
	case "booking_created":
		return fmt.Sprintf("Seat %d held on flight %s", event.SeatNumber, flightLabel(event))
	case "passenger_added":
		return "Passenger details saved"
	case "booking_confirmed":
		return fmt.Sprintf("Booking confirmed for flight %s", flightLabel(event))
	case "booking_cancelled":
		return "Your booking was cancelled"
	case "booking_expired":
		return "Your seat hold expired"
	default:
		return "Booking update"
	}
}

func flightLabel(event kafka.BookingEvent) string {
	if event.FlightCode != "" {
		return event.FlightCode
	}
	return fmt.Sprintf("#%d", event.FlightID)
}
