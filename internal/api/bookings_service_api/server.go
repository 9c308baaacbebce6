package bookings_service_api

import (
	"context"
	"time"

	"github.com/Domenick1991/skybooking/internal/api/rpc"
	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/service/booking"
)

// Server implements BookingsService for the first and last funnel steps;
// passenger details and payment are HTTP only.
type Server struct {
	bookings booking.BookingUseCase
}

func NewServer(bookings booking.BookingUseCase) *Server {
	return &Server{bookings: bookings}
}

func (s *Server) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	created, err := s.bookings.CreateBooking(ctx, booking.CreateBookingInput{
		FlightID:   req.FlightID,
		Fare:       domain.FareClass(req.Fare),
		SeatNumber: int(req.SeatNumber),
		Email:      req.Email,
	})
	if err != nil {
		return nil, rpc.Status(err)
	}
	return toWireBooking(created), nil
}

func (s *Server) GetBooking(ctx context.Context, req *BookingTokenRequest) (*Booking, error) {
	b, err := s.bookings.GetBooking(ctx, req.Token)
	if err != nil {
		return nil, rpc.Status(err)
	}
	return toWireBooking(b), nil
}

func (s *Server) CancelBooking(ctx context.Context, req *BookingTokenRequest) (*Booking, error) {
	b, err := s.bookings.CancelBooking(ctx, req.Token)
	if err != nil {
		return nil, rpc.Status(err)
	}
	return toWireBooking(b), nil
}

func toWireBooking(b *domain.Booking) *Booking {
	if b == nil {
		return nil
	}
	return &Booking{
		Token:      b.Token,
		Status:     string(b.Status),
		ExpiresAt:  b.ExpiresAt.Format(time.RFC3339),
		FlightID:   b.FlightID,
		Fare:       string(b.Fare),
		SeatNumber: int32(b.SeatNumber),
		PriceTotal: b.PriceTotal,
		Email:      b.Email,
	}
}

var _ BookingsServiceServer = (*Server)(nil)
