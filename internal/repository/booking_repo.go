package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
)

type BookingRepository interface {
	// CreatePending stores a new PENDING booking. It fails with
	// domain.ErrSeatLocked when another live booking holds the same seat.
	CreatePending(ctx context.Context, booking *domain.Booking) error
	GetByToken(ctx context.Context, token string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, token string, status domain.BookingStatus) (*domain.Booking, error)
	SetPassenger(ctx context.Context, token string, passenger domain.Passenger) (*domain.Booking, error)
	Confirm(ctx context.Context, token, paymentLast4 string) (*domain.Booking, error)
	ExpirePendingBefore(ctx context.Context, deadline time.Time) ([]domain.Booking, error)
}
