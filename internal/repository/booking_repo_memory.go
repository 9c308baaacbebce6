package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
)

type MemoryBookingRepository struct {
	mu       sync.Mutex
	seq      int64
	bookings map[string]*domain.Booking
	now      func() time.Time
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{
		bookings: make(map[string]*domain.Booking),
		now:      time.Now,
	}
}

func (r *MemoryBookingRepository) CreatePending(_ context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.FlightID == booking.FlightID && b.SeatNumber == booking.SeatNumber && live(b.Status) {
			return domain.ErrSeatLocked
		}
	}

	r.seq++
	now := r.now()
	booking.ID = r.seq
	booking.Status = domain.BookingStatusPending
	booking.CreatedAt = now
	booking.UpdatedAt = now
	r.bookings[booking.Token] = copyBooking(booking)
	return nil
}

func (r *MemoryBookingRepository) GetByToken(_ context.Context, token string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[token]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return copyBooking(b), nil
}

func (r *MemoryBookingRepository) UpdateStatus(_ context.Context, token string, status domain.BookingStatus) (*domain.Booking, error) {
	return r.update(token, "", func(b *domain.Booking) { b.Status = status })
}

func (r *MemoryBookingRepository) SetPassenger(_ context.Context, token string, passenger domain.Passenger) (*domain.Booking, error) {
	return r.update(token, domain.BookingStatusPending, func(b *domain.Booking) {
		p := passenger
		b.Passenger = &p
	})
}

func (r *MemoryBookingRepository) Confirm(_ context.Context, token, paymentLast4 string) (*domain.Booking, error) {
	return r.update(token, domain.BookingStatusPending, func(b *domain.Booking) {
		b.Status = domain.BookingStatusConfirmed
		b.PaymentLast4 = paymentLast4
	})
}

func (r *MemoryBookingRepository) ExpirePendingBefore(_ context.Context, deadline time.Time) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var expired []domain.Booking
	for _, b := range r.bookings {
		if b.Status == domain.BookingStatusPending && !b.ExpiresAt.After(deadline) {
			b.Status = domain.BookingStatusExpired
			b.UpdatedAt = r.now()
			expired = append(expired, *copyBooking(b))
		}
	}
	return expired, nil
}

// update applies fn under the lock. A non-empty expected status must match
// the stored one, otherwise the booking is left untouched.
func (r *MemoryBookingRepository) update(token string, expected domain.BookingStatus, fn func(*domain.Booking)) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[token]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if expected != "" && b.Status != expected {
		return nil, fmt.Errorf("%w: booking is %s", domain.ErrInvalidState, b.Status)
	}
	fn(b)
	b.UpdatedAt = r.now()
	return copyBooking(b), nil
}

func live(status domain.BookingStatus) bool {
	return status == domain.BookingStatusPending || status == domain.BookingStatusConfirmed
}

func copyBooking(b *domain.Booking) *domain.Booking {
	c := *b
	if b.Passenger != nil {
		p := *b.Passenger
		c.Passenger = &p
	}
	return &c
}

var _ BookingRepository = (*MemoryBookingRepository)(nil)
