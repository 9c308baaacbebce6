package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, flight_id, fare, seat_number, price_total, token, status, passenger, payment_last4,
	expires_at, email, created_at, updated_at`

// uniqueViolation is raised by bookings_live_seat_idx when two holds race
// past the EXISTS check.
const uniqueViolation = "23505"

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) CreatePending(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var taken bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE flight_id=$1 AND seat_number=$2 AND status IN ($3, $4))`,
		booking.FlightID, booking.SeatNumber, domain.BookingStatusPending, domain.BookingStatusConfirmed).Scan(&taken); err != nil {
		return err
	}
	if taken {
		return domain.ErrSeatLocked
	}

	booking.Status = domain.BookingStatusPending
	if err := tx.QueryRow(ctx, `INSERT INTO bookings (flight_id, fare, seat_number, price_total, token, status, expires_at, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		booking.FlightID, booking.Fare, booking.SeatNumber, booking.PriceTotal, booking.Token, booking.Status, booking.ExpiresAt, booking.Email).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrSeatLocked
		}
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGBookingRepository) GetByToken(ctx context.Context, token string) (*domain.Booking, error) {
	return scanBooking(r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE token=$1`, token))
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, token string, status domain.BookingStatus) (*domain.Booking, error) {
	return scanBooking(r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE token=$2 RETURNING `+bookingColumns, status, token))
}

func (r *PGBookingRepository) SetPassenger(ctx context.Context, token string, passenger domain.Passenger) (*domain.Booking, error) {
	payload, err := json.Marshal(passenger)
	if err != nil {
		return nil, err
	}
	b, err := scanBooking(r.db.QueryRow(ctx, `UPDATE bookings SET passenger=$1::jsonb, updated_at=now()
		WHERE token=$2 AND status=$3 RETURNING `+bookingColumns, string(payload), token, domain.BookingStatusPending))
	return r.pendingOnly(ctx, token, b, err)
}

func (r *PGBookingRepository) Confirm(ctx context.Context, token, paymentLast4 string) (*domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, payment_last4=$2, updated_at=now()
		WHERE token=$3 AND status=$4 RETURNING `+bookingColumns,
		domain.BookingStatusConfirmed, paymentLast4, token, domain.BookingStatusPending))
	return r.pendingOnly(ctx, token, b, err)
}

func (r *PGBookingRepository) ExpirePendingBefore(ctx context.Context, deadline time.Time) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE status=$2 AND expires_at <= $3 RETURNING `+bookingColumns,
		domain.BookingStatusExpired, domain.BookingStatusPending, deadline)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expired []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		expired = append(expired, *b)
	}
	return expired, rows.Err()
}

// pendingOnly tells a missing token apart from a booking that left PENDING
// before a conditional update reached it.
func (r *PGBookingRepository) pendingOnly(ctx context.Context, token string, b *domain.Booking, err error) (*domain.Booking, error) {
	if !errors.Is(err, domain.ErrBookingNotFound) {
		return b, err
	}
	var status domain.BookingStatus
	if err := r.db.QueryRow(ctx, `SELECT status FROM bookings WHERE token=$1`, token).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return nil, fmt.Errorf("%w: booking is %s", domain.ErrInvalidState, status)
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var (
		b         domain.Booking
		passenger []byte
		last4     *string
	)
	err := row.Scan(&b.ID, &b.FlightID, &b.Fare, &b.SeatNumber, &b.PriceTotal, &b.Token, &b.Status, &passenger, &last4,
		&b.ExpiresAt, &b.Email, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(passenger) > 0 {
		var p domain.Passenger
		if err := json.Unmarshal(passenger, &p); err != nil {
			return nil, err
		}
		b.Passenger = &p
	}
	if last4 != nil {
		b.PaymentLast4 = *last4
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
