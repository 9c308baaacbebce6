package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/kafka"
	"github.com/Domenick1991/skybooking/internal/logger"
	"github.com/Domenick1991/skybooking/internal/metrics"
	"github.com/Domenick1991/skybooking/internal/repository"
	"github.com/google/uuid"
)

// BookingUseCase drives the booking funnel:
// fare and seat (CreateBooking) -> passenger details (AddPassenger) -> payment and confirmation (Pay).
type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, token string) (*domain.Booking, error)
	AddPassenger(ctx context.Context, token string, passenger domain.Passenger) (*domain.Booking, error)
	Pay(ctx context.Context, token string, payment PaymentInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, token string) (*domain.Booking, error)
	ExpirePendingBookings(ctx context.Context) ([]domain.Booking, error)
}

type SeatLocker interface {
	AcquireSeatLock(ctx context.Context, flightID int64, seatNumber int, ttl time.Duration) (bool, error)
	ReleaseSeatLock(ctx context.Context, flightID int64, seatNumber int) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	locks              SeatLocker
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	holdTTL            time.Duration
	confirmationTTL    time.Duration
	log                logger.Logger
	metrics            *metrics.Metrics
	now                func() time.Time
}

type CreateBookingInput struct {
	FlightID   int64            `json:"flight_id"`
	Fare       domain.FareClass `json:"fare"`
	SeatNumber int              `json:"seat_number"`
	Email      string           `json:"email"`
}

type PaymentInput struct {
	CardHolder string `json:"card_holder"`
	CardNumber string `json:"card_number"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithLogger(log logger.Logger) BookingServiceOption {
	return func(s *BookingService) { s.log = log }
}

func WithMetrics(m *metrics.Metrics) BookingServiceOption {
	return func(s *BookingService) { s.metrics = m }
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	locks SeatLocker,
	producer Producer,
	bookingTopic string,
	holdTTL, confirmationTTL time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:        bookings,
		flights:         flights,
		locks:           locks,
		producer:        producer,
		bookingTopic:    bookingTopic,
		holdTTL:         holdTTL,
		confirmationTTL: confirmationTTL,
		log:             logger.NewNop(),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.Fare == "" {
		input.Fare = domain.FareBasic
	}
	if input.SeatNumber <= 0 {
		return nil, fmt.Errorf("%w: seat number must be positive", domain.ErrValidation)
	}
	if !validEmail(input.Email) {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if !input.Fare.Valid() {
		return nil, fmt.Errorf("%w: unknown fare %q", domain.ErrValidation, input.Fare)
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}
	if flight.Status != domain.FlightStatusActive {
		return nil, fmt.Errorf("%w: flight %s is %s", domain.ErrInvalidState, flight.Code, flight.Status)
	}

	locked := false
	if s.locks != nil {
		ok, err := s.locks.AcquireSeatLock(ctx, input.FlightID, input.SeatNumber, s.holdTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrSeatLocked
		}
		locked = true
	}

	expiresIn := s.confirmationTTL
	if expiresIn == 0 {
		expiresIn = s.holdTTL
	}

	booking := &domain.Booking{
		FlightID:   input.FlightID,
		Fare:       input.Fare,
		SeatNumber: input.SeatNumber,
		PriceTotal: input.Fare.Price(flight.Price),
		Token:      uuid.NewString(),
		ExpiresAt:  s.now().Add(expiresIn),
		Email:      input.Email,
	}

	if err := s.bookings.CreatePending(ctx, booking); err != nil {
		if locked {
			_ = s.locks.ReleaseSeatLock(ctx, input.FlightID, input.SeatNumber)
		}
		return nil, err
	}

	booking.Status = domain.BookingStatusPending
	s.publish(ctx, "booking_created", booking, flight.Code)
	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, token string) (*domain.Booking, error) {
	return s.bookings.GetByToken(ctx, token)
}

func (s *BookingService) AddPassenger(ctx context.Context, token string, passenger domain.Passenger) (*domain.Booking, error) {
	if strings.TrimSpace(passenger.FirstName) == "" || strings.TrimSpace(passenger.LastName) == "" {
		return nil, fmt.Errorf("%w: passenger name is required", domain.ErrValidation)
	}
	if !validEmail(passenger.Email) {
		return nil, fmt.Errorf("%w: passenger email is required", domain.ErrValidation)
	}
	if _, err := s.pending(ctx, token); err != nil {
		return nil, err
	}

	updated, err := s.bookings.SetPassenger(ctx, token, passenger)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "passenger_added", updated, "")
	return updated, nil
}

func (s *BookingService) Pay(ctx context.Context, token string, payment PaymentInput) (*domain.Booking, error) {
	digits, err := cardDigits(payment.CardNumber)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(payment.CardHolder) == "" {
		return nil, fmt.Errorf("%w: card holder is required", domain.ErrValidation)
	}

	current, err := s.pending(ctx, token)
	if err != nil {
		return nil, err
	}
	if current.Passenger == nil {
		return nil, fmt.Errorf("%w: passenger details are missing", domain.ErrInvalidState)
	}

	updated, err := s.bookings.Confirm(ctx, token, digits[len(digits)-4:])
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "booking_confirmed", updated, "")
	if s.locks != nil {
		_ = s.locks.ReleaseSeatLock(ctx, updated.FlightID, updated.SeatNumber)
	}
	return updated, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, token string) (*domain.Booking, error) {
	current, err := s.bookings.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.BookingStatusCancelled || current.Status == domain.BookingStatusExpired {
		return current, nil
	}

	updated, err := s.bookings.UpdateStatus(ctx, token, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "booking_cancelled", updated, "")
	if s.locks != nil {
		_ = s.locks.ReleaseSeatLock(ctx, updated.FlightID, updated.SeatNumber)
	}
	return updated, nil
}

func (s *BookingService) ExpirePendingBookings(ctx context.Context) ([]domain.Booking, error) {
	expired, err := s.bookings.ExpirePendingBefore(ctx, s.now())
	if err != nil {
		return nil, err
	}
	for i := range expired {
		b := &expired[i]
		s.publish(ctx, "booking_expired", b, "")
		if s.locks != nil {
			_ = s.locks.ReleaseSeatLock(ctx, b.FlightID, b.SeatNumber)
		}
	}
	return expired, nil
}

// pending loads a booking that can still move through the funnel.
func (s *BookingService) pending(ctx context.Context, token string) (*domain.Booking, error) {
	current, err := s.bookings.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.BookingStatusPending {
		return nil, fmt.Errorf("%w: booking is not pending", domain.ErrInvalidState)
	}
	if !current.ExpiresAt.IsZero() && s.now().After(current.ExpiresAt) {
		return nil, fmt.Errorf("%w: booking hold has expired", domain.ErrInvalidState)
	}
	return current, nil
}

// publish is best effort: a broker outage must not fail the booking.
func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking, flightCode string) {
	if s.metrics != nil {
		s.metrics.BookingTransitions.WithLabelValues(eventType).Inc()
	}
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:       eventType,
		Token:      booking.Token,
		FlightID:   booking.FlightID,
		FlightCode: flightCode,
		Fare:       string(booking.Fare),
		SeatNumber: booking.SeatNumber,
		PriceTotal: booking.PriceTotal,
		Email:      booking.Email,
		Status:     string(booking.Status),
		ExpiresAt:  booking.ExpiresAt,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.Token, event); err != nil {
		s.log.Warn("failed to publish booking event", "type", eventType, "token", booking.Token, "error", err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.Token, event); err != nil {
			s.log.Warn("failed to publish notification", "type", eventType, "token", booking.Token, "error", err)
		}
	}
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

var errCardNumber = fmt.Errorf("%w: invalid card number", domain.ErrValidation)

// cardDigits strips separators and checks length and the Luhn checksum.
func cardDigits(number string) (string, error) {
	var b strings.Builder
	for _, r := range number {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
		default:
			return "", errCardNumber
		}
	}
	digits := b.String()
	if len(digits) < 12 || len(digits) > 19 {
		return "", errCardNumber
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	if sum%10 != 0 {
		return "", errCardNumber
	}
	return digits, nil
}

var _ BookingUseCase = (*BookingService)(nil)
