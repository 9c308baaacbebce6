package flights

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/itinerary"
	"github.com/Domenick1991/skybooking/internal/logger"
	"github.com/Domenick1991/skybooking/internal/metrics"
	"github.com/Domenick1991/skybooking/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Search(ctx context.Context, criteria SearchCriteria) ([]domain.Flight, error)
	Itinerary(ctx context.Context, id int64) (*domain.Itinerary, error)
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

// SearchCriteria filters the catalog. Zero values match everything except
// Status, which defaults to active flights.
type SearchCriteria struct {
	From     string
	To       string
	Date     string // YYYY-MM-DD
	MaxPrice int64
	Status   domain.FlightStatus
}

type FlightService struct {
	repo     repository.FlightRepository
	cache    FlightCache
	cacheTTL time.Duration
	log      logger.Logger
	metrics  *metrics.Metrics
}

type FlightServiceOption func(*FlightService)

func WithLogger(log logger.Logger) FlightServiceOption {
	return func(s *FlightService) { s.log = log }
}

func WithMetrics(m *metrics.Metrics) FlightServiceOption {
	return func(s *FlightService) { s.metrics = m }
}

func NewFlightService(repo repository.FlightRepository, cache FlightCache, cacheTTL time.Duration, opts ...FlightServiceOption) *FlightService {
	s := &FlightService{repo: repo, cache: cache, cacheTTL: cacheTTL, log: logger.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		cached, err := s.cache.GetFlights(ctx)
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil {
			s.log.Warn("flights cache read failed", "error", err)
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			s.log.Warn("flights cache write failed", "error", err)
		}
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Search(ctx context.Context, criteria SearchCriteria) ([]domain.Flight, error) {
	if criteria.Date != "" && !itinerary.ValidDate(criteria.Date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	if criteria.MaxPrice < 0 {
		return nil, fmt.Errorf("%w: max price must not be negative", domain.ErrValidation)
	}
	status := criteria.Status
	if status == "" {
		status = domain.FlightStatusActive
	}

	flights, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Flight, 0)
	for _, f := range flights {
		if f.Status != status {
			continue
		}
		if !matchPlace(f.DepartureCity, f.DepartureCode, criteria.From) || !matchPlace(f.ArrivalCity, f.ArrivalCode, criteria.To) {
			continue
		}
		if criteria.MaxPrice > 0 && f.Price > criteria.MaxPrice {
			continue
		}
		if criteria.Date != "" && !operatesOn(f, criteria.Date) {
			continue
		}
		out = append(out, f)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			return out[i].Price < out[j].Price
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *FlightService) Itinerary(ctx context.Context, id int64) (*domain.Itinerary, error) {
	table, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var flight *domain.Flight
	for i := range table {
		if table[i].ID == id {
			flight = &table[i]
			break
		}
	}
	if flight == nil {
		return nil, domain.ErrFlightNotFound
	}

	it, err := itinerary.Build(*flight, table)
	if err != nil {
		return nil, err
	}
	// unresolved legs leave the flight as its own only segment
	if flight.IsTransit() && it.Segments[0].ID == flight.ID {
		s.log.Warn("transit flight references missing legs", "flight_id", id, "transits", flight.LegBoundaryIDs)
	}
	if s.metrics != nil {
		s.metrics.ItineraryBuilds.WithLabelValues(strconv.Itoa(len(it.Segments))).Inc()
	}
	return &it, nil
}

func matchPlace(city, code, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return strings.EqualFold(code, query) || strings.HasPrefix(strings.ToLower(city), strings.ToLower(query))
}

// operatesOn reports whether f flies on date. Flights without a start date
// fly every day; otherwise daily flights fly from the start date on and
// weekly ones every seventh day after it.
func operatesOn(f domain.Flight, date string) bool {
	if f.StartDate == "" {
		return true
	}
	start, err := time.Parse("2006-01-02", f.StartDate)
	if err != nil {
		return false
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	diff := int(day.Sub(start).Hours() / 24)
	if diff < 0 {
		return false
	}
	if f.Frequency == domain.FrequencyWeekly {
		return diff%7 == 0
	}
	return true
}

var _ FlightUseCase = (*FlightService)(nil)
